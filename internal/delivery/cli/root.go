package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yourusername/longtail-keywords/config"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/lib/logger"
)

// Chiqish kodlari
const (
	ExitOK       = 0
	ExitError    = 1
	ExitCanceled = 130
)

type state struct {
	app        *App
	configPath string
	logLevel   string
}

// Execute root komandani bajarish va chiqish kodini qaytarish
func Execute(ctx context.Context) int {
	st := &state{}
	root := newRootCommand(st)
	err := execute(ctx, root, st)
	if err == nil {
		return ExitOK
	}

	printError(root.ErrOrStderr(), err)
	if errors.Is(err, entity.ErrCanceled) {
		return ExitCanceled
	}
	return ExitError
}

// execute komandani bajarish va ilovani har qanday natijada yopish
func execute(ctx context.Context, root *cobra.Command, st *state) error {
	err := root.ExecuteContext(ctx)
	if st.app != nil {
		if cerr := st.app.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close app: %w", cerr))
		}
	}
	return err
}

// NewRootCommand "longtail" root komandasi
func NewRootCommand() *cobra.Command {
	return newRootCommand(&state{})
}

func newRootCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "longtail",
		Short:         "쿠팡파트너스용 롱테일 키워드 생성기",
		Long:          "카테고리를 입력하면 LLM(Gemini 또는 OpenAI)으로 구매 의도 롱테일 키워드를 생성하고,\n선택한 키워드로 블로그 글 작성용 프롬프트를 완성합니다.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if st.app != nil {
				return nil
			}

			cfg, err := config.Load(st.configPath)
			if err != nil {
				return &entity.Error{Kind: entity.ErrConfig, Op: "load config", Message: err.Error(), Cause: err}
			}

			level := cfg.LogLevel
			if st.logLevel != "" {
				level = st.logLevel
			}
			log := logger.SetupLogger(cfg.Env, level)

			st.app, err = NewApp(cfg, log)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&st.configPath, "config", "", "YAML 설정 파일 경로 (없으면 환경변수/.env 사용)")
	cmd.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "로그 레벨: debug, info, warn, error")

	cmd.AddCommand(
		newKeywordsCommand(st),
		newPromptCommand(st),
		newCatalogCommand(st),
		newProvidersCommand(st),
		newBotCommand(st),
	)
	return cmd
}

// printError xatolikni bitta "알림" ko'rinishida chiqarish
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "[%s] %s\n", entity.Title(err), entity.Describe(err))
}
