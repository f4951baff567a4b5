package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/usecase"
)

func newKeywordsCommand(st *state) *cobra.Command {
	var (
		provider string
		model    string
		pick     int
	)

	cmd := &cobra.Command{
		Use:   "keywords [flags] <category...>",
		Short: "카테고리에 대한 롱테일 키워드 생성",
		Example: `  longtail keywords 아기방 공기청정기
  longtail keywords --provider openai --model gpt-4o-mini 캠핑 의자
  longtail keywords --pick 3 무선청소기`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := st.app

			req, err := buildRequest(app, strings.Join(args, " "), provider, model)
			if err != nil {
				return err
			}

			runner := usecase.NewKeywordRunner(app.Keywords, app.Log)
			events, err := runner.Submit(cmd.Context(), req)
			if err != nil {
				return err
			}

			var result *entity.KeywordResult
			for ev := range events {
				switch ev.Kind {
				case usecase.EventProgress:
					fmt.Fprintln(cmd.ErrOrStderr(), ev.Message)
				case usecase.EventError:
					err = ev.Err
				case usecase.EventSuccess:
					result = ev.Result
				}
			}
			if err != nil {
				return err
			}

			printKeywords(cmd.OutOrStdout(), result.Keywords)

			if pick == 0 {
				return nil
			}
			if pick < 0 || pick > len(result.Keywords) {
				return &entity.Error{
					Kind:    entity.ErrInvalidInput,
					Op:      "pick keyword",
					Message: fmt.Sprintf("키워드 번호는 1~%d 사이여야 합니다.", len(result.Keywords)),
				}
			}

			prompt, err := app.Prompts.Materialize(cmd.Context(), result.Keywords[pick-1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "LLM 제공자: gemini 또는 openai (기본값: DEFAULT_PROVIDER)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "OpenAI 모델 (기본값: OPENAI_MODEL)")
	cmd.Flags().IntVar(&pick, "pick", 0, "생성된 키워드 중 N번째(1부터)로 프롬프트 바로 생성")
	return cmd
}

// buildRequest flaglar va konfiguratsiyadan so'rov tuzish
func buildRequest(app *App, category, providerName, model string) (entity.KeywordRequest, error) {
	provider := app.DefaultProvider
	if providerName != "" {
		p, err := entity.ParseProvider(providerName)
		if err != nil {
			return entity.KeywordRequest{}, err
		}
		provider = p
	}

	req := entity.KeywordRequest{Category: category, Provider: provider}
	if provider == entity.ProviderOpenAI {
		req.Model = model
		if req.Model == "" {
			req.Model = app.Config.OpenAI.Model
		}
	}
	return req, nil
}

// printKeywords "• kalit so'z" qatorlari yoki bo'sh natija haqida xabar
func printKeywords(w io.Writer, keywords []string) {
	if len(keywords) == 0 {
		fmt.Fprintln(w, "생성된 키워드가 없습니다.")
		return
	}
	for _, kw := range keywords {
		fmt.Fprintf(w, "• %s\n", kw)
	}
}
