package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPromptCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "prompt <keyword...>",
		Short:   "키워드로 프롬프트 템플릿 완성",
		Example: "  longtail prompt 아기방 공기청정기 저소음 추천",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := st.app.Prompts.Materialize(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
}
