package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

func newProvidersCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "사용 가능한 LLM 제공자와 OpenAI 모델 목록",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := st.app
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "LLM 제공자:")
			for _, p := range app.Keywords.Providers() {
				marker := ""
				if p == app.DefaultProvider {
					marker = " (기본)"
				}
				fmt.Fprintf(out, "  • %s%s\n", p, marker)
			}

			fmt.Fprintln(out, "OpenAI 모델:")
			for _, m := range entity.OpenAIModels {
				marker := ""
				if m == app.Config.OpenAI.Model {
					marker = " (기본)"
				}
				fmt.Fprintf(out, "  • %s%s\n", m, marker)
			}
			return nil
		},
	}
}
