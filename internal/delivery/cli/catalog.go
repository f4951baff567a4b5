package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "카테고리/상품 카탈로그 조회",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cobra faqat eng yaqin PersistentPreRunE ni chaqiradi
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return st.app.LoadCatalog(cmd.Context())
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "categories",
			Short: "카테고리 목록",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := st.app.Catalog.Categories(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range categories {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "products <category...>",
			Short: "카테고리의 상품 목록",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				category := strings.Join(args, " ")
				products, err := st.app.Catalog.Products(cmd.Context(), category)
				if err != nil {
					return err
				}
				if len(products) == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "'%s' 카테고리에 상품이 없습니다.\n", category)
					return nil
				}
				for _, p := range products {
					fmt.Fprintf(cmd.OutOrStdout(), "• %s\n", p)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "random",
			Short: "무작위 상품 선택",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pick, err := st.app.Catalog.Random(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "카테고리: %s\n상품: %s\n", pick.Category, pick.Product)
				return nil
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "카탈로그 정보",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				info, err := st.app.Catalog.Info(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), info)
				return nil
			},
		},
	)
	return cmd
}
