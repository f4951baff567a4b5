package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/yourusername/longtail-keywords/internal/delivery/telegram"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

func newBotCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Telegram 봇 실행",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := st.app

			// katalogsiz ham kalit so'z generatsiyasi ishlaydi
			if err := app.LoadCatalog(cmd.Context()); err != nil {
				app.Log.Warn("catalog not loaded", sl.Err(err))
			}

			handler, err := telegram.NewBotHandler(
				app.Config.Telegram.Token,
				app.Config.ChatAllowed,
				app.Keywords,
				app.Prompts,
				app.Catalog,
				app.Sessions,
				app.Log,
			)
			if err != nil {
				return err
			}

			err = handler.Start(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
