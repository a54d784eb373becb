package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the bot until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.logger.Info("bot starting", zap.Int("admins", len(app.cfg.AdminIDs)))
			return app.bot.Run(ctx)
		},
	}
}
