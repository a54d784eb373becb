package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cfbot",
		Short:         "Telegram bot for managing Cloudflare DNS records",
		Long:          "cfbot lets authorized operators browse domains, manage DNS records, search across zones, and review change reports from a Telegram chat.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(),
	)

	return rootCmd
}
