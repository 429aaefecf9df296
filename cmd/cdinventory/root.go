package main

import (
	"github.com/spf13/cobra"

	"cdinventory/internal/shell"
	"cdinventory/internal/storage"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var fileFlag string

	ctx := newCommandContext(&configFlag, &fileFlag)

	rootCmd := &cobra.Command{
		Use:           "cdinventory",
		Short:         "Manage a CD inventory from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := ctx.sessionLogger()
			if err != nil {
				return err
			}
			defer closeLog()
			return ctx.withGateway(logger, func(gw storage.Gateway) error {
				session := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), gw, logger)
				return session.Run(cmd.Context())
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Inventory snapshot location (overrides config)")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
