package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/coffeeline/codebase"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, err := cfg.PollInterval()
			if err != nil {
				return err
			}
			server := codebase.NewLSPServer(version,
				codebase.WithPollInterval(interval),
				codebase.WithLSPImportOptions(cfg.ImportOptions()...),
			)
			return server.RunStdio()
		},
	}
}
