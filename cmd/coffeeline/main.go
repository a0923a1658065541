package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/coffeeline/config"
	"github.com/dhamidi/coffeeline/importer"
	"github.com/dhamidi/coffeeline/importer/coffeescript"
)

const version = "0.1.0"

var cfg = config.Default()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbosity int
	var logPath string

	rootCmd := &cobra.Command{
		Use:           "coffeeline",
		Short:         "Outline CoffeeScript sources by their indentation",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			if cmd.Flags().Changed("verbose") {
				cfg.Logging.Verbosity = verbosity
			}
			if logPath != "" {
				cfg.Logging.File = logPath
			}
			configureLogging(cfg.Logging)

			importer.Register(coffeescript.New(cfg.Import.TabWidth))
			return cfg.RegisterExtensions()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./coffeeline.yaml, then ~/.config/coffeeline/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func configureLogging(logging config.LoggingConfig) {
	var path *string
	if logging.File != "" {
		path = &logging.File
	}
	commonlog.Configure(logging.Verbosity, path)
}
