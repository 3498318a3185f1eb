// Package cli wires the hedgecalc subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/logging"
)

func NewRootCmd() *cobra.Command {
	rc := &config.RootConfig{}

	cmd := &cobra.Command{
		Use:           "hedgecalc",
		Short:         "hedgecalc: DV01 hedge calculator, factor engine, and spread backtest",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite price database (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(rc.LogLevel)
	}

	cmd.AddCommand(
		newHedgeCmd(rc),
		newImportCmd(rc),
		newFactorsCmd(rc),
		newBacktestCmd(rc),
		newServeCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hedgecalc (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
