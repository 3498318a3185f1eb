package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/server"
	"github.com/quantrlabs/hedgecalc/store"
)

func newServeCmd(rc *config.RootConfig) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the DV01 dashboard and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			st, err := store.Open(cfg.Data.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			srv, err := server.New(cfg, st, log.Logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
