package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/market"
	"github.com/quantrlabs/hedgecalc/store"
)

func newImportCmd(rc *config.RootConfig) *cobra.Command {
	var (
		csvPath string
		pair    string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a merged ETF/futures daily CSV into the price database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return fmt.Errorf("--csv is required")
			}

			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if pair == "" {
				pair = cfg.Data.Pair
			}

			bars, err := market.LoadCSV(csvPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", csvPath, err)
			}

			st, err := store.Open(cfg.Data.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ImportBars(pair, bars); err != nil {
				return err
			}

			log.Info().
				Str("pair", pair).
				Str("db", cfg.Data.DBPath).
				Int("bars", len(bars)).
				Msg("imported series")
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Merged daily CSV (date,open_etf,close_etf,open_fut,close_fut)")
	cmd.Flags().StringVar(&pair, "pair", "", "Pair label (default from config)")

	return cmd
}
