package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/dv01"
)

func newHedgeCmd(rc *config.RootConfig) *cobra.Command {
	var (
		price    float64
		units    int64
		duration float64
		ctd      float64
		cf       float64
	)

	cmd := &cobra.Command{
		Use:   "hedge",
		Short: "Compute ETF DV01, futures DV01, and the recommended hedge size",
		RunE: func(cmd *cobra.Command, args []string) error {
			if price == 0 {
				return fmt.Errorf("--price is required")
			}

			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if units < 0 {
				return fmt.Errorf("invalid --units (got %d)", units)
			}
			if units == 0 && !cmd.Flags().Changed("units") {
				units = cfg.Position.Units
			}
			if duration == 0 {
				duration = cfg.Position.Duration
			}
			if ctd == 0 {
				ctd = cfg.Contract.CTDDV01
			}
			if cf == 0 {
				cf = cfg.Contract.ConversionFactor
			}

			m, err := dv01.Compute(
				dv01.Position{Price: price, Units: units, Duration: duration},
				dv01.Contract{CTDDV01: ctd, ConversionFactor: cf},
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ETF DV01:      %.2f /bp\n", m.ETFDV01)
			fmt.Fprintf(out, "Futures DV01:  %.4f /bp per contract\n", m.FuturesDV01)
			// Positive means sell contracts against a long ETF position.
			fmt.Fprintf(out, "Hedge:         sell %d contracts\n", m.HedgeLots)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "ETF price per unit (required)")
	cmd.Flags().Int64Var(&units, "units", 0, "ETF units held (default from config)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "ETF duration in years (default from config)")
	cmd.Flags().Float64Var(&ctd, "ctd-dv01", 0, "CTD bond DV01 per 100 face (default from config)")
	cmd.Flags().Float64Var(&cf, "conversion-factor", 0, "CTD conversion factor (default from config)")

	return cmd
}
