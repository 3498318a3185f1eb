package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/factors"
	"github.com/quantrlabs/hedgecalc/market"
	"github.com/quantrlabs/hedgecalc/store"
)

func newFactorsCmd(rc *config.RootConfig) *cobra.Command {
	var (
		csvPath string
		outPath string
		window  int
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Compute the spread/return/rolling factor table for a series",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if window < 2 {
				return fmt.Errorf("invalid --window (got %d)", window)
			}

			var bars market.Series
			if csvPath != "" {
				bars, err = market.LoadCSV(csvPath)
				if err != nil {
					return fmt.Errorf("load %s: %w", csvPath, err)
				}
			} else {
				st, err := store.Open(cfg.Data.DBPath)
				if err != nil {
					return err
				}
				defer st.Close()
				bars, err = st.Bars(cfg.Data.Pair, time.Time{}, time.Time{})
				if err != nil {
					return err
				}
			}
			if len(bars) == 0 {
				return fmt.Errorf("no data: import a CSV or pass --csv")
			}

			rows, err := factors.EnrichWindow(bars, window)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return writeFactorCSV(out, rows)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Read the series from a CSV instead of the price database")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the factor table to a file (default stdout)")
	cmd.Flags().IntVar(&window, "window", factors.DefaultWindow, "Rolling window in trading days")

	return cmd
}

func writeFactorCSV(w io.Writer, rows []factors.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "spread", "etf_ret", "fut_ret", "corr", "etf_vol", "fut_vol"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.Date.Format(market.DateLayout),
			cell(r.Spread),
			cell(r.ETFRet),
			cell(r.FutRet),
			cell(r.Corr),
			cell(r.ETFVol),
			cell(r.FutVol),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cell renders NaN warmup entries as empty cells, pandas-export style.
func cell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
