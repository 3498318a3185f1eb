package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantrlabs/hedgecalc/backtest"
	"github.com/quantrlabs/hedgecalc/cli/config"
	"github.com/quantrlabs/hedgecalc/market"
)

func newBacktestCmd(rc *config.RootConfig) *cobra.Command {
	var (
		csvPath   string
		signalCol string
		fromStr   string
		toStr     string
	)

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Run the DV01-hedged spread strategy over a historical series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return fmt.Errorf("--csv is required (the series with a prediction column)")
			}
			if signalCol == "" {
				return fmt.Errorf("--signal-col is required")
			}

			cfg, err := rc.Load()
			if err != nil {
				return err
			}

			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			bars, err := market.LoadCSV(csvPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", csvPath, err)
			}
			signals, err := market.LoadColumn(csvPath, signalCol)
			if err != nil {
				return err
			}
			bars, signals = trimRange(bars, signals, from, to)
			if len(bars) == 0 {
				return fmt.Errorf("no bars in the requested range")
			}

			btCfg := backtest.DefaultConfig()
			btCfg.InitialCapital = cfg.Backtest.InitialCapital
			btCfg.MarginRate = cfg.Backtest.MarginRate
			btCfg.TickETF = cfg.Backtest.TickETF
			btCfg.TickFut = cfg.Backtest.TickFut
			btCfg.ETFDuration = cfg.Position.Duration
			btCfg.CTDDV01 = cfg.Contract.CTDDV01
			btCfg.ConversionFactor = cfg.Contract.ConversionFactor
			btCfg.StopGain = cfg.Backtest.StopGain
			btCfg.StopLoss = cfg.Backtest.StopLoss
			btCfg.SignalShift = cfg.Backtest.SignalShift

			engine, err := backtest.NewEngine(btCfg)
			if err != nil {
				return err
			}

			res, err := engine.Run(bars, signals)
			if err != nil {
				return err
			}

			backtest.PrintResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Daily CSV with prices and the prediction column")
	cmd.Flags().StringVar(&signalCol, "signal-col", "", "Prediction column name, e.g. lars_bayes_pred_5d")
	cmd.Flags().StringVar(&fromStr, "from", "", "Start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "End date YYYY-MM-DD (exclusive)")

	return cmd
}

// trimRange cuts bars and signals together so they stay row-aligned.
func trimRange(bars market.Series, signals []float64, from, to time.Time) (market.Series, []float64) {
	lo, hi := 0, len(bars)
	if !from.IsZero() {
		for lo < hi && bars[lo].Date.Before(from) {
			lo++
		}
	}
	if !to.IsZero() {
		for hi > lo && !bars[hi-1].Date.Before(to) {
			hi--
		}
	}
	return bars[lo:hi], signals[lo:hi]
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error

	if fromStr != "" {
		if from, err = time.Parse(market.DateLayout, fromStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --from: %w", err)
		}
	}
	if toStr != "" {
		if to, err = time.Parse(market.DateLayout, toStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --to: %w", err)
		}
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from must be before --to")
	}
	return from, to, nil
}
