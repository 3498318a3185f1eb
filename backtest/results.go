package backtest

import (
	"fmt"
	"io"
)

// Result carries the daily records, per-trade realized pnl rates, and the
// summary metrics of one run.
type Result struct {
	Days        []DayRecord
	RealizedPnL []float64
	Metrics     Metrics
}

// PrintResult writes a human-readable run summary.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Spread Backtest Result")
	fmt.Fprintln(w, "==================================================")

	if len(r.Days) > 0 {
		fmt.Fprintf(w, "Start:         %s\n", r.Days[0].Date.Format("2006-01-02"))
		fmt.Fprintf(w, "End:           %s\n", r.Days[len(r.Days)-1].Date.Format("2006-01-02"))
		fmt.Fprintf(w, "Trading Days:  %d\n", len(r.Days))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Annual Return: %.2f%%\n", r.Metrics.AnnualReturn*100)
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", r.Metrics.MaxDrawdown*100)
	fmt.Fprintf(w, "Sharpe:        %.2f\n", r.Metrics.Sharpe)
	fmt.Fprintf(w, "Calmar:        %.2f\n", r.Metrics.Calmar)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Closed Trades: %d\n", r.Metrics.TotalTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", r.Metrics.WinRate*100)

	if len(r.Days) > 0 {
		last := r.Days[len(r.Days)-1]
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Final Equity:  %.2f\n", last.Equity)
		fmt.Fprintf(w, "Cum Return:    %.2f%%\n", last.CumReturn*100)
	}
	fmt.Fprintln(w)
}
