package backtest

import "math"

// TradingDaysPerYear annualizes daily statistics.
const TradingDaysPerYear = 252

// Metrics summarizes a run. WinRate and Calmar are 0 when undefined (no
// closed trades, no drawdown) so reports never carry NaN.
type Metrics struct {
	AnnualReturn float64
	MaxDrawdown  float64
	Sharpe       float64
	Calmar       float64
	WinRate      float64
	TotalTrades  int
}

func computeMetrics(days []DayRecord, realized []float64, initialCapital float64) Metrics {
	var m Metrics
	m.TotalTrades = len(realized)
	if len(days) == 0 {
		return m
	}

	final := days[len(days)-1].Equity
	totalReturn := final/initialCapital - 1
	m.AnnualReturn = math.Pow(1+totalReturn, TradingDaysPerYear/float64(len(days))) - 1

	// Max drawdown over the marked equity curve.
	peak := days[0].Equity
	for _, d := range days {
		if d.Equity > peak {
			peak = d.Equity
		}
		if peak > 0 {
			if dd := 1 - d.Equity/peak; dd > m.MaxDrawdown {
				m.MaxDrawdown = dd
			}
		}
	}

	// Sharpe over daily equity returns (sample std).
	rets := make([]float64, 0, len(days)-1)
	for i := 1; i < len(days); i++ {
		if days[i-1].Equity != 0 {
			rets = append(rets, days[i].Equity/days[i-1].Equity-1)
		}
	}
	if sd := sampleStd(rets); sd > 0 {
		m.Sharpe = mean(rets) / sd * math.Sqrt(TradingDaysPerYear)
	}

	if m.MaxDrawdown > 1e-8 {
		m.Calmar = m.AnnualReturn / m.MaxDrawdown
	}

	if len(realized) > 0 {
		wins := 0
		for _, pnl := range realized {
			if pnl > 0 {
				wins++
			}
		}
		m.WinRate = float64(wins) / float64(len(realized))
	}
	return m
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	mu := mean(x)
	ss := 0.0
	for _, v := range x {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)-1))
}
