// Package factors computes the spread, return, and rolling-window factor
// columns used to study the ETF/futures basis.
package factors

import (
	"fmt"
	"math"
)

// DefaultWindow is the rolling window (trading days) for correlation and
// volatility factors.
const DefaultWindow = 20

// Spread returns the per-day ETF minus futures close, the raw basis.
func Spread(etf, fut []float64) ([]float64, error) {
	if len(etf) != len(fut) {
		return nil, fmt.Errorf("length mismatch: %d etf vs %d fut", len(etf), len(fut))
	}
	out := make([]float64, len(etf))
	for i := range etf {
		out[i] = etf[i] - fut[i]
	}
	return out, nil
}

// Returns computes simple day-over-day returns. The first element is NaN
// since it has no prior close, mirroring the warmup convention of the
// rolling factors.
func Returns(closes []float64) ([]float64, error) {
	if len(closes) == 0 {
		return nil, fmt.Errorf("empty series")
	}
	out := make([]float64, len(closes))
	out[0] = math.NaN()
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return nil, fmt.Errorf("zero close at index %d", i-1)
		}
		out[i] = closes[i]/closes[i-1] - 1
	}
	return out, nil
}

// RollingStd computes the rolling sample standard deviation (ddof=1) over
// the trailing window. Entries before the window fills are NaN, as are
// windows containing NaN inputs.
func RollingStd(x []float64, window int) ([]float64, error) {
	if window < 2 {
		return nil, fmt.Errorf("window must be at least 2, got %d", window)
	}

	out := make([]float64, len(x))
	for i := range out {
		if i+1 < window {
			out[i] = math.NaN()
			continue
		}
		out[i] = sampleStd(x[i+1-window : i+1])
	}
	return out, nil
}

// RollingCorr computes the rolling Pearson correlation of two aligned
// series over the trailing window, NaN during warmup.
func RollingCorr(a, b []float64, window int) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if window < 2 {
		return nil, fmt.Errorf("window must be at least 2, got %d", window)
	}

	out := make([]float64, len(a))
	for i := range out {
		if i+1 < window {
			out[i] = math.NaN()
			continue
		}
		out[i] = pearson(a[i+1-window:i+1], b[i+1-window:i+1])
	}
	return out, nil
}

func sampleStd(x []float64) float64 {
	mean := 0.0
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		mean += v
	}
	mean /= float64(len(x))

	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)-1))
}

func pearson(a, b []float64) float64 {
	var meanA, meanB float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			return math.NaN()
		}
		meanA += a[i]
		meanB += b[i]
	}
	n := float64(len(a))
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varA*varB)
}
