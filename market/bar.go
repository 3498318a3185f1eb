// Package market holds the ETF/futures market data types shared by the
// factor engine, the backtest, and the dashboard.
package market

import (
	"fmt"
	"time"
)

// Bar is one trading day of the merged ETF + treasury futures series.
type Bar struct {
	Date     time.Time
	OpenETF  float64
	CloseETF float64
	OpenFut  float64
	CloseFut float64
}

// Series is a date-ascending run of daily bars.
type Series []Bar

// Validate checks ordering and price sanity. A series with out-of-order
// dates or non-positive closes is rejected before any calculation sees it.
func (s Series) Validate() error {
	for i, b := range s {
		if b.Date.IsZero() {
			return fmt.Errorf("bar %d: missing date", i)
		}
		if b.CloseETF <= 0 || b.CloseFut <= 0 {
			return fmt.Errorf("bar %d (%s): non-positive close", i, b.Date.Format(DateLayout))
		}
		if i > 0 && !s[i-1].Date.Before(b.Date) {
			return fmt.Errorf("bar %d (%s): dates must be strictly ascending", i, b.Date.Format(DateLayout))
		}
	}
	return nil
}

// Range returns the bars with Date in [from, to). Zero bounds are open.
func (s Series) Range(from, to time.Time) Series {
	var out Series
	for _, b := range s {
		if !from.IsZero() && b.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !b.Date.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Tail returns the last n bars (all of them when n exceeds the length).
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// ETFCloses extracts the ETF close column.
func (s Series) ETFCloses() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.CloseETF
	}
	return out
}

// FutCloses extracts the futures close column.
func (s Series) FutCloses() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.CloseFut
	}
	return out
}
