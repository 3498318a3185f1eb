package factors

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrlabs/hedgecalc/market"
)

func enrichSeries(n int) market.Series {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	s := make(market.Series, n)
	for i := range s {
		s[i] = market.Bar{
			Date:     start.AddDate(0, 0, i),
			CloseETF: 100 + 0.1*float64(i),
			CloseFut: 108 - 0.05*float64(i),
		}
		s[i].OpenETF = s[i].CloseETF
		s[i].OpenFut = s[i].CloseFut
	}
	return s
}

func TestEnrichWindow(t *testing.T) {
	s := enrichSeries(6)

	rows, err := EnrichWindow(s, 3)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, s[0].Date, rows[0].Date)
	assert.InDelta(t, -8.0, rows[0].Spread, 1e-9)
	assert.True(t, math.IsNaN(rows[0].ETFRet))
	assert.InDelta(t, 0.001, rows[1].ETFRet, 1e-6)

	// Returns start at index 1, so a 3-day window first fills at index 3.
	assert.True(t, math.IsNaN(rows[2].Corr))
	assert.False(t, math.IsNaN(rows[3].Corr))

	assert.False(t, math.IsNaN(rows[3].ETFVol))
	assert.False(t, math.IsNaN(rows[3].FutVol))
}

func TestEnrichCorrTracksOpposingMoves(t *testing.T) {
	// ETF wiggles up on the days the futures wiggle down and vice versa,
	// so daily returns are strongly anticorrelated.
	etf := []float64{100, 101, 100.5, 101.5, 101, 102}
	fut := []float64{108, 107, 107.5, 106.5, 107, 106}

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	s := make(market.Series, len(etf))
	for i := range s {
		s[i] = market.Bar{
			Date:     start.AddDate(0, 0, i),
			OpenETF:  etf[i],
			CloseETF: etf[i],
			OpenFut:  fut[i],
			CloseFut: fut[i],
		}
	}

	rows, err := EnrichWindow(s, 3)
	require.NoError(t, err)
	assert.Less(t, rows[5].Corr, -0.9)
}

func TestEnrichRejectsBadSeries(t *testing.T) {
	s := enrichSeries(3)
	s[2].CloseETF = -1
	_, err := Enrich(s)
	assert.Error(t, err)
}
