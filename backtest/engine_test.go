package backtest

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrlabs/hedgecalc/market"
)

func testConfig() Config {
	cfg := DefaultConfig()
	// A 2% margin keeps the sized position inside the deployable funds for
	// the small test series.
	cfg.MarginRate = 0.02
	return cfg
}

func flatSeries(n int) market.Series {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	s := make(market.Series, n)
	for i := range s {
		s[i] = market.Bar{
			Date:     start.AddDate(0, 0, i),
			OpenETF:  100, CloseETF: 100,
			OpenFut: 108, CloseFut: 108,
		}
	}
	return s
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	bad := DefaultConfig()
	bad.ConversionFactor = 1.5
	_, err := NewEngine(bad)
	assert.Error(t, err)

	bad = DefaultConfig()
	bad.InitialCapital = 0
	_, err = NewEngine(bad)
	assert.Error(t, err)
}

func TestRunValidation(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	_, err = e.Run(nil, nil)
	assert.Error(t, err)

	s := flatSeries(3)
	_, err = e.Run(s, []float64{1, 1})
	assert.Error(t, err, "signal length must match bars")
}

func TestRunNoSignalNoTrades(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	s := flatSeries(4)
	res, err := e.Run(s, []float64{-1, -1, -1, -1})
	require.NoError(t, err)

	require.Len(t, res.Days, 4)
	for _, d := range res.Days {
		assert.Equal(t, 0, d.Position)
		assert.Equal(t, 0, d.Trade)
		assert.Equal(t, e.cfg.InitialCapital, d.Equity)
	}
	assert.Empty(t, res.RealizedPnL)
	assert.Equal(t, 0, res.Metrics.TotalTrades)
	assert.Equal(t, 0.0, res.Metrics.MaxDrawdown)
	assert.Equal(t, 0.0, res.Metrics.Sharpe)
}

func TestRunOpensAndClosesOnSignalFlip(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	s := flatSeries(3)
	res, err := e.Run(s, []float64{1, -1, -1})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Days[0].Trade)
	assert.Equal(t, 1, res.Days[0].Position)
	assert.Equal(t, -1, res.Days[1].Trade)
	assert.Equal(t, 0, res.Days[1].Position)

	require.Len(t, res.RealizedPnL, 1)
	// Flat prices: the round trip loses only slippage, booked at entry.
	assert.InDelta(t, 0.0, res.RealizedPnL[0], 1e-6)
	assert.Less(t, res.Days[2].Equity, e.cfg.InitialCapital)
	assert.Equal(t, 1, res.Metrics.TotalTrades)
}

func TestRunStopGainClosesDespiteSignal(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	s := flatSeries(3)
	// ETF rallies while futures sell off: a winning spread position.
	s[1].OpenETF, s[1].CloseETF = 101, 101
	s[1].OpenFut, s[1].CloseFut = 107, 107
	s[2] = s[1]
	s[2].Date = s[1].Date.AddDate(0, 0, 1)

	res, err := e.Run(s, []float64{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, -1, res.Days[1].Trade, "stop gain should force the close")
	require.Len(t, res.RealizedPnL, 1)
	assert.Greater(t, res.RealizedPnL[0], e.cfg.StopGain)
	assert.Equal(t, 1.0, res.Metrics.WinRate)
	assert.Greater(t, res.Days[2].Equity, e.cfg.InitialCapital)
}

func TestRunStopLossClosesDespiteSignal(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	s := flatSeries(3)
	// ETF drops while futures rally against the short leg.
	s[1].OpenETF, s[1].CloseETF = 99, 99
	s[1].OpenFut, s[1].CloseFut = 109, 109
	s[2] = s[1]
	s[2].Date = s[1].Date.AddDate(0, 0, 1)

	res, err := e.Run(s, []float64{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, -1, res.Days[1].Trade, "stop loss should force the close")
	require.Len(t, res.RealizedPnL, 1)
	assert.Less(t, res.RealizedPnL[0], -e.cfg.StopLoss)
	assert.Equal(t, 0.0, res.Metrics.WinRate)
}

func TestRunSignalShift(t *testing.T) {
	cfg := testConfig()
	cfg.SignalShift = 1
	e, err := NewEngine(cfg)
	require.NoError(t, err)

	s := flatSeries(3)
	// Day 0 acts on signals[1], day 1 on signals[2]; day 2 has no
	// prediction left and stays flat.
	res, err := e.Run(s, []float64{-1, 1, -1})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Days[0].Trade)
	assert.Equal(t, -1, res.Days[1].Trade)
	assert.Equal(t, 0, res.Days[2].Trade)
	assert.Equal(t, 0, res.Days[2].Position)
}

func TestPrintResult(t *testing.T) {
	e, err := NewEngine(testConfig())
	require.NoError(t, err)

	s := flatSeries(3)
	res, err := e.Run(s, []float64{1, -1, -1})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintResult(&buf, res)
	out := buf.String()
	assert.Contains(t, out, "Spread Backtest Result")
	assert.Contains(t, out, "Closed Trades: 1")
	assert.NotContains(t, out, "NaN")
}
