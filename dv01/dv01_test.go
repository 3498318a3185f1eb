package dv01

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateETFDV01(t *testing.T) {
	// price=100, units=100000, duration=7.5 -> 7500.00 per bp
	got, err := EstimateETFDV01(100.0, 100000, 7.5)
	require.NoError(t, err)
	assert.InDelta(t, 7500.0, got, 1e-9)
}

func TestEstimateETFDV01Formula(t *testing.T) {
	cases := []struct {
		price    float64
		units    int64
		duration float64
	}{
		{100.0, 10000, 7.5},
		{116.42, 1, 7.5},
		{99.985, 250000, 8.1},
		{0.5, 3, 0.25},
	}
	for _, tc := range cases {
		got, err := EstimateETFDV01(tc.price, tc.units, tc.duration)
		require.NoError(t, err)
		assert.InDelta(t, tc.price*float64(tc.units)*tc.duration*0.0001, got, 1e-9)
	}
}

func TestEstimateETFDV01ZeroUnits(t *testing.T) {
	got, err := EstimateETFDV01(50.0, 0, 7.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEstimateETFDV01Invalid(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		units    int64
		duration float64
	}{
		{"zero price", 0, 100, 7.5},
		{"negative price", -1, 100, 7.5},
		{"nan price", math.NaN(), 100, 7.5},
		{"inf price", math.Inf(1), 100, 7.5},
		{"negative units", 100, -1, 7.5},
		{"zero duration", 100, 100, 0},
		{"negative duration", 100, 100, -7.5},
		{"nan duration", 100, 100, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateETFDV01(tc.price, tc.units, tc.duration)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEstimateETFDV01Monotonic(t *testing.T) {
	base, err := EstimateETFDV01(100.0, 10000, 7.5)
	require.NoError(t, err)

	up, err := EstimateETFDV01(101.0, 10000, 7.5)
	require.NoError(t, err)
	assert.Greater(t, up, base)

	up, err = EstimateETFDV01(100.0, 10001, 7.5)
	require.NoError(t, err)
	assert.Greater(t, up, base)

	up, err = EstimateETFDV01(100.0, 10000, 7.6)
	require.NoError(t, err)
	assert.Greater(t, up, base)
}

func TestEstimateFuturesDV01(t *testing.T) {
	// Defaults: (0.042 / 0.85) * 10000 ~= 494.1176 per contract per bp.
	got, err := EstimateFuturesDV01(DefaultCTDDV01, DefaultConversionFactor)
	require.NoError(t, err)
	assert.InDelta(t, 494.1176, got, 1e-4)
	assert.InDelta(t, (0.042/0.85)*10000, got, 1e-9)
}

func TestEstimateFuturesDV01Monotonic(t *testing.T) {
	base, err := EstimateFuturesDV01(0.042, 0.85)
	require.NoError(t, err)

	up, err := EstimateFuturesDV01(0.043, 0.85)
	require.NoError(t, err)
	assert.Greater(t, up, base)

	// A smaller conversion factor makes each contract riskier.
	up, err = EstimateFuturesDV01(0.042, 0.80)
	require.NoError(t, err)
	assert.Greater(t, up, base)
}

func TestEstimateFuturesDV01Invalid(t *testing.T) {
	cases := []struct {
		name string
		ctd  float64
		cf   float64
	}{
		{"zero ctd", 0, 0.85},
		{"negative ctd", -0.042, 0.85},
		{"nan ctd", math.NaN(), 0.85},
		{"zero cf", 0.042, 0},
		{"negative cf", 0.042, -0.85},
		{"cf above one", 0.042, 1.01},
		{"nan cf", 0.042, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateFuturesDV01(tc.ctd, tc.cf)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRecommendHedgeLots(t *testing.T) {
	futDV01 := (0.042 / 0.85) * 10000

	// 7500 / 494.1176 = 15.179 -> 15 contracts.
	lots, err := RecommendHedgeLots(7500.0, futDV01)
	require.NoError(t, err)
	assert.Equal(t, 15, lots)

	// Flat position hedges with nothing.
	lots, err = RecommendHedgeLots(0.0, futDV01)
	require.NoError(t, err)
	assert.Equal(t, 0, lots)
}

func TestRecommendHedgeLotsRounding(t *testing.T) {
	// math.Round: halves round away from zero.
	lots, err := RecommendHedgeLots(150.0, 100.0)
	require.NoError(t, err)
	assert.Equal(t, 2, lots)

	lots, err = RecommendHedgeLots(149.9, 100.0)
	require.NoError(t, err)
	assert.Equal(t, 1, lots)

	lots, err = RecommendHedgeLots(-150.0, 100.0)
	require.NoError(t, err)
	assert.Equal(t, -2, lots)
}

func TestRecommendHedgeLotsZeroFuturesDV01(t *testing.T) {
	_, err := RecommendHedgeLots(7500.0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecommendHedgeLotsInvalid(t *testing.T) {
	_, err := RecommendHedgeLots(7500.0, -494.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrDivisionByZero)

	_, err = RecommendHedgeLots(math.NaN(), 494.0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = RecommendHedgeLots(7500.0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputErrorMessage(t *testing.T) {
	_, err := EstimateETFDV01(-3, 100, 7.5)
	require.Error(t, err)

	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "price", ie.Field)
	assert.Contains(t, err.Error(), "positive")
}
