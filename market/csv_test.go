package market

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		"date,open_etf,close_etf,open_fut,close_fut",
		"2025-07-01,99.80,100.00,108.10,108.25",
		"2025-07-02,100.05,100.40,108.30,108.20",
		"",
	}, "\n")

	s, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, s, 2)

	assert.Equal(t, "2025-07-01", s[0].Date.Format(DateLayout))
	assert.Equal(t, 99.80, s[0].OpenETF)
	assert.Equal(t, 100.00, s[0].CloseETF)
	assert.Equal(t, 108.25, s[0].CloseFut)
	assert.Equal(t, 100.40, s[1].CloseETF)
}

func TestReadCSVClosesOnly(t *testing.T) {
	in := strings.Join([]string{
		"date,close_etf,close_fut",
		"2025-07-01,100.00,108.25",
	}, "\n")

	s, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, s, 1)

	// Opens fall back to closes when a file carries closes only.
	assert.Equal(t, 100.00, s[0].OpenETF)
	assert.Equal(t, 108.25, s[0].OpenFut)
}

func TestReadCSVExtraColumnsIgnored(t *testing.T) {
	in := strings.Join([]string{
		"date,close_etf,close_fut,factor_10y_gov,spread",
		"2025-07-01,100.00,108.25,1.65,-8.25",
	}, "\n")

	s, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, s, 1)
}

func TestLoadColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"date,close_etf,close_fut,pred_5d",
		"2025-07-01,100.00,108.25,",
		"2025-07-02,100.40,108.20,0.15",
		"2025-07-03,100.10,108.40,-0.30",
	}, "\n")), 0644))

	sig, err := LoadColumn(path, "pred_5d")
	require.NoError(t, err)
	require.Len(t, sig, 3)
	assert.True(t, math.IsNaN(sig[0]))
	assert.Equal(t, 0.15, sig[1])
	assert.Equal(t, -0.30, sig[2])

	_, err = LoadColumn(path, "missing")
	assert.Error(t, err)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"missing close_fut column", "date,close_etf\n2025-07-01,100.0"},
		{"bad date", "date,close_etf,close_fut\nJuly 1,100.0,108.0"},
		{"bad price", "date,close_etf,close_fut\n2025-07-01,abc,108.0"},
		{"out of order dates", "date,close_etf,close_fut\n2025-07-02,100.0,108.0\n2025-07-01,100.1,108.1"},
		{"duplicate date", "date,close_etf,close_fut\n2025-07-01,100.0,108.0\n2025-07-01,100.1,108.1"},
		{"non-positive close", "date,close_etf,close_fut\n2025-07-01,0,108.0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}
