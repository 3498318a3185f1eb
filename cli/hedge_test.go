package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHedgeCommand(t *testing.T) {
	out, err := runCommand(t, "hedge", "--price", "100", "--units", "100000", "--duration", "7.5")
	require.NoError(t, err)

	assert.Contains(t, out, "ETF DV01:      7500.00")
	assert.Contains(t, out, "sell 15 contracts")
}

func TestHedgeCommandFlagOverrides(t *testing.T) {
	out, err := runCommand(t, "hedge",
		"--price", "100", "--units", "100000", "--duration", "7.5",
		"--ctd-dv01", "0.05", "--conversion-factor", "1.0")
	require.NoError(t, err)

	// 7500 / 500 per contract
	assert.Contains(t, out, "sell 15 contracts")
}

func TestHedgeCommandRequiresPrice(t *testing.T) {
	_, err := runCommand(t, "hedge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--price")
}

func TestHedgeCommandRejectsNegativeUnits(t *testing.T) {
	_, err := runCommand(t, "hedge", "--price", "100", "--units", "-5")
	require.Error(t, err)
}
