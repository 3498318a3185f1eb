package market

import "github.com/quantrlabs/hedgecalc/dv01"

// InstrumentMeta carries the static conventions of a tradable instrument.
// ETF prices are per unit; futures prices are per 100 face value.
type InstrumentMeta struct {
	Name          string
	Kind          string  // "etf" or "futures"
	TickSize      float64
	MarginRate    float64 // futures only
	ContractFace  float64 // futures only
	Duration      float64 // etf only, modified duration in years
	CTDDV01       float64 // futures only, per 100 face value
	ConversionFac float64 // futures only
}

// Instruments registers the pair this tool models: the 7-10 year
// policy-bank-bond ETF (511520) and the 10-year treasury futures contract.
var Instruments = map[string]InstrumentMeta{
	"511520": {
		Name:     "511520",
		Kind:     "etf",
		TickSize: 0.001,
		Duration: dv01.DefaultETFDuration,
	},
	"T": {
		Name:          "T",
		Kind:          "futures",
		TickSize:      0.005,
		MarginRate:    0.10,
		ContractFace:  1_000_000,
		CTDDV01:       dv01.DefaultCTDDV01,
		ConversionFac: dv01.DefaultConversionFactor,
	},
}

// Contract returns the dv01 parameters for a futures instrument.
func (m InstrumentMeta) Contract() dv01.Contract {
	return dv01.Contract{CTDDV01: m.CTDDV01, ConversionFactor: m.ConversionFac}
}
