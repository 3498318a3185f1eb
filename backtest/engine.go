// Package backtest replays the DV01-hedged ETF/futures spread strategy over
// a historical daily series: long the ETF, short enough treasury futures to
// neutralize the position's rate risk, entered and exited on a caller-
// supplied prediction signal.
package backtest

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quantrlabs/hedgecalc/dv01"
	"github.com/quantrlabs/hedgecalc/market"
)

// FutPointValue converts one futures price point into currency for one
// contract (1,000,000 face quoted per 100).
const FutPointValue = 10000

// Config holds the strategy and account parameters.
type Config struct {
	InitialCapital   float64
	MarginRate       float64 // futures margin as a fraction of notional
	TickETF          float64
	TickFut          float64
	ETFDuration      float64
	CTDDV01          float64
	ConversionFactor float64
	StopGain         float64 // close when pnl rate >= StopGain
	StopLoss         float64 // close when pnl rate <= -StopLoss
	SignalShift      int     // prediction horizon in days; 0 uses the signal as-is
	ReserveRatio     float64 // fraction of equity deployable on entry
}

// DefaultConfig mirrors the conventions of the modeled pair: 10M starting
// capital, 10% futures margin, exchange tick sizes, and +-0.5% stops.
func DefaultConfig() Config {
	return Config{
		InitialCapital:   10_000_000,
		MarginRate:       0.10,
		TickETF:          0.001,
		TickFut:          0.005,
		ETFDuration:      dv01.DefaultETFDuration,
		CTDDV01:          dv01.DefaultCTDDV01,
		ConversionFactor: dv01.DefaultConversionFactor,
		StopGain:         0.005,
		StopLoss:         0.005,
		ReserveRatio:     0.90,
	}
}

func (c Config) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial capital must be positive")
	}
	if c.MarginRate <= 0 || c.MarginRate >= 1 {
		return fmt.Errorf("margin rate must be in (0, 1)")
	}
	if c.TickETF < 0 || c.TickFut < 0 {
		return fmt.Errorf("tick sizes must be non-negative")
	}
	if c.ETFDuration <= 0 {
		return fmt.Errorf("etf duration must be positive")
	}
	if c.CTDDV01 <= 0 {
		return fmt.Errorf("ctd dv01 must be positive")
	}
	if c.ConversionFactor <= 0 || c.ConversionFactor > 1 {
		return fmt.Errorf("conversion factor must be in (0, 1]")
	}
	if c.StopGain <= 0 || c.StopLoss <= 0 {
		return fmt.Errorf("stop gain/loss must be positive")
	}
	if c.SignalShift < 0 {
		return fmt.Errorf("signal shift must be non-negative")
	}
	if c.ReserveRatio <= 0 || c.ReserveRatio > 1 {
		return fmt.Errorf("reserve ratio must be in (0, 1]")
	}
	return nil
}

// DayRecord is one day of the run: position flag, trade marker (+1 open,
// -1 close), marked equity and cumulative return.
type DayRecord struct {
	Date      time.Time
	Position  int
	Trade     int
	Equity    float64
	CumReturn float64
}

// Engine runs the spread strategy. It holds configuration only; each Run is
// independent.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backtest config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Run replays the series against the per-day prediction signal (expected
// spread move; positive means the basis widens in the ETF's favor). signals
// must align 1:1 with bars; SignalShift slides a horizon-N prediction onto
// the day it is acted on.
func (e *Engine) Run(s market.Series, signals []float64) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if len(s) == 0 {
		return Result{}, fmt.Errorf("empty series")
	}
	if len(signals) != len(s) {
		return Result{}, fmt.Errorf("signal length %d does not match %d bars", len(signals), len(s))
	}

	cfg := e.cfg
	contract := dv01.Contract{CTDDV01: cfg.CTDDV01, ConversionFactor: cfg.ConversionFactor}

	futDV01, err := dv01.EstimateFuturesDV01(contract.CTDDV01, contract.ConversionFactor)
	if err != nil {
		return Result{}, err
	}

	var (
		cash    = cfg.InitialCapital
		capital = cfg.InitialCapital

		holding  bool
		nETF     float64
		nFut     int
		entryEq  float64
		entryFut float64

		days     = make([]DayRecord, 0, len(s))
		realized []float64
	)

	for i, bar := range s {
		sig := math.NaN()
		if i+cfg.SignalShift < len(signals) {
			sig = signals[i+cfg.SignalShift]
		}

		trade := 0

		// Exit first: stops or a signal that is no longer positive.
		if holding {
			eq := markEquity(cash, nETF, bar.OpenETF, entryFut, bar.OpenFut, nFut)
			pnlRate := 0.0
			if entryEq != 0 {
				pnlRate = (eq - entryEq) / entryEq
			}
			if pnlRate >= cfg.StopGain || pnlRate <= -cfg.StopLoss || !(sig > 0) {
				log.Debug().
					Time("date", bar.Date).
					Float64("pnl_rate", pnlRate).
					Msg("close spread position")

				cash = eq
				capital = cash
				realized = append(realized, pnlRate)
				holding = false
				nETF = 0
				nFut = 0
				trade = -1
			}
		}

		// Enter when flat and the prediction favors the basis. A day that
		// just stopped out does not re-enter; otherwise a stop would close
		// and instantly reopen at the same prices.
		if !holding && trade == 0 && sig > 0 {
			units, lots := e.size(bar, futDV01, capital*cfg.ReserveRatio)
			if units > 0 && lots > 0 {
				cost := units*bar.OpenETF + units*cfg.TickETF*3 + float64(lots)*cfg.TickFut*FutPointValue
				cash -= cost
				holding = true
				trade = 1
				nETF = units
				nFut = lots
				entryFut = bar.OpenFut
				entryEq = cash + nETF*bar.OpenETF
				capital = entryEq

				log.Debug().
					Time("date", bar.Date).
					Float64("etf_units", units).
					Int("fut_lots", lots).
					Msg("open spread position")
			}
		}

		equity := cash
		position := 0
		if holding {
			equity = markEquity(cash, nETF, bar.OpenETF, entryFut, bar.OpenFut, nFut)
			position = 1
		}
		days = append(days, DayRecord{
			Date:      bar.Date,
			Position:  position,
			Trade:     trade,
			Equity:    equity,
			CumReturn: equity/cfg.InitialCapital - 1,
		})
	}

	return Result{
		Days:        days,
		RealizedPnL: realized,
		Metrics:     computeMetrics(days, realized, cfg.InitialCapital),
	}, nil
}

// size picks ETF units and futures lots so the futures leg's DV01 offsets
// the ETF leg's, scaled down until margin plus purchase cost fit inside the
// deployable fraction of equity.
func (e *Engine) size(bar market.Bar, futDV01, available float64) (float64, int) {
	cfg := e.cfg
	if bar.OpenETF <= 0 || bar.OpenFut <= 0 {
		return 0, 0
	}

	// DV01 per ETF unit at the day's close; lots per unit follows.
	perUnit := bar.CloseETF * cfg.ETFDuration * dv01.BasisPoint
	ratio := perUnit / futDV01
	if ratio <= 0 {
		return 0, 0
	}

	maxUnits := math.Floor(available / bar.OpenETF)
	if maxUnits <= 0 {
		return 0, 0
	}

	lots := int(math.Round(maxUnits * ratio))
	if lots < 1 {
		lots = 1
	}
	units := math.Floor(float64(lots) / ratio)

	margin := float64(lots) * cfg.MarginRate * bar.OpenFut * FutPointValue
	cost := units * bar.OpenETF
	if total := margin + cost; total > available && total > 0 {
		scale := available / total
		units = math.Floor(units * scale)
		lots = int(math.Round(units * ratio))
		if lots < 1 {
			lots = 1
		}
		margin = float64(lots) * cfg.MarginRate * bar.OpenFut * FutPointValue
		cost = units * bar.OpenETF
		if margin+cost > available {
			return 0, 0
		}
	}
	if units <= 0 {
		return 0, 0
	}
	return units, lots
}

func markEquity(cash, nETF, etfPx, entryFut, futPx float64, lots int) float64 {
	return cash + nETF*etfPx + (entryFut-futPx)*float64(lots)*FutPointValue
}
