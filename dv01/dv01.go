// Package dv01 estimates interest-rate risk (DV01) for a bond ETF position
// and sizes the government bond futures hedge that neutralizes it.
//
// All functions are pure: every input is a parameter, nothing is cached or
// shared, and the same inputs always produce the same outputs. Callers may
// invoke them concurrently without locking.
package dv01

import (
	"fmt"
	"math"
)

// Domain conventions for the instruments modeled: a 7-10 year
// policy-bank-bond ETF hedged with 10-year treasury futures. These are
// contract conventions, not derived values.
const (
	// BasisPoint is one hundredth of one percent of yield.
	BasisPoint = 0.0001

	// ContractFaceScale converts a per-100-face-value DV01 into a
	// per-contract DV01 for the 1,000,000 face value treasury futures
	// contract (100 face x 10000).
	ContractFaceScale = 10000

	// DefaultETFDuration is the modified duration (years) assumed for the
	// ETF when the caller has no better estimate.
	DefaultETFDuration = 7.5

	// DefaultCTDDV01 is the DV01 per 100 face value of the
	// cheapest-to-deliver bond backing the futures contract.
	DefaultCTDDV01 = 0.042

	// DefaultConversionFactor relates the CTD bond price to the futures
	// settlement price.
	DefaultConversionFactor = 0.85
)

// EstimateETFDV01 returns the dollar value of a one basis point yield move
// for an ETF position:
//
//	price x units x duration x 0.0001
//
// This is the standard linear approximation (notional x duration x 1bp) and
// intentionally ignores convexity, which is acceptable for small what-if
// positions but not near large yield moves.
//
// price must be positive, units non-negative, duration positive.
func EstimateETFDV01(price float64, units int64, duration float64) (float64, error) {
	if !(price > 0) || math.IsInf(price, 0) {
		return 0, &InputError{Field: "price", Value: price, Reason: "must be a positive finite number"}
	}
	if units < 0 {
		return 0, &InputError{Field: "units", Value: float64(units), Reason: "must be non-negative"}
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return 0, &InputError{Field: "duration", Value: duration, Reason: "must be a positive finite number"}
	}
	return price * float64(units) * duration * BasisPoint, nil
}

// EstimateFuturesDV01 returns the dollar value of a one basis point yield
// move for a single futures contract:
//
//	(ctdDV01 / conversionFactor) x 10000
//
// ctdDV01 is quoted per 100 face value; the 10000 multiplier scales it to
// the contract's 1,000,000 face value. ctdDV01 must be positive and the
// conversion factor must lie in (0, 1].
func EstimateFuturesDV01(ctdDV01, conversionFactor float64) (float64, error) {
	if !(ctdDV01 > 0) || math.IsInf(ctdDV01, 0) {
		return 0, &InputError{Field: "ctd_dv01", Value: ctdDV01, Reason: "must be a positive finite number"}
	}
	if !(conversionFactor > 0) || conversionFactor > 1 {
		return 0, &InputError{Field: "conversion_factor", Value: conversionFactor, Reason: "must be in (0, 1]"}
	}
	return (ctdDV01 / conversionFactor) * ContractFaceScale, nil
}

// RecommendHedgeLots returns the number of futures contracts whose combined
// DV01 best offsets etfDV01:
//
//	round(etfDV01 / futuresDV01)
//
// Rounding is math.Round, i.e. half away from zero. The result is a
// magnitude; interpreting it as "sell N contracts" is the caller's
// convention, not encoded here.
//
// futuresDV01 must be positive. Zero is reported as ErrDivisionByZero so a
// caller can never observe NaN or an infinite recommendation.
func RecommendHedgeLots(etfDV01, futuresDV01 float64) (int, error) {
	if math.IsNaN(etfDV01) || math.IsInf(etfDV01, 0) {
		return 0, &InputError{Field: "etf_dv01", Value: etfDV01, Reason: "must be a finite number"}
	}
	if futuresDV01 == 0 {
		return 0, fmt.Errorf("futures dv01 is zero: %w", ErrDivisionByZero)
	}
	if !(futuresDV01 > 0) || math.IsInf(futuresDV01, 0) {
		return 0, &InputError{Field: "futures_dv01", Value: futuresDV01, Reason: "must be a positive finite number"}
	}
	return int(math.Round(etfDV01 / futuresDV01)), nil
}
