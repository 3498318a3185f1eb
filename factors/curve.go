package factors

// NotionalCoupon is the 3% nominal coupon treasury futures contracts are
// standardized around. Yield minus this measures how far in-the-money the
// short's delivery option is.
const NotionalCoupon = 0.03

// Curve is one day of yield-curve and funding rates (decimal yields).
type Curve struct {
	Gov1Y     float64
	Gov5Y     float64
	Gov10Y    float64
	Gov30Y    float64
	Policy10Y float64 // 10y policy-bank (CDB) yield

	Shibor3M    float64
	R007        float64
	FR007Swap1Y float64 // 1y FR007 interest rate swap fixed rate
}

// Slope returns long minus short, the generic curve steepness factor.
func Slope(long, short float64) float64 { return long - short }

// Curvature is the butterfly long + short - 2 x mid.
func Curvature(long, mid, short float64) float64 { return long + short - 2*mid }

// CouponDeviation measures a yield's distance from the futures notional
// coupon.
func CouponDeviation(yield float64) float64 { return yield - NotionalCoupon }

// PolicySpread is the policy-bank over treasury premium at 10y, a tax and
// liquidity factor.
func (c Curve) PolicySpread() float64 { return c.Policy10Y - c.Gov10Y }

// SwapSpread is the 1y FR007 swap fixed rate over the R007 repo rate.
func (c Curve) SwapSpread() float64 { return c.FR007Swap1Y - c.R007 }

// FundingSpread is 3m SHIBOR over R007.
func (c Curve) FundingSpread() float64 { return c.Shibor3M - c.R007 }

// RateExpectation is the swap fixed rate over 3m SHIBOR.
func (c Curve) RateExpectation() float64 { return c.FR007Swap1Y - c.Shibor3M }
