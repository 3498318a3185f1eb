package dv01

// Position is a point-in-time ETF holding. A zero Duration means
// DefaultETFDuration.
type Position struct {
	Price    float64
	Units    int64
	Duration float64
}

// Contract describes the futures contract used as the hedge leg. Zero
// fields fall back to the modeled contract's defaults.
type Contract struct {
	CTDDV01          float64
	ConversionFactor float64
}

// Metrics bundles the three computed values for one position snapshot.
type Metrics struct {
	ETFDV01     float64 `json:"etf_dv01"`
	FuturesDV01 float64 `json:"fut_dv01"`
	HedgeLots   int     `json:"hedge_lots"`
}

// Compute chains the three estimators for a single snapshot: ETF DV01,
// per-contract futures DV01, and the recommended hedge lot count.
func Compute(p Position, c Contract) (Metrics, error) {
	if p.Duration == 0 {
		p.Duration = DefaultETFDuration
	}
	if c.CTDDV01 == 0 {
		c.CTDDV01 = DefaultCTDDV01
	}
	if c.ConversionFactor == 0 {
		c.ConversionFactor = DefaultConversionFactor
	}

	var (
		m   Metrics
		err error
	)
	if m.ETFDV01, err = EstimateETFDV01(p.Price, p.Units, p.Duration); err != nil {
		return Metrics{}, err
	}
	if m.FuturesDV01, err = EstimateFuturesDV01(c.CTDDV01, c.ConversionFactor); err != nil {
		return Metrics{}, err
	}
	if m.HedgeLots, err = RecommendHedgeLots(m.ETFDV01, m.FuturesDV01); err != nil {
		return Metrics{}, err
	}
	return m, nil
}
