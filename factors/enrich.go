package factors

import (
	"time"

	"github.com/quantrlabs/hedgecalc/market"
)

// Row is one day of the factor table built from the price series alone.
// Rolling factors are NaN until their window fills.
type Row struct {
	Date   time.Time
	Spread float64
	ETFRet float64
	FutRet float64
	Corr   float64 // rolling correlation of ETF and futures returns
	ETFVol float64 // rolling std of ETF returns
	FutVol float64 // rolling std of futures returns
}

// Enrich computes the price-derived factor columns for a daily series using
// DefaultWindow for the rolling factors.
func Enrich(s market.Series) ([]Row, error) {
	return EnrichWindow(s, DefaultWindow)
}

// EnrichWindow is Enrich with an explicit rolling window.
func EnrichWindow(s market.Series, window int) ([]Row, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	etf := s.ETFCloses()
	fut := s.FutCloses()

	spread, err := Spread(etf, fut)
	if err != nil {
		return nil, err
	}
	etfRet, err := Returns(etf)
	if err != nil {
		return nil, err
	}
	futRet, err := Returns(fut)
	if err != nil {
		return nil, err
	}
	corr, err := RollingCorr(etfRet, futRet, window)
	if err != nil {
		return nil, err
	}
	etfVol, err := RollingStd(etfRet, window)
	if err != nil {
		return nil, err
	}
	futVol, err := RollingStd(futRet, window)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(s))
	for i := range s {
		rows[i] = Row{
			Date:   s[i].Date,
			Spread: spread[i],
			ETFRet: etfRet[i],
			FutRet: futRet[i],
			Corr:   corr[i],
			ETFVol: etfVol[i],
			FutVol: futVol[i],
		}
	}
	return rows, nil
}
