package market

import (
	"time"

	"github.com/quantrlabs/hedgecalc/dv01"
)

// MetricsRow is one day of the hedge table: closes, both DV01 values, and
// the recommended lot count for the configured position size.
type MetricsRow struct {
	Date        time.Time `json:"date"`
	CloseETF    float64   `json:"close_etf"`
	CloseFut    float64   `json:"close_fut"`
	ETFDV01     float64   `json:"etf_dv01"`
	FuturesDV01 float64   `json:"fut_dv01"`
	HedgeLots   int       `json:"hedge_lots"`
}

// BuildDV01Table computes the per-day hedge metrics for a fixed position of
// units ETF shares against the given futures contract. It is the batch
// companion of dv01.Compute.
func BuildDV01Table(s Series, units int64, c dv01.Contract) ([]MetricsRow, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rows := make([]MetricsRow, 0, len(s))
	for _, b := range s {
		m, err := dv01.Compute(dv01.Position{Price: b.CloseETF, Units: units}, c)
		if err != nil {
			return nil, err
		}
		rows = append(rows, MetricsRow{
			Date:        b.Date,
			CloseETF:    b.CloseETF,
			CloseFut:    b.CloseFut,
			ETFDV01:     m.ETFDV01,
			FuturesDV01: m.FuturesDV01,
			HedgeLots:   m.HedgeLots,
		})
	}
	return rows, nil
}
