package store

import (
	"fmt"
	"time"

	"github.com/quantrlabs/hedgecalc/market"
)

// ImportBars upserts a daily series under a pair label such as "511520/T".
// Re-importing the same file is harmless; rows are replaced by (pair, date).
func (s *Store) ImportBars(pair string, bars market.Series) error {
	if pair == "" {
		return fmt.Errorf("pair label is required")
	}
	if err := bars.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO bars
		(pair, date, open_etf, close_etf, open_fut, close_fut)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.Exec(
			pair, b.Date.Format(market.DateLayout),
			b.OpenETF, b.CloseETF, b.OpenFut, b.CloseFut,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Bars returns the stored series for pair with date in [from, to), ordered
// ascending. Zero bounds are open.
func (s *Store) Bars(pair string, from, to time.Time) (market.Series, error) {
	q := `
		SELECT date, open_etf, close_etf, open_fut, close_fut
		FROM bars
		WHERE pair = ?`
	args := []any{pair}

	if !from.IsZero() {
		q += ` AND date >= ?`
		args = append(args, from.Format(market.DateLayout))
	}
	if !to.IsZero() {
		q += ` AND date < ?`
		args = append(args, to.Format(market.DateLayout))
	}
	q += ` ORDER BY date ASC`

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out market.Series
	for rows.Next() {
		var (
			b  market.Bar
			ds string
		)
		if err := rows.Scan(&ds, &b.OpenETF, &b.CloseETF, &b.OpenFut, &b.CloseFut); err != nil {
			return nil, err
		}
		if b.Date, err = time.Parse(market.DateLayout, ds); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Pairs lists the distinct pair labels present in the store.
func (s *Store) Pairs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT pair FROM bars ORDER BY pair`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
