package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used in the merged CSV exports.
const DateLayout = "2006-01-02"

// LoadCSV reads a merged ETF/futures daily series:
//
//	date,open_etf,close_etf,open_fut,close_fut
//
// Columns are located by header name, so extra columns (factor exports and
// the like) are ignored. open_etf/open_fut are optional and fall back to
// the close when a file carries closes only. Empty rows are skipped.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a merged daily series from r. See LoadCSV.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty series")
	}
	if err != nil {
		return nil, err
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "close_etf", "close_fut"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var out Series
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		b, ok, err := parseBar(col, row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, b)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadColumn reads a single numeric column from a CSV by header name,
// aligned row-for-row with the bars LoadCSV would return. Blank cells
// become NaN, the same warmup convention the factor engine uses, which is
// how prediction exports leave their leading horizon empty.
func LoadColumn(path, name string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("missing column %q", name)
	}

	var out []float64
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
			out = append(out, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad %s value %q: %w", name, row[idx], err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseBar(col map[string]int, row []string) (Bar, bool, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ds := get("date")
	if ds == "" {
		return Bar{}, false, nil
	}
	d, err := time.Parse(DateLayout, ds)
	if err != nil {
		return Bar{}, false, fmt.Errorf("bad date %q: %w", ds, err)
	}

	closeETF, err := strconv.ParseFloat(get("close_etf"), 64)
	if err != nil {
		return Bar{}, false, fmt.Errorf("%s: bad close_etf %q: %w", ds, get("close_etf"), err)
	}
	closeFut, err := strconv.ParseFloat(get("close_fut"), 64)
	if err != nil {
		return Bar{}, false, fmt.Errorf("%s: bad close_fut %q: %w", ds, get("close_fut"), err)
	}

	b := Bar{Date: d, CloseETF: closeETF, CloseFut: closeFut, OpenETF: closeETF, OpenFut: closeFut}

	if s := get("open_etf"); s != "" {
		if b.OpenETF, err = strconv.ParseFloat(s, 64); err != nil {
			return Bar{}, false, fmt.Errorf("%s: bad open_etf %q: %w", ds, s, err)
		}
	}
	if s := get("open_fut"); s != "" {
		if b.OpenFut, err = strconv.ParseFloat(s, 64); err != nil {
			return Bar{}, false, fmt.Errorf("%s: bad open_fut %q: %w", ds, s, err)
		}
	}
	return b, true, nil
}
