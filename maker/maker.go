// Package maker generates two-sided ETF/futures basis quotes around a
// model-predicted spread move, leaning the quote center against inventory
// risk. It is a quoting framework: callers plug in the prediction model and
// the venue that receives the quotes.
package maker

import (
	"fmt"
	"time"

	"github.com/quantrlabs/hedgecalc/pkg/id"
)

// Predictor forecasts the spread change (ETF over futures basis) from a
// feature vector. A positive value means the basis is expected to widen.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// Quote is one two-sided price pair. ID is a ULID, so quotes sort by issue
// time.
type Quote struct {
	ID       string
	Time     time.Time
	Bid      float64
	Ask      float64
	Mid      float64
	Position float64
}

// QuoteSink receives published quotes. Implementations decide what
// publication means: a log line, a file, a trading gateway.
type QuoteSink interface {
	Publish(Quote) error
}

// InventoryLimits bound the maker's position before quote skew kicks in.
type InventoryLimits struct {
	Min float64
	Max float64
}

// InventorySkew is how far the quote center shifts when inventory breaches
// its limits: down to attract buyers when long, up to attract sellers when
// short.
const InventorySkew = 0.1

// Quoter maintains a single-instrument quoting loop state: the model, the
// inventory bounds, the fixed base spread, and the current position.
type Quoter struct {
	model      Predictor
	sink       QuoteSink
	limits     InventoryLimits
	baseSpread float64

	// TheoreticalMid supplies the fair basis center each cycle; callers
	// wire in conversion-factor-adjusted pricing when they have it.
	TheoreticalMid func() float64

	position float64
}

func NewQuoter(model Predictor, sink QuoteSink, limits InventoryLimits, baseSpread float64) (*Quoter, error) {
	if model == nil {
		return nil, fmt.Errorf("predictor is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("quote sink is required")
	}
	if baseSpread <= 0 {
		return nil, fmt.Errorf("base spread must be positive")
	}
	if limits.Min > limits.Max {
		return nil, fmt.Errorf("inventory limits inverted: min %v > max %v", limits.Min, limits.Max)
	}
	return &Quoter{
		model:          model,
		sink:           sink,
		limits:         limits,
		baseSpread:     baseSpread,
		TheoreticalMid: func() float64 { return 0 },
	}, nil
}

// OnMarketData runs one quoting cycle: predict the spread move, shift the
// center by half the prediction plus the inventory skew, publish bid/ask a
// half base-spread either side.
func (q *Quoter) OnMarketData(features []float64) (Quote, error) {
	pred, err := q.model.Predict(features)
	if err != nil {
		return Quote{}, fmt.Errorf("predict spread: %w", err)
	}

	mid := q.TheoreticalMid() + 0.5*pred + q.inventoryAdjust()

	quote := Quote{
		ID:       id.New(),
		Time:     time.Now().UTC(),
		Bid:      mid - q.baseSpread/2,
		Ask:      mid + q.baseSpread/2,
		Mid:      mid,
		Position: q.position,
	}
	if err := q.sink.Publish(quote); err != nil {
		return Quote{}, fmt.Errorf("publish quote: %w", err)
	}
	return quote, nil
}

// UpdatePosition books a fill: positive means bought ETF / sold futures.
func (q *Quoter) UpdatePosition(tradeSize float64) {
	q.position += tradeSize
}

// Position returns the current inventory.
func (q *Quoter) Position() float64 { return q.position }

func (q *Quoter) inventoryAdjust() float64 {
	switch {
	case q.position > q.limits.Max:
		return -InventorySkew
	case q.position < q.limits.Min:
		return +InventorySkew
	default:
		return 0
	}
}
