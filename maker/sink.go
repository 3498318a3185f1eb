package maker

import "github.com/rs/zerolog"

// LogSink publishes quotes as structured log lines, the default stand-in
// for a trading gateway.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Publish(q Quote) error {
	s.Log.Info().
		Str("quote_id", q.ID).
		Float64("bid", q.Bid).
		Float64("ask", q.Ask).
		Float64("position", q.Position).
		Msg("publish quote")
	return nil
}
