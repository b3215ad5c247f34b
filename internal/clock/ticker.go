package clock

import "time"

// Ticker is the part of time.Ticker the loop uses. Tests substitute
// hand-driven tickers.
type Ticker interface {
	C() <-chan time.Time
	Stop()
	Reset(d time.Duration)
}

// TickerFunc creates a ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time    { return r.t.C }
func (r realTicker) Stop()                  { r.t.Stop() }
func (r realTicker) Reset(d time.Duration) { r.t.Reset(d) }
