package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Process-wide counters for the configurator surface.
var (
	SettingsFetches   Counter
	PriceComputations Counter
	QuoteSubmissions  Counter
	QuoteFailures     Counter
)

// Snapshot is the payload of the internal stats endpoint.
type Snapshot struct {
	SettingsFetches   uint64 `json:"settings_fetches"`
	PriceComputations uint64 `json:"price_computations"`
	QuoteSubmissions  uint64 `json:"quote_submissions"`
	QuoteFailures     uint64 `json:"quote_failures"`
}

func Collect() Snapshot {
	return Snapshot{
		SettingsFetches:   SettingsFetches.Load(),
		PriceComputations: PriceComputations.Load(),
		QuoteSubmissions:  QuoteSubmissions.Load(),
		QuoteFailures:     QuoteFailures.Load(),
	}
}
