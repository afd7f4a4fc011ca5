package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Collector deletes expired records. It has no timer of its own: the
// Manager calls MaybeCollect on every successful read so the sweep cost
// is amortised over requests.
type Collector struct {
	store       Store
	probability int
	filter      GCProbabilityFunc
	intn        func(n int) int
	logger      *slog.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithProbabilityFilter installs a hook that adjusts the probability per call.
func WithProbabilityFilter(fn GCProbabilityFunc) CollectorOption {
	return func(c *Collector) {
		c.filter = fn
	}
}

// WithRandIntN replaces the random source. fn must return a value in [0, n).
func WithRandIntN(fn func(n int) int) CollectorOption {
	return func(c *Collector) {
		if fn != nil {
			c.intn = fn
		}
	}
}

// WithCollectorLogger sets the logger used to report sweeps.
func WithCollectorLogger(l *slog.Logger) CollectorOption {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCollector creates a Collector with the given probability in percent.
func NewCollector(store Store, probability int, opts ...CollectorOption) *Collector {
	c := &Collector{
		store:       store,
		probability: probability,
		intn:        rand.IntN,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probability returns the effective probability for the next call.
// Non-positive configured values fall back to 1 before the filter runs.
func (c *Collector) Probability() int {
	p := c.probability
	if p <= 0 {
		p = 1
	}
	if c.filter != nil {
		p = c.filter(p)
	}
	return p
}

// ShouldCollect draws a number in [1,100] and compares it to Probability.
func (c *Collector) ShouldCollect() bool {
	p := c.Probability()
	if p >= 100 {
		return true
	}
	return c.intn(100)+1 <= p
}

// MaybeCollect runs Collect when the draw succeeds. It reports whether a
// sweep ran and how many records it removed.
func (c *Collector) MaybeCollect(ctx context.Context, now time.Time) (bool, int64, error) {
	if !c.ShouldCollect() {
		return false, 0, nil
	}
	n, err := c.Collect(ctx, now)
	return true, n, err
}

// Collect deletes every record with an expiry strictly before now.
func (c *Collector) Collect(ctx context.Context, now time.Time) (int64, error) {
	n, err := c.store.DeleteExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	c.logger.InfoContext(ctx, "expired sessions collected",
		logger.Component("session.gc"),
		logger.Count(n),
	)
	return n, nil
}
