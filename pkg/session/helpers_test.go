package session_test

import (
	"sync"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
)

// clock is a settable time source for Manager.WithClock.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// never makes the collector draw 100, so sweeps only run at probability >= 100.
func never(int) int { return 99 }

// always makes the collector draw 1, so any probability >= 1 sweeps.
func always(int) int { return 0 }

func fingerprintFor(ip string) fingerprint.Fingerprint {
	return fingerprint.New(ip, ua1)
}
