package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets a custom session transport
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLifetime sets how long a record stays valid after each write
func WithLifetime(lifetime time.Duration) Option {
	return func(m *Manager) {
		m.config.Lifetime = lifetime
	}
}

// WithGCProbability sets the percent chance of a sweep per successful read
func WithGCProbability(probability int) Option {
	return func(m *Manager) {
		m.config.GCProbability = probability
	}
}

// WithSkipSubnet disables the subnet check
func WithSkipSubnet(skip bool) Option {
	return func(m *Manager) {
		m.config.SkipSubnet = skip
	}
}

// WithSkipBots controls whether sessions of automated clients are persisted
func WithSkipBots(skip bool) Option {
	return func(m *Manager) {
		m.config.SkipBots = skip
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithWriteApproval sets the hook consulted before every write
func WithWriteApproval(fn WriteApprovalFunc) Option {
	return func(m *Manager) {
		m.approve = fn
	}
}

// WithReadAcceptance sets the hook consulted after every validation
func WithReadAcceptance(fn ReadAcceptFunc) Option {
	return func(m *Manager) {
		m.accept = fn
	}
}

// WithGCProbabilityHook sets the hook that adjusts the collection probability
func WithGCProbabilityHook(fn GCProbabilityFunc) Option {
	return func(m *Manager) {
		m.gcFilter = fn
	}
}

// WithRandom replaces the random source of the collector.
// fn must return a value in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(m *Manager) {
		m.intn = fn
	}
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithCookieManager sets the cookie manager for the default cookie transport
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = cookieMgr
		m.cookieOptions = opts
	}
}
