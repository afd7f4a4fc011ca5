package session

import "time"

// Config holds session configuration
type Config struct {
	// Lifetime is added to the current time on every write to compute the expiry
	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"24m"`

	// GCProbability is the percent chance that a successful read sweeps expired records.
	// Values <= 0 are treated as 1, values >= 100 collect on every read.
	GCProbability int `env:"SESSION_GC_PROBABILITY" envDefault:"1"`

	// SkipSubnet disables the network subnet check on read
	SkipSubnet bool `env:"SESSION_SKIP_SUBNET" envDefault:"false"`

	// SkipBots prevents sessions of crawlers and other automated clients from being persisted
	SkipBots bool `env:"SESSION_SKIP_BOTS" envDefault:"true"`

	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// Table is the name of the sessions table used by PGStore
	Table string `env:"SESSION_TABLE" envDefault:"sessions"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Lifetime:      24 * time.Minute,
		GCProbability: 1,
		SkipSubnet:    false,
		SkipBots:      true,
		CookieName:    "sid",
		SecureCookies: false,
		Table:         DefaultTable,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
