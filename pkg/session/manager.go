package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/useragent"
)

// Manager handles session operations
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	validator     *Validator
	collector     *Collector
	approve       WriteApprovalFunc
	accept        ReadAcceptFunc
	gcFilter      GCProbabilityFunc
	intn          func(n int) int
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a new session manager with the given options.
// Without WithStore an in-memory store is used.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	if m.transport == nil && m.cookieManager != nil {
		m.transport = NewCookieTransportWithSecurity(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
	}

	m.validator = NewValidator(m.config.SkipSubnet, m.accept)
	m.collector = NewCollector(m.store, m.config.GCProbability,
		WithProbabilityFilter(m.gcFilter),
		WithRandIntN(m.intn),
		WithCollectorLogger(m.logger),
	)

	return m
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Read returns the payload stored for token when the record is still valid
// for the request fingerprint. A record failing validation is deleted.
// Unknown, expired and rejected tokens all yield found == false and a nil error.
func (m *Manager) Read(ctx context.Context, token string, fp fingerprint.Fingerprint) ([]byte, bool, error) {
	if token == "" {
		return nil, false, nil
	}

	rec, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, false, nil
		}
		m.logger.ErrorContext(ctx, "session read failed", logger.Error(err))
		return nil, false, err
	}

	now := m.now()
	if reason := m.validator.Validate(rec, token, fp, now); reason != nil {
		m.logger.DebugContext(ctx, "session rejected",
			logger.Token(token),
			logger.Reason(reason),
			logger.Subnet(fp.Subnet),
		)
		if err := m.store.Delete(ctx, token, CleanRead); err != nil {
			m.logger.ErrorContext(ctx, "failed to delete rejected session", logger.Error(err))
			return nil, false, err
		}
		return nil, false, nil
	}

	// The sweep is opportunistic: a failure is logged and the valid payload
	// is still returned.
	if _, _, err := m.collector.MaybeCollect(ctx, now); err != nil {
		m.logger.WarnContext(ctx, "session garbage collection failed", logger.Error(err))
	}

	return rec.Data, true, nil
}

// Write persists data for token, binding it to fp and pushing the expiry to
// now + Lifetime. Nothing is written when a write-approval hook refuses or
// when the client is a bot and Config.SkipBots is set.
func (m *Manager) Write(ctx context.Context, token string, data []byte, fp fingerprint.Fingerprint) error {
	if token == "" {
		return ErrEmptyToken
	}

	if m.config.SkipBots && useragent.IsBot(fp.UserAgent) {
		m.logger.DebugContext(ctx, "session write skipped for bot",
			logger.Token(token),
			slog.String("bot", useragent.BotName(fp.UserAgent)),
		)
		return nil
	}
	if m.approve != nil && !m.approve(true, token, data) {
		return nil
	}

	rec := &Record{
		Token:     token,
		Subnet:    fp.Subnet,
		Expires:   m.now().Add(m.config.Lifetime).Unix(),
		UserAgent: fp.UserAgent,
		Data:      data,
	}

	if err := m.store.Upsert(ctx, rec); err != nil {
		m.logger.ErrorContext(ctx, "session write failed", logger.Error(err))
		return err
	}
	return nil
}

// Destroy deletes the record for token. Missing tokens are not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token, CleanDestroy)
}

// SetUser binds userID to the session identified by token.
func (m *Manager) SetUser(ctx context.Context, token string, userID int64) error {
	if token == "" {
		return ErrEmptyToken
	}
	return m.store.SetUserID(ctx, token, userID)
}

// ClearUser deletes every session of userID other than exceptToken and
// unbinds userID from exceptToken. Use it on logout or password change to
// end the user's sessions elsewhere.
func (m *Manager) ClearUser(ctx context.Context, userID int64, exceptToken string) error {
	if err := m.store.ClearUserID(ctx, userID, exceptToken); err != nil {
		m.logger.ErrorContext(ctx, "failed to clear user sessions",
			logger.UserID(userID),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// Collect deletes expired records immediately.
func (m *Manager) Collect(ctx context.Context) (int64, error) {
	return m.collector.Collect(ctx, m.now())
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
