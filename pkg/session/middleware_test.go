package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type browser struct {
	t       *testing.T
	handler http.Handler
	ip      string
	cookies []*http.Cookie
}

// do sends a request carrying the cookies collected so far and remembers
// the last cookie of each name from the response.
func (b *browser) do(ctx context.Context) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	req.RemoteAddr = b.ip + ":5000"
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)

	latest := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		latest[c.Name] = c
	}
	var kept []*http.Cookie
	for _, c := range latest {
		if c.MaxAge >= 0 {
			kept = append(kept, c)
		}
	}
	b.cookies = kept
	return rec
}

func newMiddlewareManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	m, store, _ := newTestManager(t, append([]session.Option{
		session.WithCookieManager(newCookieManager(t)),
	}, opts...)...)
	return m, store
}

// counter increments "visits" and reports the token of the request.
func counter(tokens *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := session.MustStateFromContext(r.Context())
		n, _ := state.GetInt("visits")
		state.Set("visits", n+1)
		token, _ := session.TokenFromContext(r.Context())
		*tokens = append(*tokens, token)
	}
}

func TestMiddleware_IssuesAndKeepsToken(t *testing.T) {
	t.Parallel()
	m, store := newMiddlewareManager(t)

	var tokens []string
	var visits int
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter(&tokens)(w, r)
		visits, _ = session.MustStateFromContext(r.Context()).GetInt("visits")
	}))
	b := &browser{t: t, handler: h, ip: "10.0.0.5"}

	rec := b.do(context.Background())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, b.cookies, 1)
	assert.Equal(t, "sid", b.cookies[0].Name)
	assert.Equal(t, 1, visits)

	b.do(context.Background())
	b.do(context.Background())
	assert.Equal(t, 3, visits)

	require.Len(t, tokens, 3)
	assert.NotEmpty(t, tokens[0])
	assert.Equal(t, tokens[0], tokens[1])
	assert.Equal(t, tokens[0], tokens[2])

	total, _, _ := store.Stats()
	assert.Equal(t, 1, total)
}

func TestMiddleware_ReplacesRejectedToken(t *testing.T) {
	t.Parallel()
	m, store := newMiddlewareManager(t)

	var tokens []string
	b := &browser{t: t, handler: m.Middleware(counter(&tokens)), ip: "10.0.0.5"}
	b.do(context.Background())

	b.ip = "192.168.1.5"
	b.do(context.Background())

	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])

	_, err := store.Get(context.Background(), tokens[0])
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(context.Background(), tokens[1])
	assert.NoError(t, err)
}

func TestMiddleware_Messages(t *testing.T) {
	t.Parallel()
	m, _ := newMiddlewareManager(t)

	var seen []string
	step := 0
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		msgs := session.MessagesFromContext(r.Context())
		require.NotNil(t, msgs)
		if step == 0 {
			msgs.Notice("profile saved")
		} else {
			seen = msgs.Pop(session.Notices)
		}
		step++
	}))
	b := &browser{t: t, handler: h, ip: "10.0.0.5"}

	b.do(context.Background())
	b.do(context.Background())
	assert.Equal(t, []string{"profile saved"}, seen)

	b.do(context.Background())
	assert.Empty(t, seen)
}

func TestMiddleware_End(t *testing.T) {
	t.Parallel()
	m, store := newMiddlewareManager(t)

	end := false
	var token string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ = session.TokenFromContext(r.Context())
		state := session.MustStateFromContext(r.Context())
		state.Set("k", "v")
		if end {
			require.NoError(t, m.End(w, r))
			assert.True(t, state.Destroyed())
		}
	}))
	b := &browser{t: t, handler: h, ip: "10.0.0.5"}

	b.do(context.Background())
	first := token
	_, err := store.Get(context.Background(), first)
	require.NoError(t, err)

	end = true
	b.do(context.Background())
	assert.Empty(t, b.cookies, "session cookie is expired on the client")

	_, err = store.Get(context.Background(), first)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	total, _, _ := store.Stats()
	assert.Zero(t, total, "ended session is not written back")
}

func TestMiddleware_BindAndUnbindUser(t *testing.T) {
	t.Parallel()
	m, store := newMiddlewareManager(t)
	ctx := context.Background()

	action := "bind"
	var token string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ = session.TokenFromContext(r.Context())
		switch action {
		case "bind":
			require.NoError(t, m.BindUser(r, 7))
		case "unbind":
			require.NoError(t, m.UnbindUser(r, 7))
		}
	}))

	laptop := &browser{t: t, handler: h, ip: "10.0.0.5"}
	phone := &browser{t: t, handler: h, ip: "172.16.0.9"}

	laptop.do(ctx)
	laptopToken := token
	phone.do(ctx)
	phoneToken := token

	for _, tok := range []string{laptopToken, phoneToken} {
		rec, err := store.Get(ctx, tok)
		require.NoError(t, err)
		require.NotNil(t, rec.UserID, "binding applied after the first write")
		assert.Equal(t, int64(7), *rec.UserID)
	}

	action = "unbind"
	laptop.do(ctx)

	_, err := store.Get(ctx, phoneToken)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	rec, err := store.Get(ctx, laptopToken)
	require.NoError(t, err)
	assert.Nil(t, rec.UserID)
}

func TestMiddleware_SkipsWriteOnCanceledRequest(t *testing.T) {
	t.Parallel()
	m, store := newMiddlewareManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session.MustStateFromContext(r.Context()).Set("k", "v")
		cancel()
	}))
	b := &browser{t: t, handler: h, ip: "10.0.0.5"}
	b.do(ctx)

	total, _, _ := store.Stats()
	assert.Zero(t, total)
}

func TestMiddleware_StoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.Join(session.ErrStorage, errors.New("connection reset"))
	m := session.New(
		session.WithStore(failingStore{Store: session.NewMemoryStore(), err: boom}),
		session.WithCookieManager(newCookieManager(t)),
	)

	called := false
	h := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	tr := session.NewCookieTransport(newCookieManager(t), "sid")
	seed := httptest.NewRecorder()
	require.NoError(t, tr.SetToken(seed, "tok", 0))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, carryCookies(seed))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}

func TestMiddleware_RequiresTransport(t *testing.T) {
	t.Parallel()
	m := session.New()
	assert.Panics(t, func() {
		m.Middleware(http.NotFoundHandler())
	})
}

func TestMiddleware_HelpersWithoutState(t *testing.T) {
	t.Parallel()
	m, _ := newMiddlewareManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.ErrorIs(t, m.End(httptest.NewRecorder(), req), session.ErrNoState)
	assert.ErrorIs(t, m.BindUser(req, 1), session.ErrNoState)
	assert.ErrorIs(t, m.UnbindUser(req, 1), session.ErrNoState)
	assert.Nil(t, session.MessagesFromContext(req.Context()))
	assert.Panics(t, func() { session.MustStateFromContext(req.Context()) })
}
