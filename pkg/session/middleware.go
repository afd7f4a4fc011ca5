package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Middleware runs the session lifecycle around next: it reads the token from
// the transport, restores the State into the request context and writes the
// State back once next returns. A missing or rejected token is replaced by a
// fresh random one. The write is skipped when the session was ended or the
// request was canceled.
//
// Middleware panics when the Manager has no transport.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	if m.transport == nil {
		panic("session: middleware requires a transport, use WithTransport or WithCookieManager")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		fp := fingerprint.FromRequest(r)

		token, _ := m.transport.GetToken(r)
		data, found, err := m.Read(ctx, token, fp)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		state := NewState()
		if found {
			if decoded, err := DecodeState(data); err != nil {
				m.logger.WarnContext(ctx, "discarding undecodable session payload", logger.Error(err))
			} else {
				state = decoded
			}
		} else {
			if token, err = generateToken(); err != nil {
				m.logger.ErrorContext(ctx, "failed to generate session token", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Headers must be sent before the handler writes the body.
		if err := m.transport.SetToken(w, token, m.config.Lifetime); err != nil {
			m.logger.ErrorContext(ctx, "failed to set session token", logger.Error(err))
		}

		ctx = WithState(WithToken(ctx, token), state)
		next.ServeHTTP(w, r.WithContext(ctx))

		if state.Destroyed() || ctx.Err() != nil {
			return
		}

		payload, err := state.Encode()
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to encode session state", logger.Error(err))
			return
		}
		if err := m.Write(ctx, token, payload, fp); err != nil {
			return
		}

		if userID, ok := state.takePendingUser(); ok {
			if err := m.SetUser(ctx, token, userID); err != nil {
				m.logger.ErrorContext(ctx, "failed to bind user to session",
					logger.UserID(userID),
					logger.Error(err),
				)
			}
		}
	})
}

// End destroys the current session and clears the token on the client.
// The middleware does not write the State of an ended session.
func (m *Manager) End(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	state, ok := StateFromContext(ctx)
	if !ok {
		return ErrNoState
	}
	state.markDestroyed()

	token, _ := TokenFromContext(ctx)
	if err := m.Destroy(ctx, token); err != nil {
		return err
	}

	if m.transport != nil {
		return m.transport.ClearToken(w)
	}
	return nil
}

// BindUser binds userID to the current session. The binding is applied right
// after the State is written, since a new session has no record before that.
func (m *Manager) BindUser(r *http.Request, userID int64) error {
	state, ok := StateFromContext(r.Context())
	if !ok {
		return ErrNoState
	}
	state.setPendingUser(userID)
	return nil
}

// UnbindUser ends every other session of userID and unbinds it from the
// current one, e.g. after a password change.
func (m *Manager) UnbindUser(r *http.Request, userID int64) error {
	ctx := r.Context()
	state, ok := StateFromContext(ctx)
	if !ok {
		return ErrNoState
	}
	if pending, ok := state.takePendingUser(); ok && pending != userID {
		state.setPendingUser(pending)
	}

	token, ok := TokenFromContext(ctx)
	if !ok {
		return errors.Join(ErrNoState, ErrEmptyToken)
	}
	return m.ClearUser(ctx, userID, token)
}
