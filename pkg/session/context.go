package session

import "context"

type (
	stateContextKey struct{}
	tokenContextKey struct{}
)

// WithState adds a session state to the context
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, state)
}

// StateFromContext retrieves the session state from the context
func StateFromContext(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(stateContextKey{}).(*State)
	return state, ok && state != nil
}

// MustStateFromContext retrieves the session state from the context or panics
func MustStateFromContext(ctx context.Context) *State {
	state, ok := StateFromContext(ctx)
	if !ok {
		panic("session: state not found in context")
	}
	return state
}

// WithToken adds the session token to the context
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext retrieves the session token from the context
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

// MessagesFromContext returns the message queues of the current session, or nil
func MessagesFromContext(ctx context.Context) *Messages {
	state, ok := StateFromContext(ctx)
	if !ok {
		return nil
	}
	return state.Messages()
}
