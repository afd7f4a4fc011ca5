package session

import (
	"net/http"
	"time"
)

// Transport carries the session token between client and server.
// The token is the only thing that leaves the server; the payload stays in the Store.
type Transport interface {
	// GetToken extracts the session token from the request
	GetToken(r *http.Request) (string, error)

	// SetToken sends the session token in the response
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken removes the session token from the response
	ClearToken(w http.ResponseWriter) error
}
