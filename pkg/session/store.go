package session

import (
	"context"
	"time"
)

// CleanReason tells a CleanStatementFunc why a delete statement runs.
type CleanReason string

const (
	CleanRead    CleanReason = "read"
	CleanDestroy CleanReason = "destroy"
	CleanGC      CleanReason = "gc"
)

// Store defines the interface for session persistence
type Store interface {
	// Get retrieves a record by token. Returns ErrSessionNotFound if absent.
	Get(ctx context.Context, token string) (*Record, error)

	// Upsert inserts the record or refreshes subnet, expiry, user agent and
	// data of an existing one. The bound user is left untouched.
	Upsert(ctx context.Context, record *Record) error

	// Delete removes a record by token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string, reason CleanReason) error

	// DeleteExpired removes every record that expired before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// SetUserID binds a user to the record with the given token
	SetUserID(ctx context.Context, token string, userID int64) error

	// ClearUserID deletes every record of userID except exceptToken and
	// unbinds the user from exceptToken.
	ClearUserID(ctx context.Context, userID int64, exceptToken string) error
}
