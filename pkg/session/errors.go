package session

import "errors"

var (
	// ErrSessionNotFound indicates no record exists for the token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the record is past its expiry
	ErrSessionExpired = errors.New("session.expired")

	// ErrSubnetMismatch indicates the request comes from another network
	ErrSubnetMismatch = errors.New("session.subnet_mismatch")

	// ErrUserAgentMismatch indicates the request comes from another client
	ErrUserAgentMismatch = errors.New("session.user_agent_mismatch")

	// ErrRejected indicates a read-acceptance hook rejected a valid record
	ErrRejected = errors.New("session.rejected")

	// ErrInvalidSession indicates a nil record or a record without token
	ErrInvalidSession = errors.New("session.invalid")

	// ErrEmptyToken indicates an operation was called without a token
	ErrEmptyToken = errors.New("session.empty_token")

	// ErrStorage wraps failures of the backing store
	ErrStorage = errors.New("session.storage_failed")

	// ErrSchemaMissing indicates the sessions table does not exist, usually
	// because migrations were not applied
	ErrSchemaMissing = errors.New("session.schema_missing")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidPayload indicates the stored payload could not be decoded
	ErrInvalidPayload = errors.New("session.invalid_payload")

	// ErrNoState indicates the request context carries no session state
	ErrNoState = errors.New("session.no_state")
)
