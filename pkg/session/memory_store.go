package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory.
// It is meant for tests and single-process development setups; records
// are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
	}
}

// Get retrieves a record by token
func (m *MemoryStore) Get(ctx context.Context, token string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[token]
	if !exists {
		return nil, ErrSessionNotFound
	}

	return rec.clone(), nil
}

// Upsert inserts or refreshes a record, keeping an existing user binding
func (m *MemoryStore) Upsert(ctx context.Context, record *Record) error {
	if record == nil || record.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec := record.clone()
	rec.UserID = nil
	if existing, ok := m.records[record.Token]; ok {
		rec.UserID = existing.UserID
	}

	m.records[record.Token] = rec
	return nil
}

// Delete removes a record by token
func (m *MemoryStore) Delete(ctx context.Context, token string, _ CleanReason) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, token)
	return nil
}

// DeleteExpired removes all records with expiry before now
func (m *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	cutoff := now.Unix()
	for token, rec := range m.records {
		if rec.Expires < cutoff {
			delete(m.records, token)
			n++
		}
	}

	return n, nil
}

// SetUserID binds userID to the record with token
func (m *MemoryStore) SetUserID(ctx context.Context, token string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[token]; ok {
		id := userID
		rec.UserID = &id
	}
	return nil
}

// ClearUserID removes other records of userID and unbinds exceptToken
func (m *MemoryStore) ClearUserID(ctx context.Context, userID int64, exceptToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, rec := range m.records {
		if token != exceptToken && rec.UserID != nil && *rec.UserID == userID {
			delete(m.records, token)
		}
	}

	if rec, ok := m.records[exceptToken]; ok {
		rec.UserID = nil
	}

	return nil
}

// Stats returns memory store statistics
func (m *MemoryStore) Stats() (total, authenticated, anonymous int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total = len(m.records)
	for _, rec := range m.records {
		if rec.IsAuthenticated() {
			authenticated++
		} else {
			anonymous++
		}
	}
	return
}
