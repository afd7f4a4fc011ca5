package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
)

// State is the per-request view of a session payload: arbitrary values plus
// the message queues. The middleware decodes it from the stored payload and
// encodes it back at the end of the request.
type State struct {
	mu          sync.RWMutex
	values      map[string]any
	messages    *Messages
	destroyed   bool
	pendingUser *int64
}

type statePayload struct {
	Values   map[string]any `json:"values,omitempty"`
	Messages *Messages      `json:"messages,omitempty"`
}

// NewState creates an empty state
func NewState() *State {
	return &State{
		values:   make(map[string]any),
		messages: NewMessages(),
	}
}

// DecodeState restores a state from a payload produced by Encode.
// An empty payload yields an empty state.
func DecodeState(data []byte) (*State, error) {
	s := NewState()
	if len(data) == 0 {
		return s, nil
	}

	p := statePayload{Messages: s.messages}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if p.Values != nil {
		s.values = p.Values
	}
	if p.Messages != nil {
		s.messages = p.Messages
	}
	return s, nil
}

// Encode serializes values and messages
func (s *State) Encode() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := statePayload{Values: s.values}
	if s.messages.HasAny() {
		p.Messages = s.messages
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	return data, nil
}

// Messages returns the message queues of the session
func (s *State) Messages() *Messages {
	return s.messages
}

// Get retrieves a value from session data
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *State) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from session data
func (s *State) GetInt(key string) (int, bool) {
	v, ok := s.GetInt64(key)
	return int(v), ok
}

// GetInt64 retrieves an integer value from session data.
// Numbers restored from a payload arrive as json.Number and keep full precision.
func (s *State) GetInt64(key string) (int64, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *State) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in session data
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes a value from session data
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Clear removes all values. Messages are kept.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]any)
}

// Destroyed reports whether the session was ended during this request
func (s *State) Destroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}

func (s *State) markDestroyed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
}

func (s *State) setPendingUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingUser = &userID
}

func (s *State) takePendingUser() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingUser == nil {
		return 0, false
	}
	id := *s.pendingUser
	s.pendingUser = nil
	return id, true
}
