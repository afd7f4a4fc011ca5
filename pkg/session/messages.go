package session

import (
	"encoding/json"
	"slices"
	"sync"
)

// MessageSet names one of the message queues of a session
type MessageSet string

const (
	Notices MessageSet = "notices"
	Errors  MessageSet = "errors"
)

// Formatter renders accumulated messages for display
type Formatter func(notices, errors []string) string

type message struct {
	Key  string `json:"key,omitempty"`
	Text string `json:"text"`
}

// Messages holds the notices and errors of one session.
// Reads clear a set unless the caller explicitly peeks.
type Messages struct {
	mu   sync.Mutex
	sets map[MessageSet][]message
}

// NewMessages creates empty message queues
func NewMessages() *Messages {
	return &Messages{sets: make(map[MessageSet][]message)}
}

// Add appends text to set
func (m *Messages) Add(set MessageSet, text string) {
	m.Put(set, "", text)
}

// Put stores text under key in set. An existing entry with the same key is
// replaced in place, so a key holds at most one message. An empty key appends.
func (m *Messages) Put(set MessageSet, key, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.init()
	if key != "" {
		if i := m.index(set, key); i >= 0 {
			m.sets[set][i].Text = text
			return
		}
	}
	m.sets[set] = append(m.sets[set], message{Key: key, Text: text})
}

// Notice appends a notice
func (m *Messages) Notice(text string) {
	m.Add(Notices, text)
}

// Error appends an error
func (m *Messages) Error(text string) {
	m.Add(Errors, text)
}

// Get returns the messages of set in insertion order and empties the set when clear is true
func (m *Messages) Get(set MessageSet, clear bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := texts(m.sets[set])
	if clear {
		delete(m.sets, set)
	}
	return out
}

// Pop returns and clears the messages of set
func (m *Messages) Pop(set MessageSet) []string {
	return m.Get(set, true)
}

// Peek returns the messages of set without clearing them
func (m *Messages) Peek(set MessageSet) []string {
	return m.Get(set, false)
}

// GetByKey returns the message stored under key, removing it when clear is true
func (m *Messages) GetByKey(set MessageSet, key string, clear bool) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(set, key)
	if i < 0 {
		return "", false
	}
	text := m.sets[set][i].Text
	if clear {
		m.removeAt(set, i)
	}
	return text, true
}

// Remove deletes the message stored under key and reports whether it existed
func (m *Messages) Remove(set MessageSet, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(set, key)
	if i < 0 {
		return false
	}
	m.removeAt(set, i)
	return true
}

// HasAny reports whether any set holds a message
func (m *Messages) HasAny() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, msgs := range m.sets {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Has reports whether set holds a message
func (m *Messages) Has(set MessageSet) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sets[set]) > 0
}

// HasKey reports whether set holds a message under key
func (m *Messages) HasKey(set MessageSet, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index(set, key) >= 0
}

// All returns errors followed by notices
func (m *Messages) All(clear bool) []string {
	return append(m.Get(Errors, clear), m.Get(Notices, clear)...)
}

// Render passes notices and errors to fn and returns its output. With clear
// set both sets are emptied even when fn is nil.
func (m *Messages) Render(clear bool, fn Formatter) string {
	notices, errs := m.Get(Notices, clear), m.Get(Errors, clear)
	if fn == nil {
		return ""
	}
	return fn(notices, errs)
}

// MarshalJSON implements json.Marshaler
func (m *Messages) MarshalJSON() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[MessageSet][]message, len(m.sets))
	for set, msgs := range m.sets {
		if len(msgs) > 0 {
			out[set] = msgs
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Messages) UnmarshalJSON(b []byte) error {
	sets := make(map[MessageSet][]message)
	if err := json.Unmarshal(b, &sets); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = sets
	return nil
}

func (m *Messages) init() {
	if m.sets == nil {
		m.sets = make(map[MessageSet][]message)
	}
}

func (m *Messages) index(set MessageSet, key string) int {
	if key == "" {
		return -1
	}
	return slices.IndexFunc(m.sets[set], func(msg message) bool {
		return msg.Key == key
	})
}

func (m *Messages) removeAt(set MessageSet, i int) {
	m.sets[set] = slices.Delete(m.sets[set], i, i+1)
	if len(m.sets[set]) == 0 {
		delete(m.sets, set)
	}
}

func texts(msgs []message) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = msg.Text
	}
	return out
}
