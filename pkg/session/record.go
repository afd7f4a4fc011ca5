package session

import (
	"slices"
	"time"
)

// Record is one persisted session row.
type Record struct {
	Token     string
	Subnet    int64
	Expires   int64 // unix seconds
	UserAgent string
	UserID    *int64
	Data      []byte
}

// IsExpired reports whether the record is logically dead at now.
// A record stays valid through its expiry second.
func (r *Record) IsExpired(now time.Time) bool {
	return r != nil && now.Unix() > r.Expires
}

// IsAuthenticated returns true if a user is bound to the record.
func (r *Record) IsAuthenticated() bool {
	return r != nil && r.UserID != nil
}

func (r *Record) clone() *Record {
	c := *r
	if r.UserID != nil {
		id := *r.UserID
		c.UserID = &id
	}
	c.Data = slices.Clone(r.Data)
	return &c
}
