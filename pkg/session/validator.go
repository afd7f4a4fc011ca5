package session

import (
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
)

// Validator decides whether a stored record may be used by the current request.
type Validator struct {
	skipSubnet bool
	accept     ReadAcceptFunc
}

// NewValidator creates a Validator. accept may be nil.
func NewValidator(skipSubnet bool, accept ReadAcceptFunc) *Validator {
	return &Validator{
		skipSubnet: skipSubnet,
		accept:     accept,
	}
}

// Validate returns nil when the record passes every check, otherwise the
// reason for rejection. The checks are:
//
//   - the request subnet equals the stored one (unless skipped),
//   - now is not after the stored expiry,
//   - the request User-Agent equals the stored one exactly.
//
// The acceptance hook always sees the tentative decision and may turn an
// accept into ErrRejected.
func (v *Validator) Validate(rec *Record, token string, fp fingerprint.Fingerprint, now time.Time) error {
	if rec == nil {
		return ErrInvalidSession
	}

	var err error
	switch {
	case !v.skipSubnet && rec.Subnet != fp.Subnet:
		err = ErrSubnetMismatch
	case rec.IsExpired(now):
		err = ErrSessionExpired
	case rec.UserAgent != fp.UserAgent:
		err = ErrUserAgentMismatch
	}

	if v.accept != nil && !v.accept(err == nil, rec, token) && err == nil {
		err = ErrRejected
	}

	return err
}
