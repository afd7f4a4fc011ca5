package fingerprint

import (
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/clientip"
)

// LocalIP is assumed when a request carries no usable client address,
// e.g. requests built in tests or served over a unix socket.
const LocalIP = "127.0.0.1"

// Fingerprint identifies the network neighbourhood and client software of a request.
type Fingerprint struct {
	IP        string
	Subnet    int64
	UserAgent string
}

// New builds a Fingerprint from a client address and User-Agent string.
// An empty ip is treated as LocalIP. An empty userAgent is a valid identity.
func New(ip, userAgent string) Fingerprint {
	if ip == "" {
		ip = LocalIP
	}
	return Fingerprint{
		IP:        ip,
		Subnet:    Classify(ip),
		UserAgent: userAgent,
	}
}

// FromRequest returns the fingerprint stored by Middleware, or computes it.
// A client IP already resolved by clientip.Middleware is reused.
func FromRequest(r *http.Request) Fingerprint {
	if fp, ok := FromContext(r.Context()); ok {
		return fp
	}
	return generate(r)
}

func generate(r *http.Request) Fingerprint {
	ip := clientip.GetIPFromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	return New(ip, r.UserAgent())
}
