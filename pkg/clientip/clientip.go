package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders lists the proxy headers inspected by GetIP, highest priority first.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts client addresses using a configurable header list.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the list of trusted proxy headers.
// Passing no headers makes the resolver rely on RemoteAddr only.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = headers
	}
}

// NewResolver returns a Resolver using DefaultHeaders unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// GetIP returns the client's IP address using the default header list.
func GetIP(r *http.Request) string {
	return defaultResolver.GetIP(r)
}

// GetIP returns the normalized client address or an empty string.
func (res *Resolver) GetIP(r *http.Request) string {
	addr, ok := res.Addr(r)
	if !ok {
		return ""
	}
	return addr.String()
}

// Addr returns the client address. IPv4-mapped IPv6 addresses are unmapped
// so that "::ffff:10.0.0.1" and "10.0.0.1" resolve to the same value.
func (res *Resolver) Addr(r *http.Request) (netip.Addr, bool) {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		// X-Forwarded-For and friends may carry a comma separated chain.
		for part := range strings.SplitSeq(value, ",") {
			if addr, ok := parseAddr(part); ok {
				return addr, true
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. set by tests or unix sockets.
		return parseAddr(r.RemoteAddr)
	}
	return parseAddr(host)
}

// parseAddr validates and normalizes an address string.
// Zoned addresses are rejected: they are never routable client origins.
func parseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
