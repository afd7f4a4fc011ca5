// Package clientip resolves the originating client address of an
// *http.Request when the service runs behind reverse proxies.
//
// Headers are consulted in priority order and the first one carrying a
// parseable address wins:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (left-most valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// The list can be replaced with WithHeaders when the deployment uses a
// different proxy chain. Only trust these headers when the service is not
// reachable directly: a client talking to the server without a proxy can
// set any of them.
//
// # Usage
//
//	ip := clientip.GetIP(r)
//
//	// or once per request
//	r = r.WithContext(clientip.SetIPToContext(r.Context(), clientip.GetIP(r)))
//
//	// or as middleware
//	handler = clientip.Middleware(handler)
//
// GetIP never returns an error. When no valid address is found it returns
// an empty string and the caller decides on a fallback.
package clientip
