// Package fingerprint derives the coarse request fingerprint that binds a
// server-side session to the client that created it.
//
// A Fingerprint is the pair (subnet, User-Agent). The subnet is a classful
// prefix of the client's IPv4 address:
//
//	0.0.0.0   – 127.255.255.255  → top 8 bits  (/8)
//	128.0.0.0 – 191.255.255.255  → top 16 bits (/16)
//	everything else              → top 24 bits (/24)
//
// Binding to the neighbourhood instead of the exact address tolerates DHCP
// and NAT churn while still noticing a token replayed from a different
// network. This is a heuristic, not a security guarantee: an attacker on the
// same network with the same User-Agent passes the check.
//
// Addresses that are not IPv4 (IPv6, unparseable or empty input) classify
// to 0, so every such client shares one subnet and is effectively exempt
// from the subnet check. IPv4-mapped IPv6 addresses are unmapped first.
//
// # Usage
//
//	fp := fingerprint.FromRequest(r)
//	subnet := fingerprint.Classify("10.0.0.5") // 10
//
// Middleware stores the fingerprint in the request context so later layers
// can call FromContext instead of recomputing it.
package fingerprint
