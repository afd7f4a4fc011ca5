package fingerprint

import (
	"encoding/binary"
	"net/netip"
)

const (
	classAMax = 0x7FFFFFFF // 127.255.255.255
	classBMax = 0xBFFFFFFF // 191.255.255.255
)

// Classify returns the classful network prefix of ip.
// Non-IPv4 or invalid input returns 0.
func Classify(ip string) int64 {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return 0
	}
	return ClassifyAddr(addr)
}

// ClassifyAddr is Classify for an already parsed address.
func ClassifyAddr(addr netip.Addr) int64 {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0
	}

	b := addr.As4()
	v := binary.BigEndian.Uint32(b[:])

	switch {
	case v <= classAMax:
		return int64(v >> 24)
	case v <= classBMax:
		return int64(v >> 16)
	default:
		return int64(v >> 8)
	}
}
