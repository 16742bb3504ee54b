package utils

import "net"

// ClientKey groups client addresses for per-client state.
// IPv6 clients are grouped by their /64 subnet, since a single host usually owns the whole subnet
func ClientKey(clientAddr string) string {
	if clientAddr == "" {
		return "unknown$"
	}
	ip := net.ParseIP(clientAddr)
	if ip == nil {
		return "raw$" + clientAddr
	}
	if ip4 := ip.To4(); ip4 != nil {
		return "ipv4$" + ip4.String()
	}
	subnetBytes := make([]byte, net.IPv6len)
	copy(subnetBytes[:8], ip.To16()[:8])
	return "ipv6$" + net.IP(subnetBytes).String()
}
