package utils

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// TrustedProxies is a set of IPs and subnets whose proxy headers are trusted
type TrustedProxies struct {
	prefixes []netip.Prefix
}

func NewTrustedProxies(entries []string) (*TrustedProxies, error) {
	tp := &TrustedProxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		var prefix netip.Prefix
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid IP or CIDR: %s", entry)
			}
			prefix = p.Masked()
		} else {
			addr, err := netip.ParseAddr(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid IP or CIDR: %s", entry)
			}
			prefix = netip.PrefixFrom(addr, addr.BitLen())
		}
		tp.prefixes = append(tp.prefixes, prefix)
	}
	return tp, nil
}

func (tp *TrustedProxies) Contains(ip net.IP) bool {
	if tp == nil || ip == nil {
		return false
	}
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range tp.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
