package utils

import (
	"net"
	"net/http"
	"strings"
)

func GetIpFromHostPort(hostPort string) (net.IP, string) {
	if host, _, err := net.SplitHostPort(hostPort); err == nil {
		if ip := net.ParseIP(host); ip != nil {
			return ip, host
		}
	}
	return nil, hostPort
}

// GetRequestClientIpFromProxyHeader tries the headers in order, and takes the first valid IP
// from a comma-separated list like X-Forwarded-For
func GetRequestClientIpFromProxyHeader(r *http.Request, headers []string) (string, bool) {
	for _, header := range headers {
		if value := r.Header.Get(header); value != "" {
			for _, part := range strings.Split(value, ",") {
				ip := strings.TrimSpace(part)
				if net.ParseIP(ip) != nil {
					return ip, true
				}
			}
		}
	}
	return "", false
}
