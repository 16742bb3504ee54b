package ioutils

import (
	"errors"
	"golang.org/x/exp/slices"
	"strconv"
	"strings"
)

const (
	EncodingIdentity = ""
	EncodingGzip     = "gzip"
	EncodingDeflate  = "deflate"
	EncodingBrotli   = "br"
	EncodingZstd     = "zstd"
)

var SupportedEncodings = []string{EncodingZstd, EncodingBrotli, EncodingGzip, EncodingDeflate}

var UnsupportedEncodingError = errors.New("unsupported encoding")

type acceptedEncoding struct {
	name string
	q    float64
}

func parseAcceptEncoding(header string) []acceptedEncoding {
	var result []acceptedEncoding
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		name := strings.ToLower(strings.TrimSpace(fields[0]))
		if name == "" {
			continue
		}
		q := 1.0
		for _, param := range fields[1:] {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || strings.ToLower(strings.TrimSpace(key)) != "q" {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			} else {
				q = 0
			}
		}
		result = append(result, acceptedEncoding{name: name, q: q})
	}
	return result
}

// NegotiateEncoding picks the encoding with the highest q value from the Accept-Encoding header.
// Ties are broken by the order of preferred. EncodingIdentity is returned when nothing matches
func NegotiateEncoding(acceptEncoding string, preferred []string) string {
	accepted := parseAcceptEncoding(acceptEncoding)
	if len(accepted) == 0 {
		return EncodingIdentity
	}

	qualityOf := func(encoding string) float64 {
		wildcard := -1.0
		for _, ae := range accepted {
			if ae.name == encoding {
				return ae.q
			}
			if ae.name == "*" {
				wildcard = ae.q
			}
		}
		return wildcard
	}

	best := EncodingIdentity
	bestQ := 0.0
	for _, encoding := range preferred {
		if !slices.Contains(SupportedEncodings, encoding) {
			continue
		}
		if q := qualityOf(encoding); q > bestQ {
			best, bestQ = encoding, q
		}
	}
	return best
}
