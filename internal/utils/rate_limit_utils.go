package utils

import (
	"golang.org/x/time/rate"
	"math"
)

func constrainToInt(f float64) int {
	if f < 0 {
		return 0
	}
	if f > float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// CreateRequestRateLimiter returns nil if no limit is given
func CreateRequestRateLimiter(qps, qpm, qph *float64) RateLimiter {
	if qps == nil && qpm == nil && qph == nil {
		return nil
	}
	limiter := NewMultiRateLimiter()
	if qps != nil {
		limiter.AddLimiter(rate.NewLimiter(rate.Limit(*qps), max(constrainToInt(*qps), 1)))
	}
	if qpm != nil {
		limiter.AddLimiter(rate.NewLimiter(rate.Limit(*qpm/60), max(constrainToInt(*qpm), 1)))
	}
	if qph != nil {
		limiter.AddLimiter(rate.NewLimiter(rate.Limit(*qph/60/60), max(constrainToInt(*qph), 1)))
	}
	return limiter
}
