package utils

import (
	"golang.org/x/time/rate"
)

type RateLimiter interface {
	Allow() bool
}

var _ RateLimiter = &rate.Limiter{}

type MultiRateLimiter struct {
	limiters []RateLimiter
}

var _ RateLimiter = &MultiRateLimiter{}

func NewMultiRateLimiter(limiters ...RateLimiter) *MultiRateLimiter {
	ml := &MultiRateLimiter{}
	for _, limiter := range limiters {
		ml.AddLimiter(limiter)
	}
	return ml
}

func (ml *MultiRateLimiter) AddLimiter(limiter RateLimiter) {
	if multi, ok := limiter.(*MultiRateLimiter); ok {
		ml.limiters = append(ml.limiters, multi.limiters...)
	} else {
		ml.limiters = append(ml.limiters, limiter)
	}
}

// Allow consumes a token from every limiter, so a request denied by one limiter still counts for the others
func (ml *MultiRateLimiter) Allow() bool {
	allow := true
	for _, limiter := range ml.limiters {
		allow = limiter.Allow() && allow
	}
	return allow
}
