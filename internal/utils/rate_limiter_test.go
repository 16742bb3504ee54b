package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCreateRequestRateLimiterNoLimit(t *testing.T) {
	assert.Nil(t, CreateRequestRateLimiter(nil, nil, nil))
}

func TestCreateRequestRateLimiterBurst(t *testing.T) {
	limiter := CreateRequestRateLimiter(nil, ToPtr(3.0), nil)
	require.NotNil(t, limiter)

	// burst equals the per-minute quota, refill is far slower than the test
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(), "request %d", i)
	}
	assert.False(t, limiter.Allow())
}

func TestMultiRateLimiterStrictest(t *testing.T) {
	limiter := CreateRequestRateLimiter(ToPtr(100.0), nil, ToPtr(2.0))
	require.NotNil(t, limiter)

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestMultiRateLimiterFlatten(t *testing.T) {
	inner := NewMultiRateLimiter(CreateRequestRateLimiter(ToPtr(1.0), nil, nil))
	outer := NewMultiRateLimiter(inner, CreateRequestRateLimiter(nil, ToPtr(1.0), nil))
	assert.Len(t, outer.limiters, 2)
}
