package github

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func responseWith(status int, remaining string) *http.Response {
	header := http.Header{}
	if remaining != "" {
		header.Set(HeaderRateRemaining, remaining)
	}
	return &http.Response{StatusCode: status, Header: header}
}

func TestRateLimiter_Exhausted(t *testing.T) {
	t.Run("429 is always exhausted", func(t *testing.T) {
		limiter := NewRateLimiter()
		assert.True(t, limiter.Exhausted(responseWith(http.StatusTooManyRequests, "")))
	})

	t.Run("403 with zero remaining is exhausted", func(t *testing.T) {
		limiter := NewRateLimiter()
		assert.True(t, limiter.Exhausted(responseWith(http.StatusForbidden, "0")))
	})

	t.Run("403 with quota left is not exhausted", func(t *testing.T) {
		limiter := NewRateLimiter()
		assert.False(t, limiter.Exhausted(responseWith(http.StatusForbidden, "42")))
	})

	t.Run("nil response is not exhausted", func(t *testing.T) {
		limiter := NewRateLimiter()
		assert.False(t, limiter.Exhausted(nil))
	})
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	limiter := NewRateLimiter()

	header := http.Header{}
	header.Set(HeaderRateLimit, "5000")
	header.Set(HeaderRateRemaining, "123")
	header.Set(HeaderRateReset, "1700000000")
	limiter.UpdateFromResponse(&http.Response{StatusCode: http.StatusOK, Header: header})

	assert.Equal(t, 5000, limiter.Limit())
	assert.Equal(t, 123, limiter.Remaining())
	assert.Equal(t, time.Unix(1700000000, 0), limiter.ResetTime())

	// Malformed values leave the previous state untouched.
	header.Set(HeaderRateRemaining, "not-a-number")
	limiter.UpdateFromResponse(&http.Response{StatusCode: http.StatusOK, Header: header})
	assert.Equal(t, 123, limiter.Remaining())
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	limiter := NewRateLimiter()

	header := http.Header{}
	header.Set(HeaderRateReset, "1700000000")
	header.Set(HeaderRetryAfter, "90")
	before := time.Now()
	limiter.UpdateFromResponse(&http.Response{StatusCode: http.StatusForbidden, Header: header})

	// The retry window takes precedence over the primary reset timestamp.
	reset := limiter.ResetTime()
	assert.True(t, reset.After(before.Add(89*time.Second)))
	assert.True(t, reset.Before(before.Add(92*time.Second)))
}
