package server

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := newRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("request over the limit should be rejected")
	}
}

func TestRateLimiterTracksKeysIndependently(t *testing.T) {
	limiter := newRateLimiter(1, time.Minute)

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("first client should be allowed")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatalf("second client should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("first client should now be limited")
	}
}

func TestRateLimiterRejectsEmptyKey(t *testing.T) {
	limiter := newRateLimiter(1, time.Minute)
	if limiter.Allow("") {
		t.Fatalf("empty key should be rejected")
	}
}
