package security

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Request %d denied within the limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Request over the limit was allowed")
	}

	// Other clients are unaffected.
	if !rl.Allow("10.0.0.2") {
		t.Error("Fresh client was denied")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("First request denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("Second request allowed before refill")
	}

	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("Request denied after window elapsed")
	}
}
