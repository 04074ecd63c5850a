package ratelimiter_test

import (
	"testing"

	"github.com/bettergovph/open-monitoring/internal/ratelimiter"
)

func TestNew_DisabledAllowsEverything(t *testing.T) {
	for _, r := range []int{0, -5} {
		l := ratelimiter.New(r)
		if l != nil {
			t.Fatalf("rate %d: expected nil limiter", r)
		}
		for i := 0; i < 1000; i++ {
			if !l.Allow() {
				t.Fatalf("rate %d: request %d was rejected", r, i)
			}
		}
	}
}

func TestLimiter_BurstEqualsRate(t *testing.T) {
	l := ratelimiter.New(3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("request %d within burst was rejected", i)
		}
	}
	if l.Allow() {
		t.Fatal("expected request beyond burst to be rejected")
	}
}
