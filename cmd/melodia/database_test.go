package main

import (
	"testing"
	"time"
)

func TestNextBackoffDoublesUntilCap(t *testing.T) {
	tests := []struct {
		name    string
		current time.Duration
		want    time.Duration
	}{
		{"initial step doubles", dbInitialBackoff, 1 * time.Second},
		{"mid range doubles", 2 * time.Second, 4 * time.Second},
		{"capped at max", 4 * time.Second, dbMaxBackoff},
		{"stays at max", dbMaxBackoff, dbMaxBackoff},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := nextBackoff(tc.current); got != tc.want {
				t.Fatalf("nextBackoff(%v) = %v, want %v", tc.current, got, tc.want)
			}
		})
	}
}
