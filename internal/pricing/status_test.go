package pricing

import (
	"testing"
	"time"
)

func TestRuleStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"before window", start.Add(-time.Second), StatusUpcoming},
		{"well before window", start.Add(-24 * time.Hour), StatusUpcoming},
		{"at start boundary", start, StatusActive},
		{"inside window", start.Add(30 * time.Minute), StatusActive},
		{"at end boundary", end, StatusActive},
		{"after window", end.Add(time.Second), StatusExpired},
		{"well after window", end.Add(24 * time.Hour), StatusExpired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RuleStatus(start, end, c.now); got != c.want {
				t.Errorf("RuleStatus(now=%v) = %q, want %q", c.now, got, c.want)
			}
		})
	}
}

func TestRuleStatusInvertedWindowNeverActive(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	for _, now := range []time.Time{start.Add(-time.Minute), end, start, start.Add(time.Minute)} {
		if got := RuleStatus(start, end, now); got == StatusActive {
			t.Errorf("RuleStatus(inverted, now=%v) = ACTIVE", now)
		}
	}
}
