package notifications

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2026-09-01T12:00:00Z")

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 0, "0s ago"},
		{"45 seconds", 45 * time.Second, "45s ago"},
		{"59 seconds", 59 * time.Second, "59s ago"},
		{"one minute", 60 * time.Second, "1m ago"},
		{"half an hour", 30 * time.Minute, "30m ago"},
		{"two hours", 2 * time.Hour, "2h ago"},
		{"23 hours", 23 * time.Hour, "23h ago"},
		{"one day", 24 * time.Hour, "1d ago"},
		{"six days", 6 * 24 * time.Hour, "6d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(now, now.Add(-tt.ago)); got != tt.want {
				t.Errorf("FormatTime(-%s), got: %s, want: %s", tt.ago, got, tt.want)
			}
		})
	}
}

func TestFormatTimeFallsBackToCalendarDate(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2026-09-01T12:00:00Z")
	got := FormatTime(now, now.Add(-8*24*time.Hour))
	if got != "Aug 24, 2026" {
		t.Errorf("calendar fallback, got: %s, want: Aug 24, 2026", got)
	}
}

func TestFormatTimeEdges(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2026-09-01T12:00:00Z")

	if got := FormatTime(now, time.Time{}); got != "" {
		t.Errorf("zero timestamp, got: %q, want empty", got)
	}
	// A slightly future timestamp clamps to zero seconds instead of going negative.
	if got := FormatTime(now, now.Add(10*time.Second)); got != "0s ago" {
		t.Errorf("future timestamp, got: %q, want: 0s ago", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		zero bool
	}{
		{"rfc3339", "2026-08-30T10:00:00Z", false},
		{"rfc3339 with nanos", "2026-08-30T10:00:00.123456789Z", false},
		{"sql style", "2026-08-30 10:00:00", false},
		{"no zone", "2026-08-30T10:00:00", false},
		{"empty", "", true},
		{"garbage", "yesterday-ish", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimestamp(tt.raw)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q) zero = %v, want %v", tt.raw, got.IsZero(), tt.zero)
			}
		})
	}
}
