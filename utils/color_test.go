package utils

import (
	"regexp"
	"testing"
)

var hslPattern = regexp.MustCompile(`^hsl\((\d{1,3}), (\d{1,2})%, (\d{1,2})%\)$`)

func TestColorForID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"uuid-shaped id", "8f14e45f-ceea-467f-9575-0c6f2e8b1a44"},
		{"short id", "t1"},
		{"empty id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := ColorForID(tt.id)
			if !hslPattern.MatchString(color) {
				t.Fatalf("ColorForID(%q) = %q, not an hsl() string", tt.id, color)
			}
			// Stable across calls.
			if again := ColorForID(tt.id); again != color {
				t.Errorf("ColorForID(%q) not stable: %q vs %q", tt.id, color, again)
			}
		})
	}
}

func TestColorForIDSpreadsIDs(t *testing.T) {
	a := ColorForID("teacher-a")
	b := ColorForID("teacher-b")
	if a == b {
		t.Errorf("distinct IDs collapsed to one color: %q", a)
	}
}
