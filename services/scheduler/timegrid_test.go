package scheduler

import (
	"testing"
	"time"

	"classgrid/config"
)

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		StartHour:    8,
		EndHour:      21,
		SlotDuration: 30,
		SlotHeight:   40,
		WeekStartsOn: 1,
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.clock); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	// minutesToTime(timeToMinutes(t)) must be the identity for every
	// well-formed HH:MM string.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			clock := MinutesToTime(h*60 + m)
			if got := MinutesToTime(TimeToMinutes(clock)); got != clock {
				t.Fatalf("round trip of %q yielded %q", clock, got)
			}
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00"},
		{"09:00", "09:00"},
		{"9:00", "9:00"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeClock(tt.in); got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		clock string
		want  bool
	}{
		{"08:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"12:60", false},
		{"9:00", false},
		{"09:00:00", false},
		{"ab:cd", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidClock(tt.clock); got != tt.want {
			t.Errorf("ValidClock(%q) = %v, want %v", tt.clock, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	if got := Duration("09:00", "10:30"); got != 90 {
		t.Errorf("Duration(09:00, 10:30) = %d, want 90", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestGridGeometry(t *testing.T) {
	cfg := testConfig()

	// 09:30 is three 30-minute slots past the 08:00 grid start.
	if got := TopOffset("09:30", cfg); got != 120 {
		t.Errorf("TopOffset(09:30) = %v, want 120", got)
	}
	// A 90-minute class spans three slots.
	if got := CardHeight("09:00", "10:30", cfg); got != 120 {
		t.Errorf("CardHeight(09:00, 10:30) = %v, want 120", got)
	}
}

func TestTimeSlots(t *testing.T) {
	cfg := testConfig()
	slots := TimeSlots(cfg)

	// 08:00 through 21:00 inclusive at 30-minute steps.
	if len(slots) != 27 {
		t.Fatalf("len(slots) = %d, want 27", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0])
	}
	if slots[len(slots)-1] != "21:00" {
		t.Errorf("last slot = %q, want 21:00", slots[len(slots)-1])
	}
	if slots[1] != "08:30" {
		t.Errorf("second slot = %q, want 08:30", slots[1])
	}
}

func TestWeekDates(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name         string
		weekStartsOn int
		wantFirst    string
	}{
		{"week starts Monday", 1, "2026-08-24"},
		{"week starts Sunday", 0, "2026-08-23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := WeekDates(wednesday, tt.weekStartsOn)
			if len(dates) != 7 {
				t.Fatalf("len(dates) = %d, want 7", len(dates))
			}
			if got := dates[0].Format("2006-01-02"); got != tt.wantFirst {
				t.Errorf("first date = %s, want %s", got, tt.wantFirst)
			}
			if int(dates[0].Weekday()) != tt.weekStartsOn {
				t.Errorf("first weekday = %d, want %d", dates[0].Weekday(), tt.weekStartsOn)
			}
			for i := 1; i < 7; i++ {
				if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
					t.Errorf("dates[%d] is not consecutive", i)
				}
			}
		})
	}
}

func TestSnapTime(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name     string
		original string
		deltaY   float64
		want     string
	}{
		{"two slots down", "09:00", 80, "10:00"},
		{"one slot up", "09:00", -40, "08:30"},
		{"rounds to nearest slot", "09:00", 50, "09:30"},
		{"clamped to grid start", "08:30", -400, "08:00"},
		{"clamped to grid end", "20:30", 400, "21:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapTime(tt.original, tt.deltaY, cfg); got != tt.want {
				t.Errorf("SnapTime(%q, %v) = %q, want %q", tt.original, tt.deltaY, got, tt.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	// Wednesday 2026-08-26 10:00 local.
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		dayOfWeek int
		start     string
		want      time.Time
	}{
		{"later same day", 3, "14:00", time.Date(2026, 8, 26, 14, 0, 0, 0, time.Local)},
		{"earlier same day rolls a week", 3, "09:00", time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)},
		{"next monday", 1, "09:00", time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.dayOfWeek, tt.start, now)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence = %v, want %v", got, tt.want)
			}
		})
	}
}
