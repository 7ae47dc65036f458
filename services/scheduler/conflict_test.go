package scheduler

import (
	"testing"

	"classgrid/models"
)

func slot(id string, day int, start, end string) models.ClassSchedule {
	return models.ClassSchedule{
		ID:        id,
		ClassName: "class-" + id,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCheckConflict(t *testing.T) {
	existing := []models.ClassSchedule{
		slot("a", 1, "09:00", "10:00"),
		slot("b", 1, "10:00", "11:00"),
	}

	tests := []struct {
		name      string
		candidate models.ClassSchedule
		excludeID string
		wantID    string
		wantNil   bool
	}{
		{
			name:      "overlapping both returns a conflict",
			candidate: slot("x", 1, "09:30", "10:30"),
			wantID:    "a",
		},
		{
			name:      "touching boundaries do not conflict",
			candidate: slot("x", 1, "10:00", "11:00"),
			excludeID: "b",
			wantNil:   true,
		},
		{
			name:      "different day never conflicts",
			candidate: slot("x", 2, "09:30", "10:30"),
			wantNil:   true,
		},
		{
			name:      "contained interval conflicts",
			candidate: slot("x", 1, "09:15", "09:45"),
			wantID:    "a",
		},
		{
			name:      "containing interval conflicts",
			candidate: slot("x", 1, "08:00", "12:00"),
			wantID:    "a",
		},
		{
			name:      "dropping onto own slot excludes itself",
			candidate: slot("a", 1, "09:00", "10:00"),
			excludeID: "a",
			wantNil:   true,
		},
		{
			name:      "gap between slots is free",
			candidate: slot("x", 1, "11:00", "12:00"),
			wantNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckConflict(tt.candidate, existing, tt.excludeID)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("CheckConflict = %v, want nil", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatal("CheckConflict = nil, want a conflict")
			}
			if got.ID != tt.wantID {
				t.Errorf("CheckConflict returned %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestConflictSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b models.ClassSchedule
	}{
		{"partial overlap", slot("a", 1, "09:00", "10:00"), slot("b", 1, "09:30", "10:30")},
		{"containment", slot("a", 1, "09:00", "12:00"), slot("b", 1, "10:00", "11:00")},
		{"touching", slot("a", 1, "09:00", "10:00"), slot("b", 1, "10:00", "11:00")},
		{"disjoint", slot("a", 1, "09:00", "10:00"), slot("b", 1, "11:00", "12:00")},
		{"identical", slot("a", 1, "09:00", "10:00"), slot("b", 1, "09:00", "10:00")},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab := HasConflict(tt.a, []models.ClassSchedule{tt.b}, "")
			ba := HasConflict(tt.b, []models.ClassSchedule{tt.a}, "")
			if ab != ba {
				t.Errorf("conflict not symmetric: a-vs-b=%v b-vs-a=%v", ab, ba)
			}
		})
	}
}
