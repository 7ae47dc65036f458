package scheduler

import (
	"context"
	"errors"
	"testing"

	"classgrid/models"
)

func newTestRescheduleService(repo *fakeScheduleRepo, sessions *memSessionStore, cache *memCache) *DefaultRescheduleService {
	svc := &DefaultRescheduleService{
		Repo:     repo,
		Sessions: sessions,
		Config:   testConfig(),
	}
	// Assign only a non-nil *memCache: a typed nil stored in the
	// ListingCache interface would defeat the service's nil check.
	if cache != nil {
		svc.Cache = cache
	}
	return svc
}

func TestStartReschedule(t *testing.T) {
	ctx := context.Background()
	seed := slot("a", 1, "09:00:00", "10:30:00")
	sessions := newMemSessionStore()
	svc := newTestRescheduleService(newFakeScheduleRepo(seed), sessions, nil)

	session, err := svc.Start(ctx, "a")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if session.SessionID == "" {
		t.Error("session has no ID")
	}
	if session.State != models.SessionStateDragging {
		t.Errorf("State = %q, want dragging", session.State)
	}
	// The captured payload is decorated like any listing entry.
	if session.Schedule.StartTime != "09:00" || session.Schedule.EndTime != "10:30" {
		t.Errorf("captured times = %s-%s, want 09:00-10:30",
			session.Schedule.StartTime, session.Schedule.EndTime)
	}
	if _, err := sessions.Get(ctx, session.SessionID); err != nil {
		t.Error("session not persisted")
	}

	if _, err := svc.Start(ctx, "ghost"); err == nil {
		t.Error("starting on a missing schedule should fail")
	}
}

func TestHoverReschedule(t *testing.T) {
	ctx := context.Background()
	// Monday 09:00-10:30; another class occupies Monday 14:30-15:30.
	dragged := slot("a", 1, "09:00", "10:30")
	blocker := slot("b", 1, "14:30", "15:30")

	tests := []struct {
		name        string
		dayOfWeek   int
		startTime   string
		wantCanDrop bool
		wantEnd     string
		wantBlocker bool
	}{
		{"free slot preserves duration", 1, "11:00", true, "12:30", false},
		{"free slot on another day", 3, "14:00", true, "15:30", false},
		{"dropping onto own window", 1, "09:00", true, "10:30", false},
		{"overlapping slot is blocked", 1, "14:00", false, "15:30", true},
		{"past end of grid", 1, "20:00", false, "21:30", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newMemSessionStore()
			svc := newTestRescheduleService(newFakeScheduleRepo(dragged, blocker), sessions, nil)
			session, err := svc.Start(ctx, "a")
			if err != nil {
				t.Fatalf("Start: %v", err)
			}

			result, err := svc.Hover(ctx, session.SessionID, tt.dayOfWeek, tt.startTime)
			if err != nil {
				t.Fatalf("Hover: %v", err)
			}
			if result.CanDrop != tt.wantCanDrop {
				t.Errorf("CanDrop = %v, want %v (%s)", result.CanDrop, tt.wantCanDrop, result.Reason)
			}
			if result.Target.EndTime != tt.wantEnd {
				t.Errorf("Target.EndTime = %s, want %s", result.Target.EndTime, tt.wantEnd)
			}
			if tt.wantBlocker {
				if result.Conflict == nil || result.Conflict.ScheduleID != "b" {
					t.Errorf("Conflict = %+v, want schedule b", result.Conflict)
				}
			} else if result.Conflict != nil {
				t.Errorf("unexpected conflict: %+v", result.Conflict)
			}

			stored, err := sessions.Get(ctx, session.SessionID)
			if err != nil {
				t.Fatalf("session lost after hover: %v", err)
			}
			if stored.State != models.SessionStateHovering {
				t.Errorf("stored State = %q, want hovering", stored.State)
			}
			if stored.Target == nil || stored.Target.StartTime != tt.startTime {
				t.Errorf("stored Target = %+v", stored.Target)
			}
			if stored.CanDrop != tt.wantCanDrop {
				t.Errorf("stored CanDrop = %v, want %v", stored.CanDrop, tt.wantCanDrop)
			}
		})
	}
}

func TestHoverValidation(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessionStore()
	svc := newTestRescheduleService(newFakeScheduleRepo(slot("a", 1, "09:00", "10:00")), sessions, nil)
	session, _ := svc.Start(ctx, "a")

	tests := []struct {
		name      string
		dayOfWeek int
		startTime string
	}{
		{"day out of range", 7, "09:00"},
		{"negative day", -1, "09:00"},
		{"malformed clock", 1, "9am"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Hover(ctx, session.SessionID, tt.dayOfWeek, tt.startTime)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}

	t.Run("unknown session", func(t *testing.T) {
		if _, err := svc.Hover(ctx, "ghost", 1, "09:00"); err == nil {
			t.Error("hover on unknown session should fail")
		}
	})
}

func TestDropReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("successful drop commits and clears the session", func(t *testing.T) {
		repo := newFakeScheduleRepo(slot("a", 1, "09:00", "10:30"))
		sessions := newMemSessionStore()
		cache := newMemCache()
		svc := newTestRescheduleService(repo, sessions, cache)

		session, _ := svc.Start(ctx, "a")
		if _, err := svc.Hover(ctx, session.SessionID, 1, "14:00"); err != nil {
			t.Fatalf("Hover: %v", err)
		}

		moved, err := svc.Drop(ctx, session.SessionID)
		if err != nil {
			t.Fatalf("Drop: %v", err)
		}
		if moved.StartTime != "14:00" || moved.EndTime != "15:30" {
			t.Errorf("moved to %s-%s, want 14:00-15:30", moved.StartTime, moved.EndTime)
		}

		stored, _ := repo.GetByID(ctx, "a")
		if stored.StartTime != "14:00" || stored.EndTime != "15:30" {
			t.Errorf("store shows %s-%s, want 14:00-15:30", stored.StartTime, stored.EndTime)
		}
		if cache.invalidated != 1 {
			t.Errorf("cache invalidations = %d, want 1", cache.invalidated)
		}
		if _, err := sessions.Get(ctx, session.SessionID); err == nil {
			t.Error("session survived a successful drop")
		}
	})

	t.Run("drop without a prior hover is rejected", func(t *testing.T) {
		svc := newTestRescheduleService(newFakeScheduleRepo(slot("a", 1, "09:00", "10:00")), newMemSessionStore(), nil)
		session, _ := svc.Start(ctx, "a")

		_, err := svc.Drop(ctx, session.SessionID)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})

	t.Run("conflict appearing after hover blocks the drop", func(t *testing.T) {
		repo := newFakeScheduleRepo(slot("a", 1, "09:00", "10:00"))
		sessions := newMemSessionStore()
		svc := newTestRescheduleService(repo, sessions, nil)

		session, _ := svc.Start(ctx, "a")
		if _, err := svc.Hover(ctx, session.SessionID, 1, "14:00"); err != nil {
			t.Fatalf("Hover: %v", err)
		}

		// Someone else takes the slot between hover and drop.
		late := slot("late", 1, "14:30", "15:30")
		if err := repo.Create(ctx, &late); err != nil {
			t.Fatalf("seed: %v", err)
		}

		_, err := svc.Drop(ctx, session.SessionID)
		var conflictErr *ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("err = %v, want ConflictError", err)
		}
		if conflictErr.Conflict == nil || conflictErr.Conflict.ScheduleID != "late" {
			t.Errorf("conflict detail = %+v, want schedule late", conflictErr.Conflict)
		}

		// The move never reached the store and the session stays live.
		stored, _ := repo.GetByID(ctx, "a")
		if stored.StartTime != "09:00" {
			t.Error("store was written despite conflict")
		}
		if _, err := sessions.Get(ctx, session.SessionID); err != nil {
			t.Error("session was cleared by a failed drop")
		}
	})

	t.Run("drop onto own slot succeeds", func(t *testing.T) {
		repo := newFakeScheduleRepo(slot("a", 1, "09:00", "10:30"))
		svc := newTestRescheduleService(repo, newMemSessionStore(), nil)

		session, _ := svc.Start(ctx, "a")
		if _, err := svc.Hover(ctx, session.SessionID, 1, "09:00"); err != nil {
			t.Fatalf("Hover: %v", err)
		}
		moved, err := svc.Drop(ctx, session.SessionID)
		if err != nil {
			t.Fatalf("Drop: %v", err)
		}
		if moved.StartTime != "09:00" || moved.EndTime != "10:30" {
			t.Errorf("moved to %s-%s, want 09:00-10:30", moved.StartTime, moved.EndTime)
		}
	})
}

func TestCancelReschedule(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessionStore()
	svc := newTestRescheduleService(newFakeScheduleRepo(slot("a", 1, "09:00", "10:00")), sessions, nil)

	session, _ := svc.Start(ctx, "a")
	if err := svc.Cancel(ctx, session.SessionID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := sessions.Get(ctx, session.SessionID); err == nil {
		t.Error("session survived cancel")
	}

	// Cancelling twice, or cancelling an unknown session, never errors.
	if err := svc.Cancel(ctx, session.SessionID); err != nil {
		t.Errorf("repeat Cancel: %v", err)
	}
	if err := svc.Cancel(ctx, "ghost"); err != nil {
		t.Errorf("Cancel on unknown session: %v", err)
	}
}
