package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"classgrid/models"
)

var errNotFound = errors.New("not found")

// fakeScheduleRepo is an in-memory ScheduleRepository for tests.
type fakeScheduleRepo struct {
	mu        sync.Mutex
	schedules map[string]models.ClassSchedule
	nextID    int

	updateCalls int
	listErr     error
}

func newFakeScheduleRepo(seed ...models.ClassSchedule) *fakeScheduleRepo {
	r := &fakeScheduleRepo{schedules: map[string]models.ClassSchedule{}}
	for _, s := range seed {
		r.schedules[s.ID] = s
	}
	return r
}

func (r *fakeScheduleRepo) List(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.ClassSchedule
	for _, s := range r.schedules {
		if filter.ClassID != "" && s.ClassID != filter.ClassID {
			continue
		}
		if filter.DayOfWeek != nil && s.DayOfWeek != *filter.DayOfWeek {
			continue
		}
		if filter.TeacherID != "" && !scheduleHasTeacher(s, filter.TeacherID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func scheduleHasTeacher(s models.ClassSchedule, teacherID string) bool {
	if s.TeacherID == teacherID {
		return true
	}
	for _, t := range s.Teachers {
		if t.ID == teacherID {
			return true
		}
	}
	return false
}

func (r *fakeScheduleRepo) ListByDay(ctx context.Context, dayOfWeek int) ([]models.ClassSchedule, error) {
	return r.List(ctx, models.ScheduleFilter{DayOfWeek: &dayOfWeek})
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*models.ClassSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (r *fakeScheduleRepo) Create(ctx context.Context, schedule *models.ClassSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if schedule.ID == "" {
		r.nextID++
		schedule.ID = fmt.Sprintf("sched-%d", r.nextID)
	}
	r.schedules[schedule.ID] = *schedule
	return nil
}

func (r *fakeScheduleRepo) Update(ctx context.Context, id string, set map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	s, ok := r.schedules[id]
	if !ok {
		return errNotFound
	}
	for k, v := range set {
		switch k {
		case "dayOfWeek":
			s.DayOfWeek = v.(int)
		case "startTime":
			s.StartTime = v.(string)
		case "endTime":
			s.EndTime = v.(string)
		case "classId":
			s.ClassID = v.(string)
		case "className":
			s.ClassName = v.(string)
		case "location":
			s.Location = v.(string)
		case "notes":
			s.Notes = v.(string)
		case "hasAttendance":
			s.HasAttendance = v.(bool)
		}
	}
	r.schedules[id] = s
	return nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[id]; !ok {
		return errNotFound
	}
	delete(r.schedules, id)
	return nil
}

// fakeDirectoryRepo serves teachers and classes from maps.
type fakeDirectoryRepo struct {
	teachers map[string]models.Teacher
	classes  map[string]models.ClassRoom
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		teachers: map[string]models.Teacher{
			"t1": {ID: "t1", Name: "Alice Wong", Color: "hsl(120, 60%, 45%)"},
			"t2": {ID: "t2", Name: "Ben Otieno"},
		},
		classes: map[string]models.ClassRoom{
			"c1": {ID: "c1", Name: "Piano Basics", Active: true, Enrolled: 8},
			"c2": {ID: "c2", Name: "Violin Ensemble", Active: true, Enrolled: 5},
		},
	}
}

func (r *fakeDirectoryRepo) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeDirectoryRepo) GetTeachersByIDs(ctx context.Context, ids []string) ([]models.Teacher, error) {
	var out []models.Teacher
	for _, id := range ids {
		if t, ok := r.teachers[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeDirectoryRepo) ListActiveClasses(ctx context.Context) ([]models.ClassRoom, error) {
	var out []models.ClassRoom
	for _, c := range r.classes {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeDirectoryRepo) GetClassByID(ctx context.Context, id string) (*models.ClassRoom, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

// memCache records Set/Invalidate calls for assertions.
type memCache struct {
	mu          sync.Mutex
	entries     map[string][]models.ClassSchedule
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]models.ClassSchedule{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]models.ClassSchedule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *memCache) Set(ctx context.Context, key string, schedules []models.ClassSchedule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = schedules
}

func (c *memCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string][]models.ClassSchedule{}
	c.invalidated++
}

// memSessionStore holds reschedule sessions in a map.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.RescheduleSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]models.RescheduleSession{}}
}

func (s *memSessionStore) Save(ctx context.Context, session *models.RescheduleSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.RescheduleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, errNotFound
	}
	return &session, nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// recordingReminderQueue captures enqueued schedules.
type recordingReminderQueue struct {
	enqueued []models.ClassSchedule
}

func (q *recordingReminderQueue) EnqueueClassReminder(schedule models.ClassSchedule) error {
	q.enqueued = append(q.enqueued, schedule)
	return nil
}
