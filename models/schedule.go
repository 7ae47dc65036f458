package models

// TeacherRef is the embedded view of a teacher co-assigned to a schedule.
type TeacherRef struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Color  string `bson:"color,omitempty" json:"color,omitempty"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// ClassSchedule is a recurring weekly class slot. DayOfWeek is 0-6
// (Sunday=0); the slot recurs every week on that day and is not tied to a
// calendar date. StartTime/EndTime are wall-clock "HH:MM" strings on the
// same day, StartTime < EndTime.
type ClassSchedule struct {
	ID        string       `bson:"id" json:"id"`
	ClassID   string       `bson:"classId" json:"classId"`
	ClassName string       `bson:"className" json:"className"`
	Teachers  []TeacherRef `bson:"teachers" json:"teachers"`

	// Denormalized primary teacher (Teachers[0]), kept for single-teacher
	// display paths.
	TeacherID    string `bson:"teacherId" json:"teacherId"`
	TeacherName  string `bson:"teacherName" json:"teacherName"`
	TeacherColor string `bson:"teacherColor,omitempty" json:"teacherColor,omitempty"`

	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"`

	HasAttendance    bool   `bson:"hasAttendance" json:"hasAttendance"`
	EnrolledStudents int    `bson:"enrolledStudents,omitempty" json:"enrolledStudents"`
	Location         string `bson:"location,omitempty" json:"location,omitempty"`
	Notes            string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ScheduleFilter narrows schedule listings. TeacherID, ClassID and
// DayOfWeek filter at the repository; Search is applied in-service as a
// case-insensitive substring match on class or teacher names.
type ScheduleFilter struct {
	TeacherID string
	ClassID   string
	DayOfWeek *int
	Search    string
}

// CreateScheduleRequest is the payload for creating a schedule.
type CreateScheduleRequest struct {
	ClassID       string   `json:"classId" binding:"required"`
	TeacherIDs    []string `json:"teacherIds" binding:"required,min=1"`
	DayOfWeek     int      `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime     string   `json:"startTime" binding:"required"`
	EndTime       string   `json:"endTime" binding:"required"`
	HasAttendance bool     `json:"hasAttendance"`
	Location      string   `json:"location"`
	Notes         string   `json:"notes"`
}

// UpdateScheduleRequest carries a partial update; nil fields are left
// untouched.
type UpdateScheduleRequest struct {
	ClassID       *string   `json:"classId,omitempty"`
	TeacherIDs    *[]string `json:"teacherIds,omitempty"`
	DayOfWeek     *int      `json:"dayOfWeek,omitempty"`
	StartTime     *string   `json:"startTime,omitempty"`
	EndTime       *string   `json:"endTime,omitempty"`
	HasAttendance *bool     `json:"hasAttendance,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}
