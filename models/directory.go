package models

// Teacher is a directory entry for a teaching staff member. Color is a
// stored preference when present; otherwise it is derived from the ID so
// the teacher renders with a stable color across sessions.
type Teacher struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Role   string `bson:"role" json:"-"`
	Color  string `bson:"color,omitempty" json:"color"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// ClassRoom is a directory entry for an active class. Level and
// MaxStudents are display-only in the scheduling core.
type ClassRoom struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Code        string `bson:"code,omitempty" json:"code,omitempty"`
	Level       string `bson:"level,omitempty" json:"level,omitempty"`
	MaxStudents int    `bson:"maxStudents,omitempty" json:"maxStudents,omitempty"`
	Active      bool   `bson:"active" json:"active"`
	Enrolled    int    `bson:"enrolled,omitempty" json:"enrolled,omitempty"`
}
