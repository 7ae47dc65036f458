package models

// PositionedSchedule augments a schedule with per-render grid geometry.
// Top/Height are pixels on the day column; Left/Width are percentages of
// the column assigned by the overlap layout. Never persisted.
type PositionedSchedule struct {
	ClassSchedule

	Top         float64 `json:"top"`
	Height      float64 `json:"height"`
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
	ColumnIndex int     `json:"columnIndex"`
	ColumnCount int     `json:"columnCount"`
}

// DayColumn is one rendered day of the board.
type DayColumn struct {
	Date      string               `json:"date"` // YYYY-MM-DD
	DayOfWeek int                  `json:"dayOfWeek"`
	Schedules []PositionedSchedule `json:"schedules"`
}

// Board is a positioned day or week view plus the slot boundaries that
// label the time column.
type Board struct {
	View      string      `json:"view"` // "day" or "week"
	TimeSlots []string    `json:"timeSlots"`
	Days      []DayColumn `json:"days"`
}

// MonthCell is one date cell of the month view. Schedules recur weekly,
// so a schedule appears in every cell matching its DayOfWeek; display is
// capped with an overflow counter.
type MonthCell struct {
	Date      string          `json:"date"`
	DayOfWeek int             `json:"dayOfWeek"`
	InMonth   bool            `json:"inMonth"`
	Entries   []ClassSchedule `json:"entries"`
	Overflow  int             `json:"overflow"`
}

// MonthBoard is the 6-week calendar grid of the month view.
type MonthBoard struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Weeks [][]MonthCell `json:"weeks"`
}

// SlotDefaults seeds the create form when a schedule is added from an
// empty grid slot.
type SlotDefaults struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
