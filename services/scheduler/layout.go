// File: services/scheduler/layout.go
package scheduler

import (
	"sort"

	"classgrid/config"
	"classgrid/models"
)

// LayoutDay computes grid geometry for one day's schedules: overlapping
// slots are partitioned into connected overlap groups, packed into
// side-by-side columns, and every entry gets Top/Height pixels plus
// Left/Width percentages. Reflow is contained within a group, so
// unrelated slots later in the day keep their geometry.
func LayoutDay(schedules []models.ClassSchedule, cfg config.SchedulerConfig) []models.PositionedSchedule {
	if len(schedules) == 0 {
		return nil
	}

	sorted := make([]models.ClassSchedule, len(schedules))
	copy(sorted, schedules)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := TimeToMinutes(sorted[i].StartTime), TimeToMinutes(sorted[j].StartTime)
		if si != sj {
			return si < sj
		}
		return TimeToMinutes(sorted[i].EndTime) < TimeToMinutes(sorted[j].EndTime)
	})

	positioned := make([]models.PositionedSchedule, 0, len(sorted))

	var group []models.ClassSchedule
	groupEnd := -1
	for _, s := range sorted {
		start := TimeToMinutes(s.StartTime)
		// A gap at or past the group's end-time watermark closes the
		// current overlap group.
		if len(group) > 0 && start >= groupEnd {
			positioned = append(positioned, packColumns(group, cfg)...)
			group = nil
		}
		group = append(group, s)
		if end := TimeToMinutes(s.EndTime); end > groupEnd {
			groupEnd = end
		}
	}
	if len(group) > 0 {
		positioned = append(positioned, packColumns(group, cfg)...)
	}
	return positioned
}

// packColumns assigns first-fit columns within a single overlap group:
// each schedule, in start-time order, lands in the first column whose
// last occupant has already ended, or opens a new column. No two
// schedules in the same column overlap.
func packColumns(group []models.ClassSchedule, cfg config.SchedulerConfig) []models.PositionedSchedule {
	entries := make([]models.PositionedSchedule, len(group))
	var colEnds []int // end-time watermark of the last schedule per column

	for i, s := range group {
		start := TimeToMinutes(s.StartTime)
		end := TimeToMinutes(s.EndTime)

		col := -1
		for c := range colEnds {
			if colEnds[c] <= start {
				col = c
				break
			}
		}
		if col == -1 {
			colEnds = append(colEnds, end)
			col = len(colEnds) - 1
		} else {
			colEnds[col] = end
		}

		entries[i] = models.PositionedSchedule{
			ClassSchedule: s,
			Top:           TopOffset(s.StartTime, cfg),
			Height:        CardHeight(s.StartTime, s.EndTime, cfg),
			ColumnIndex:   col,
		}
	}

	count := len(colEnds)
	for i := range entries {
		entries[i].ColumnCount = count
		entries[i].Left = float64(entries[i].ColumnIndex) / float64(count) * 100
		entries[i].Width = 100 / float64(count)
	}
	return entries
}
