// Package calendar builds the month grid shown next to the attendance
// board: a fixed 6x7 window around an anchor month, annotated with which
// days already have attendance recorded.
package calendar

import (
	"time"

	"staff-tracker/internal/shared/datekey"
)

// GridSize is always 42 cells (6 weeks of 7 days) so the grid never changes
// shape between months.
const GridSize = 42

type Day struct {
	Date           time.Time
	Key            string
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	HasAttendance  bool
}

// Build returns the 42-cell grid for monthAnchor's month. The first cell is
// the most recent Sunday on or before the 1st; trailing cells run into the
// next month until the window is full. IsToday compares against the real
// current date, not the anchor.
func Build(monthAnchor time.Time, known map[string]struct{}, selected string) []Day {
	return buildAt(monthAnchor, known, selected, time.Now())
}

func buildAt(monthAnchor time.Time, known map[string]struct{}, selected string, now time.Time) []Day {
	year, month := monthAnchor.Year(), monthAnchor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, monthAnchor.Location())

	// Back up to Sunday. time.Weekday is already 0 for Sunday.
	start := first.AddDate(0, 0, -int(first.Weekday()))

	todayKey := datekey.ToKey(now)

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		key := datekey.ToKey(d)
		_, hasAttendance := known[key]

		days = append(days, Day{
			Date:           d,
			Key:            key,
			IsCurrentMonth: d.Month() == month && d.Year() == year,
			IsToday:        key == todayKey,
			IsSelected:     selected != "" && key == selected,
			HasAttendance:  hasAttendance,
		})
	}
	return days
}

// PrevMonth shifts the anchor back one calendar month, with the standard
// library's default day-of-month overflow behavior.
func PrevMonth(anchor time.Time) time.Time {
	return anchor.AddDate(0, -1, 0)
}

// NextMonth shifts the anchor forward one calendar month.
func NextMonth(anchor time.Time) time.Time {
	return anchor.AddDate(0, 1, 0)
}
