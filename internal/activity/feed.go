package activity

import (
	"fmt"
	"sort"
	"time"

	"staff-tracker/internal/shared/datekey"
)

const (
	KindAttendance = "attendance"
	KindExpense    = "expense"
	KindLending    = "lending"
)

// Default feed lengths. The dashboard shows a short tail, the activity page
// a longer one.
const (
	DashboardLimit = 5
	FullLimit      = 10
)

// Event is one line of the activity feed, already rendered for display.
type Event struct {
	Kind       string    `json:"kind"`
	EmployeeID int64     `json:"employeeId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// AttendanceItem is the feed-relevant slice of an attendance record.
type AttendanceItem struct {
	EmployeeID int64
	Date       string
	Present    bool
	Timestamp  time.Time
}

// ExpenseItem is the feed-relevant slice of an expense record.
type ExpenseItem struct {
	EmployeeID int64
	Date       string
	Amount     float64
	Category   string
	Timestamp  time.Time
}

// LendingItem is the feed-relevant slice of a lending record.
type LendingItem struct {
	EmployeeID int64
	Item       string
	ReturnDate string
	Timestamp  time.Time
}

// Merge renders the three record streams into one feed, newest first, cut to
// limit. The sort is stable so records sharing a timestamp keep their source
// order (attendance, then expenses, then lending).
func Merge(
	attendance []AttendanceItem,
	expenses []ExpenseItem,
	lending []LendingItem,
	names map[int64]string,
	limit int,
) []Event {
	events := make([]Event, 0, len(attendance)+len(expenses)+len(lending))

	for _, a := range attendance {
		events = append(events, Event{
			Kind:       KindAttendance,
			EmployeeID: a.EmployeeID,
			Message:    attendanceMessage(resolveName(names, a.EmployeeID), a),
			Timestamp:  a.Timestamp,
		})
	}
	for _, e := range expenses {
		events = append(events, Event{
			Kind:       KindExpense,
			EmployeeID: e.EmployeeID,
			Message:    expenseMessage(resolveName(names, e.EmployeeID), e),
			Timestamp:  e.Timestamp,
		})
	}
	for _, l := range lending {
		events = append(events, Event{
			Kind:       KindLending,
			EmployeeID: l.EmployeeID,
			Message:    lendingMessage(resolveName(names, l.EmployeeID), l),
			Timestamp:  l.Timestamp,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

func resolveName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

func attendanceMessage(name string, a AttendanceItem) string {
	status := "absent"
	if a.Present {
		status = "present"
	}
	return fmt.Sprintf("%s was marked %s on %s", name, status, displayDate(a.Date))
}

func expenseMessage(name string, e ExpenseItem) string {
	return fmt.Sprintf("%s submitted a %s expense of $%.2f on %s",
		name, e.Category, e.Amount, displayDate(e.Date))
}

func lendingMessage(name string, l LendingItem) string {
	return fmt.Sprintf("%s borrowed %s (due: %s)", name, l.Item, displayDate(l.ReturnDate))
}

func displayDate(key string) string {
	t, err := datekey.ParseKey(key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2, 2006")
}
