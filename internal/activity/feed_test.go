package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(day, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.Local)
}

var names = map[int64]string{1: "Budi", 2: "Anita"}

func TestMergeNewestFirst(t *testing.T) {
	events := Merge(
		[]AttendanceItem{{EmployeeID: 1, Date: "2026-08-03", Present: true, Timestamp: ts(3, 9)}},
		[]ExpenseItem{{EmployeeID: 2, Date: "2026-08-05", Amount: 42, Category: "Tools", Timestamp: ts(5, 10)}},
		[]LendingItem{{EmployeeID: 1, Item: "Ladder", ReturnDate: "2026-08-11", Timestamp: ts(4, 12)}},
		names, FullLimit,
	)

	assert.Len(t, events, 3)
	assert.Equal(t, KindExpense, events[0].Kind)
	assert.Equal(t, KindLending, events[1].Kind)
	assert.Equal(t, KindAttendance, events[2].Kind)
}

func TestMergeStableOnEqualTimestamps(t *testing.T) {
	same := ts(3, 9)
	events := Merge(
		[]AttendanceItem{{EmployeeID: 1, Date: "2026-08-03", Present: true, Timestamp: same}},
		[]ExpenseItem{{EmployeeID: 2, Date: "2026-08-03", Amount: 10, Category: "Meals", Timestamp: same}},
		[]LendingItem{{EmployeeID: 1, Item: "Drill", ReturnDate: "2026-08-04", Timestamp: same}},
		names, FullLimit,
	)

	// Ties keep source order: attendance, expense, lending.
	assert.Equal(t, []string{KindAttendance, KindExpense, KindLending},
		[]string{events[0].Kind, events[1].Kind, events[2].Kind})
}

func TestMergeTruncates(t *testing.T) {
	var items []AttendanceItem
	for day := 1; day <= 12; day++ {
		items = append(items, AttendanceItem{
			EmployeeID: 1,
			Date:       "2026-08-03",
			Present:    true,
			Timestamp:  ts(day, 9),
		})
	}

	dashboard := Merge(items, nil, nil, names, DashboardLimit)
	assert.Len(t, dashboard, DashboardLimit)
	assert.Equal(t, ts(12, 9), dashboard[0].Timestamp)

	full := Merge(items, nil, nil, names, FullLimit)
	assert.Len(t, full, FullLimit)
}

func TestMessages(t *testing.T) {
	events := Merge(
		[]AttendanceItem{
			{EmployeeID: 1, Date: "2026-08-03", Present: true, Timestamp: ts(3, 9)},
			{EmployeeID: 2, Date: "2026-08-03", Present: false, Timestamp: ts(3, 8)},
		},
		[]ExpenseItem{{EmployeeID: 1, Date: "2026-08-02", Amount: 125.5, Category: "Materials", Timestamp: ts(2, 9)}},
		[]LendingItem{{EmployeeID: 2, Item: "Ladder", ReturnDate: "2026-08-17", Timestamp: ts(1, 9)}},
		names, FullLimit,
	)

	assert.Equal(t, "Budi was marked present on Aug 3, 2026", events[0].Message)
	assert.Equal(t, "Anita was marked absent on Aug 3, 2026", events[1].Message)
	assert.Equal(t, "Budi submitted a Materials expense of $125.50 on Aug 2, 2026", events[2].Message)
	assert.Equal(t, "Anita borrowed Ladder (due: Aug 17, 2026)", events[3].Message)
}

func TestMergeUnknownEmployeeFallback(t *testing.T) {
	events := Merge(
		[]AttendanceItem{{EmployeeID: 99, Date: "2026-08-03", Present: true, Timestamp: ts(3, 9)}},
		nil, nil, names, FullLimit,
	)

	assert.Equal(t, "Unknown was marked present on Aug 3, 2026", events[0].Message)
}

func TestMergeEmptySources(t *testing.T) {
	events := Merge(nil, nil, nil, names, DashboardLimit)
	assert.Empty(t, events)
}
