package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testNames = map[int64]string{1: "Budi", 2: "Anita", 3: "Citra"}

// Records across three months, two employees, mixed presence.
func sampleAttendance() []AttendanceRow {
	return []AttendanceRow{
		{EmployeeID: 1, Date: "2025-02-10", Present: true},
		{EmployeeID: 2, Date: "2025-03-05", Present: false},
		{EmployeeID: 1, Date: "2025-03-12", Present: true},
		{EmployeeID: 2, Date: "2025-03-20", Present: true},
		{EmployeeID: 1, Date: "2025-04-01", Present: false},
	}
}

func sampleExpenses() []ExpenseRow {
	return []ExpenseRow{
		{ID: "a", EmployeeID: 1, Date: "2025-03-05", Amount: 100, Category: "Materials", Description: "Paint"},
		{ID: "b", EmployeeID: 2, Date: "2025-03-15", Amount: 50, Category: "Meals", Description: "Team lunch"},
		{ID: "c", EmployeeID: 1, Date: "2025-04-02", Amount: 75, Category: "Tools", Description: "Drill bits"},
	}
}

func TestMonthAndRangeIntersect(t *testing.T) {
	// A range wholly inside March combined with month=2025-03 returns the
	// intersection, not the union.
	spec := FilterSpec{
		Month:      "2025-03",
		RangeStart: "2025-03-10",
		RangeEnd:   "2025-03-25",
		SortBy:     SortByDate,
		SortOrder:  OrderAsc,
	}

	got := FilterAttendance(sampleAttendance(), testNames, spec)

	assert.Len(t, got, 2)
	assert.Equal(t, "2025-03-12", got[0].Date)
	assert.Equal(t, "2025-03-20", got[1].Date)
}

func TestRangeCrossingMonthStillIntersects(t *testing.T) {
	// The range reaches into April but the month filter keeps only March.
	spec := FilterSpec{
		Month:      "2025-03",
		RangeStart: "2025-03-15",
		RangeEnd:   "2025-04-30",
	}

	got := FilterAttendance(sampleAttendance(), testNames, spec)

	assert.Len(t, got, 1)
	assert.Equal(t, "2025-03-20", got[0].Date)
}

func TestMonthAllKeepsEverything(t *testing.T) {
	got := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll})
	assert.Len(t, got, 5)
}

func TestEmployeeFilter(t *testing.T) {
	got := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, EmployeeID: 2})
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, int64(2), r.EmployeeID)
	}
}

func TestSearchMatchesNameCaseInsensitive(t *testing.T) {
	got := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, Search: "aNiT"})
	assert.Len(t, got, 2)
}

func TestSearchDropsUnresolvableEmployees(t *testing.T) {
	rows := append(sampleAttendance(), AttendanceRow{EmployeeID: 99, Date: "2025-03-01", Present: true})

	// Without search the orphaned record stays in the result.
	all := FilterAttendance(rows, testNames, FilterSpec{Month: FilterAll})
	assert.Len(t, all, 6)

	// With search it cannot match and falls out, without erroring.
	got := FilterAttendance(rows, testNames, FilterSpec{Month: FilterAll, Search: "budi"})
	assert.Len(t, got, 3)
}

func TestExpenseSearchDropsUnresolvableEmployees(t *testing.T) {
	rows := append(sampleExpenses(), ExpenseRow{
		ID:          "x",
		EmployeeID:  99,
		Date:        "2025-03-01",
		Amount:      40,
		Category:    "Materials",
		Description: "Paint supplies",
	})

	// Without search the orphaned record stays in the result.
	all := FilterExpenses(rows, testNames, FilterSpec{Month: FilterAll})
	assert.Len(t, all, len(sampleExpenses())+1)

	// With search it falls out even though description and category match;
	// the same query still finds the record with a resolvable employee.
	byDescription := FilterExpenses(rows, testNames, FilterSpec{Month: FilterAll, Search: "paint"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "a", byDescription[0].ID)

	byCategory := FilterExpenses(rows, testNames, FilterSpec{Month: FilterAll, Search: "materials"})
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "a", byCategory[0].ID)
}

func TestExpenseSearchMatchesDescriptionAndCategory(t *testing.T) {
	byDescription := FilterExpenses(sampleExpenses(), testNames, FilterSpec{Month: FilterAll, Search: "lunch"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "b", byDescription[0].ID)

	byCategory := FilterExpenses(sampleExpenses(), testNames, FilterSpec{Month: FilterAll, Search: "tools"})
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "c", byCategory[0].ID)
}

func TestSortByDate(t *testing.T) {
	asc := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, SortBy: SortByDate, SortOrder: OrderAsc})
	assert.Equal(t, "2025-02-10", asc[0].Date)
	assert.Equal(t, "2025-04-01", asc[len(asc)-1].Date)

	desc := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, SortBy: SortByDate, SortOrder: OrderDesc})
	assert.Equal(t, "2025-04-01", desc[0].Date)
}

func TestSortByName(t *testing.T) {
	got := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, SortBy: SortByName, SortOrder: OrderAsc})
	assert.Equal(t, int64(2), got[0].EmployeeID) // Anita
	assert.Equal(t, int64(2), got[1].EmployeeID)
	assert.Equal(t, int64(1), got[2].EmployeeID) // Budi
}

func TestSortByNameUnresolvableCompareEqual(t *testing.T) {
	rows := []AttendanceRow{
		{EmployeeID: 99, Date: "2025-03-01", Present: true},
		{EmployeeID: 1, Date: "2025-03-02", Present: true},
		{EmployeeID: 98, Date: "2025-03-03", Present: false},
	}

	// Orphaned ids compare equal to everything, so the stable sort keeps
	// the original relative order instead of panicking or misplacing them.
	got := FilterAttendance(rows, testNames, FilterSpec{Month: FilterAll, SortBy: SortByName, SortOrder: OrderAsc})
	assert.Equal(t, []int64{99, 1, 98}, []int64{got[0].EmployeeID, got[1].EmployeeID, got[2].EmployeeID})
}

func TestSortByStatus(t *testing.T) {
	desc := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, SortBy: SortByStatus, SortOrder: OrderDesc})
	// Descending: present sorts after absent.
	assert.False(t, desc[0].Present)
	assert.True(t, desc[len(desc)-1].Present)

	asc := FilterAttendance(sampleAttendance(), testNames, FilterSpec{Month: FilterAll, SortBy: SortByStatus, SortOrder: OrderAsc})
	assert.True(t, asc[0].Present)
}

func TestAttendanceStats(t *testing.T) {
	stats := ComputeAttendanceStats(sampleAttendance())
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 2, stats.Absent)
	assert.InDelta(t, 60.0, stats.Rate, 0.001)
}

func TestAttendanceStatsEmptyNoDivideByZero(t *testing.T) {
	stats := ComputeAttendanceStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.Rate)
}

func TestExpenseStats(t *testing.T) {
	stats := ComputeExpenseStats(sampleExpenses())
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 225.0, stats.TotalAmount, 0.001)
}

func TestGroupByDate(t *testing.T) {
	rows := []AttendanceRow{
		{EmployeeID: 1, Date: "2025-03-12", Present: true}, // Budi
		{EmployeeID: 3, Date: "2025-03-05", Present: true}, // Citra
		{EmployeeID: 2, Date: "2025-03-12", Present: false}, // Anita
	}

	groups := GroupByDate(rows, testNames)

	// Group order follows the incoming (globally sorted) row order.
	assert.Len(t, groups, 2)
	assert.Equal(t, "2025-03-12", groups[0].Date)
	assert.Equal(t, "2025-03-05", groups[1].Date)

	// Inside a group rows are name ascending regardless of global sort.
	assert.Equal(t, int64(2), groups[0].Rows[0].EmployeeID) // Anita
	assert.Equal(t, int64(1), groups[0].Rows[1].EmployeeID) // Budi
}

func TestValidateSpec(t *testing.T) {
	assert.NoError(t, ValidateSpec(FilterSpec{Month: FilterAll}))
	assert.NoError(t, ValidateSpec(FilterSpec{Month: "2025-03", RangeStart: "2025-03-01", RangeEnd: "2025-03-31", SortBy: SortByName, SortOrder: OrderAsc}))

	assert.Error(t, ValidateSpec(FilterSpec{Month: "March"}))
	assert.Error(t, ValidateSpec(FilterSpec{RangeStart: "2025-03-01"}))
	assert.Error(t, ValidateSpec(FilterSpec{RangeStart: "2025-03-31", RangeEnd: "2025-03-01"}))
	assert.Error(t, ValidateSpec(FilterSpec{SortBy: "amount"}))
	assert.Error(t, ValidateSpec(FilterSpec{SortOrder: "down"}))
}
