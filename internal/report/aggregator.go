package report

import (
	"sort"
	"strings"

	"staff-tracker/internal/shared/datekey"
)

const (
	FilterAll = "all"

	SortByDate   = "date"
	SortByName   = "name"
	SortByStatus = "status"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterSpec is the combined month, range, employee, search and sort input
// applied to both report types.
type FilterSpec struct {
	Month      string // "all" or YYYY-MM
	EmployeeID int64  // 0 means all
	RangeStart string // DateKey; range applies only when both ends are set
	RangeEnd   string
	Search     string
	SortBy     string // date | name | status
	SortOrder  string // asc | desc
}

// AttendanceRow is one attendance record projected for reporting.
type AttendanceRow struct {
	EmployeeID int64
	Date       string
	Present    bool
}

// ExpenseRow is one expense record projected for reporting.
type ExpenseRow struct {
	ID          string
	EmployeeID  int64
	Date        string
	Amount      float64
	Category    string
	Description string
}

// FilterAttendance runs the full pipeline over attendance rows: month, then
// range, then employee, then search, then sort. Month and range are both
// applied when both are present; the result is their intersection.
func FilterAttendance(rows []AttendanceRow, names map[int64]string, spec FilterSpec) []AttendanceRow {
	out := make([]AttendanceRow, 0, len(rows))
	for _, r := range rows {
		if !matchesCommon(r.Date, r.EmployeeID, spec) {
			continue
		}
		if spec.Search != "" && !searchMatches(spec.Search, names[r.EmployeeID]) {
			continue
		}
		out = append(out, r)
	}

	sortRows(out, names, spec,
		func(r AttendanceRow) string { return r.Date },
		func(r AttendanceRow) int64 { return r.EmployeeID },
		func(r AttendanceRow) int {
			if r.Present {
				return 0
			}
			return 1
		},
	)
	return out
}

// FilterExpenses runs the same pipeline over expenses. Search additionally
// matches description and category; a status sort has nothing to compare on
// an expense and leaves the rows in date order.
func FilterExpenses(rows []ExpenseRow, names map[int64]string, spec FilterSpec) []ExpenseRow {
	out := make([]ExpenseRow, 0, len(rows))
	for _, r := range rows {
		if !matchesCommon(r.Date, r.EmployeeID, spec) {
			continue
		}
		if spec.Search != "" {
			// A record whose employee cannot be resolved is non-matching,
			// even if the query would hit its description or category.
			name, ok := names[r.EmployeeID]
			if !ok || !searchMatches(spec.Search, name, r.Description, r.Category) {
				continue
			}
		}
		out = append(out, r)
	}

	sortRows(out, names, spec,
		func(r ExpenseRow) string { return r.Date },
		func(r ExpenseRow) int64 { return r.EmployeeID },
		func(r ExpenseRow) int { return 0 },
	)
	return out
}

func matchesCommon(date string, employeeID int64, spec FilterSpec) bool {
	if spec.Month != "" && spec.Month != FilterAll && datekey.MonthOfKey(date) != spec.Month {
		return false
	}
	if spec.RangeStart != "" && spec.RangeEnd != "" {
		// DateKeys are zero padded, so lexicographic order is date order.
		if date < spec.RangeStart || date > spec.RangeEnd {
			return false
		}
	}
	if spec.EmployeeID != 0 && employeeID != spec.EmployeeID {
		return false
	}
	return true
}

// searchMatches reports whether any haystack contains the query, case
// insensitively. An empty employee name (unresolvable id) contributes
// nothing, so such records fall out of search results instead of erroring.
func searchMatches(query string, haystacks ...string) bool {
	q := strings.ToLower(query)
	for _, h := range haystacks {
		if h == "" {
			continue
		}
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

func sortRows[T any](
	rows []T,
	names map[int64]string,
	spec FilterSpec,
	dateOf func(T) string,
	employeeOf func(T) int64,
	statusRank func(T) int,
) {
	desc := spec.SortOrder == OrderDesc

	var less func(a, b T) int
	switch spec.SortBy {
	case SortByName:
		less = func(a, b T) int {
			an, aok := names[employeeOf(a)]
			bn, bok := names[employeeOf(b)]
			// Unresolvable names compare equal, keeping the sort stable.
			if !aok || !bok {
				return 0
			}
			return strings.Compare(an, bn)
		}
	case SortByStatus:
		less = func(a, b T) int { return statusRank(a) - statusRank(b) }
	default:
		less = func(a, b T) int { return strings.Compare(dateOf(a), dateOf(b)) }
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := less(rows[i], rows[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// AttendanceStats are derived from an already-filtered row set.
type AttendanceStats struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"attendanceRate"`
}

func ComputeAttendanceStats(rows []AttendanceRow) AttendanceStats {
	s := AttendanceStats{Total: len(rows)}
	for _, r := range rows {
		if r.Present {
			s.Present++
		} else {
			s.Absent++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Present) / float64(s.Total) * 100
	}
	return s
}

// ExpenseStats are derived from an already-filtered row set.
type ExpenseStats struct {
	Total       int     `json:"total"`
	TotalAmount float64 `json:"totalAmount"`
}

func ComputeExpenseStats(rows []ExpenseRow) ExpenseStats {
	s := ExpenseStats{Total: len(rows)}
	for _, r := range rows {
		s.TotalAmount += r.Amount
	}
	return s
}

// DateGroup is one calendar day of attendance rows for grouped display.
type DateGroup struct {
	Date string
	Rows []AttendanceRow
}

// GroupByDate splits globally sorted rows into per-date groups. Groups keep
// the global order of their first row; rows inside a group are always name
// ascending, whatever the global sort was.
func GroupByDate(rows []AttendanceRow, names map[int64]string) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, r := range rows {
		i, ok := index[r.Date]
		if !ok {
			i = len(groups)
			index[r.Date] = i
			groups = append(groups, DateGroup{Date: r.Date})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}

	for i := range groups {
		rows := groups[i].Rows
		sort.SliceStable(rows, func(a, b int) bool {
			an, aok := names[rows[a].EmployeeID]
			bn, bok := names[rows[b].EmployeeID]
			if !aok || !bok {
				return false
			}
			return an < bn
		})
	}
	return groups
}
