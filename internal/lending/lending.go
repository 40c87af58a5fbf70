// Package lending exposes equipment lending records to the activity feed.
// There is no management surface for these yet; records come from a Source
// so the static seed can be swapped for a persisted table without touching
// the consumers.
package lending

import (
	"context"
	"time"
)

type Record struct {
	EmployeeID int64
	Item       string
	Date       string // YYYY-MM-DD, day the item went out
	ReturnDate string // YYYY-MM-DD, agreed return day
	Timestamp  time.Time
}

//go:generate mockgen -source=lending.go -destination=mock/lending_source_mock.go -package=mock
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

type staticSource struct {
	records []Record
}

// NewStaticSource serves a fixed set of records.
func NewStaticSource(records []Record) Source {
	return &staticSource{records: records}
}

func (s *staticSource) Records(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// SeedRecords is the built-in lending data used until lending gets its own
// storage.
func SeedRecords() []Record {
	return []Record{
		{
			EmployeeID: 1,
			Item:       "Ladder",
			Date:       "2026-08-10",
			ReturnDate: "2026-08-17",
			Timestamp:  time.Date(2026, 8, 10, 9, 30, 0, 0, time.Local),
		},
		{
			EmployeeID: 2,
			Item:       "Power Drill",
			Date:       "2026-08-12",
			ReturnDate: "2026-08-14",
			Timestamp:  time.Date(2026, 8, 12, 14, 0, 0, 0, time.Local),
		},
		{
			EmployeeID: 3,
			Item:       "Paint Sprayer",
			Date:       "2026-08-15",
			ReturnDate: "2026-08-22",
			Timestamp:  time.Date(2026, 8, 15, 11, 15, 0, 0, time.Local),
		},
	}
}
