package attendance

import (
	"errors"
	"sort"
)

// Mark is the tri-state draft value for one employee on the board.
type Mark int8

const (
	MarkUnset Mark = iota
	MarkPresent
	MarkAbsent
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusUnset   = "unset"
)

func (m Mark) String() string {
	switch m {
	case MarkPresent:
		return StatusPresent
	case MarkAbsent:
		return StatusAbsent
	default:
		return StatusUnset
	}
}

// ParseMark converts a wire status into a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case StatusPresent:
		return MarkPresent, nil
	case StatusAbsent:
		return MarkAbsent, nil
	case StatusUnset:
		return MarkUnset, nil
	default:
		return MarkUnset, errors.New("invalid attendance status: " + s)
	}
}

// ErrUnsavedChanges is returned when a date switch would discard edits the
// caller has not confirmed losing.
var ErrUnsavedChanges = errors.New("board has unsaved changes")

// Board holds the in-memory attendance draft for exactly one selected date.
// It is a plain value object owned by its caller; nothing here touches the
// store. Saving writes only the non-unset entries and never deletes a
// previously persisted record by omission.
type Board struct {
	date  string
	draft map[int64]Mark
	dirty bool
}

// NewBoard seeds a draft for date from the roster and the records already
// persisted for that date. Employees without a record start unset.
func NewBoard(date string, employeeIDs []int64, records []Attendance) *Board {
	b := &Board{
		date:  date,
		draft: make(map[int64]Mark, len(employeeIDs)),
	}
	for _, id := range employeeIDs {
		b.draft[id] = MarkUnset
	}
	b.applyRecords(records)
	return b
}

func (b *Board) applyRecords(records []Attendance) {
	for _, rec := range records {
		if _, tracked := b.draft[rec.EmployeeID]; !tracked {
			// Orphaned record for an employee no longer on the roster;
			// the board only edits current roster members.
			continue
		}
		if rec.Present {
			b.draft[rec.EmployeeID] = MarkPresent
		} else {
			b.draft[rec.EmployeeID] = MarkAbsent
		}
	}
}

func (b *Board) Date() string { return b.date }

func (b *Board) Dirty() bool { return b.dirty }

// Get returns the current draft value for an employee.
func (b *Board) Get(employeeID int64) Mark {
	return b.draft[employeeID]
}

// Toggle applies the tri-state rule: picking the value that is already
// active clears the slot back to unset; picking the other value switches.
func (b *Board) Toggle(employeeID int64, present bool) {
	if _, tracked := b.draft[employeeID]; !tracked {
		return
	}

	next := MarkPresent
	if !present {
		next = MarkAbsent
	}

	if b.draft[employeeID] == next {
		b.draft[employeeID] = MarkUnset
	} else {
		b.draft[employeeID] = next
	}
	b.dirty = true
}

// Clear forces a slot back to unset regardless of its current value.
func (b *Board) Clear(employeeID int64) {
	if _, tracked := b.draft[employeeID]; !tracked {
		return
	}
	b.draft[employeeID] = MarkUnset
	b.dirty = true
}

// SelectDate moves the board to a new date. With unsaved edits it refuses
// unless discard is set; the rebuild happens when the load for the new date
// lands in Apply.
func (b *Board) SelectDate(date string, discard bool) error {
	if b.dirty && !discard {
		return ErrUnsavedChanges
	}
	b.date = date
	return nil
}

// Apply rebuilds the draft from freshly fetched records. A response for a
// date the board has already navigated away from is stale and is discarded;
// Apply reports whether the load was used.
func (b *Board) Apply(date string, employeeIDs []int64, records []Attendance) bool {
	if date != b.date {
		return false
	}

	b.draft = make(map[int64]Mark, len(employeeIDs))
	for _, id := range employeeIDs {
		b.draft[id] = MarkUnset
	}
	b.applyRecords(records)
	b.dirty = false
	return true
}

// MarkSaved resets the dirty flag after a fully successful save.
func (b *Board) MarkSaved() {
	b.dirty = false
}

type Summary struct {
	Present  int
	Absent   int
	Unmarked int
}

// Summarize counts the working draft, unsaved edits included.
func (b *Board) Summarize() Summary {
	var s Summary
	for _, m := range b.draft {
		switch m {
		case MarkPresent:
			s.Present++
		case MarkAbsent:
			s.Absent++
		default:
			s.Unmarked++
		}
	}
	return s
}

type DraftEntry struct {
	EmployeeID int64
	Present    bool
}

// MarkedEntries returns the slots a save would write: every non-unset draft
// value, in employee id order. Unset slots are omitted entirely so a save
// can never retract a previously persisted answer.
func (b *Board) MarkedEntries() []DraftEntry {
	entries := make([]DraftEntry, 0, len(b.draft))
	for id, m := range b.draft {
		if m == MarkUnset {
			continue
		}
		entries = append(entries, DraftEntry{
			EmployeeID: id,
			Present:    m == MarkPresent,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EmployeeID < entries[j].EmployeeID
	})
	return entries
}
