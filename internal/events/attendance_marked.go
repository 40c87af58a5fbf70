package events

import "time"

const AttendanceMarkedTopic = "staff-tracker.attendance.marked"

type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Present    bool      `json:"present"`
	OccurredAt time.Time `json:"occurred_at"`
}
