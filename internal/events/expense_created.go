package events

import "time"

const ExpenseCreatedTopic = "staff-tracker.expense.created"

type ExpenseCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ExpenseID  string    `json:"expense_id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}
