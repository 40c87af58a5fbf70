package consumer

import (
	"context"
	"encoding/json"

	"staff-tracker/internal/bootstrap"
	"staff-tracker/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeActivityEvents reads attendance and expense events and turns them
// into audit log entries. The feed endpoints read straight from the
// database; this consumer only gives operators a durable trail.
func ConsumeActivityEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.activity")
	log.Info("activity consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("activity consumer stopped")
				return
			}
			log.Error("fetch activity message failed", zap.Error(err))
			continue
		}

		eventType := headerValue(msg, "event_type")

		switch msg.Topic {
		case events.AttendanceMarkedTopic:
			var event events.AttendanceMarkedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode attendance_marked event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			audit.Log(ctx, bootstrap.AuditLog{
				Action:  "ATTENDANCE_MARKED",
				Message: "Attendance record saved",
				Meta: map[string]any{
					"employee_id": event.EmployeeID,
					"date":        event.Date,
					"present":     event.Present,
				},
			})
		case events.ExpenseCreatedTopic:
			var event events.ExpenseCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode expense_created event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			audit.Log(ctx, bootstrap.AuditLog{
				Action:  "EXPENSE_CREATED",
				Message: "Expense logged",
				Meta: map[string]any{
					"expense_id":  event.ExpenseID,
					"employee_id": event.EmployeeID,
					"amount":      event.Amount,
					"category":    event.Category,
				},
			})
		default:
			log.Warn("unknown activity topic",
				zap.String("topic", msg.Topic),
				zap.String("event_type", eventType),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit activity message failed", zap.Error(err))
		}
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
