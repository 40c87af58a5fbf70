package expense

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"staff-tracker/internal/employee"
	"staff-tracker/internal/events"
	"staff-tracker/internal/messaging/kafka"
	"staff-tracker/internal/shared/apperror"
	"staff-tracker/internal/shared/contextutil"
	"staff-tracker/internal/shared/datekey"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context) ([]ExpenseResponse, error)
	GetByDate(ctx context.Context, dateKey string) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	Categories() []string
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       zap.L().Named("expense.service"),
	}
}

// Create records a new expense. The id is always assigned here; client
// supplied ids are ignored. There is no update operation, a wrong expense is
// deleted and re-entered.
func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error) {
	date, err := datekey.ParseKey(req.Date)
	if err != nil {
		return ExpenseResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}
	if !IsValidCategory(req.Category) {
		return ExpenseResponse{}, apperror.New(apperror.CodeInvalidInput, "Category must be one of the known expense categories", 400)
	}

	if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExpenseResponse{}, apperror.New(apperror.CodeNotFound, "Employee not found", 404)
		}
		s.logger.Error("create expense employee lookup failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)

	row := &Expense{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create expense begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create expense insert failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	if s.outbox != nil {
		event := events.ExpenseCreatedEvent{
			EventType:  "expense_created",
			RequestID:  rid,
			ExpenseID:  row.ID,
			EmployeeID: row.EmployeeID,
			Date:       req.Date,
			Amount:     row.Amount,
			Category:   row.Category,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return ExpenseResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "expense",
			AggregateID:   row.ID,
			EventType:     event.EventType,
			Topic:         events.ExpenseCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create expense outbox persist failed", zap.Error(err))
			return ExpenseResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create expense commit failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("expense created",
		zap.String("request_id", rid),
		zap.String("expense_id", row.ID),
		zap.Int64("employee_id", row.EmployeeID),
		zap.Float64("amount", row.Amount),
		zap.String("category", row.Category),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]ExpenseResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ExpenseResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByDate(ctx context.Context, dateKey string) ([]ExpenseResponse, error) {
	date, err := datekey.ParseKey(dateKey)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}

	rows, err := s.repo.FindByDateRange(ctx, date, date)
	if err != nil {
		s.logger.Error("get expenses by date failed", zap.String("date", dateKey), zap.Error(err))
		return nil, err
	}

	resp := make([]ExpenseResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExpenseResponse{}, apperror.ErrNotFound
		}
		s.logger.Error("get expense failed", zap.String("expense_id", id), zap.Error(err))
		return ExpenseResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		s.logger.Error("delete expense failed", zap.String("expense_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("expense deleted", zap.String("expense_id", id))
	return nil
}

func (s *service) Categories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}

func mapToResponse(e Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Date:        datekey.ToKey(e.Date),
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
	} else {
		resp.EmployeeName = employee.UnknownName
	}
	return resp
}
