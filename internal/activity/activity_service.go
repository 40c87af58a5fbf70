package activity

import (
	"context"

	"staff-tracker/internal/attendance"
	"staff-tracker/internal/expense"
	"staff-tracker/internal/lending"
	"staff-tracker/internal/shared/datekey"

	"go.uber.org/zap"
)

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	Feed(ctx context.Context, limit int) ([]Event, error)
}

// NameResolver supplies the id -> name map feed messages resolve employees
// through. employee.Service satisfies it.
type NameResolver interface {
	NameIndex(ctx context.Context) (map[int64]string, error)
}

type service struct {
	attendanceRepo attendance.Repository
	expenseRepo    expense.Repository
	lendingSource  lending.Source
	names          NameResolver
	logger         *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	expenseRepo expense.Repository,
	lendingSource lending.Source,
	names NameResolver,
) Service {
	return &service{
		attendanceRepo: attendanceRepo,
		expenseRepo:    expenseRepo,
		lendingSource:  lendingSource,
		names:          names,
		logger:         zap.L().Named("activity.service"),
	}
}

func (s *service) Feed(ctx context.Context, limit int) ([]Event, error) {
	attendanceRows, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("feed attendance fetch failed", zap.Error(err))
		return nil, err
	}

	expenseRows, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("feed expense fetch failed", zap.Error(err))
		return nil, err
	}

	lendingRows, err := s.lendingSource.Records(ctx)
	if err != nil {
		s.logger.Error("feed lending fetch failed", zap.Error(err))
		return nil, err
	}

	names, err := s.names.NameIndex(ctx)
	if err != nil {
		s.logger.Error("feed roster fetch failed", zap.Error(err))
		return nil, err
	}

	attendanceItems := make([]AttendanceItem, len(attendanceRows))
	for i, a := range attendanceRows {
		attendanceItems[i] = AttendanceItem{
			EmployeeID: a.EmployeeID,
			Date:       datekey.ToKey(a.Date),
			Present:    a.Present,
			Timestamp:  a.UpdatedAt,
		}
	}

	expenseItems := make([]ExpenseItem, len(expenseRows))
	for i, e := range expenseRows {
		expenseItems[i] = ExpenseItem{
			EmployeeID: e.EmployeeID,
			Date:       datekey.ToKey(e.Date),
			Amount:     e.Amount,
			Category:   e.Category,
			Timestamp:  e.CreatedAt,
		}
	}

	lendingItems := make([]LendingItem, len(lendingRows))
	for i, l := range lendingRows {
		lendingItems[i] = LendingItem{
			EmployeeID: l.EmployeeID,
			Item:       l.Item,
			ReturnDate: l.ReturnDate,
			Timestamp:  l.Timestamp,
		}
	}

	return Merge(attendanceItems, expenseItems, lendingItems, names, limit), nil
}
