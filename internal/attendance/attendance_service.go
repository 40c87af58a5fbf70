package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"staff-tracker/internal/calendar"
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

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByDate(ctx context.Context, dateKey string) ([]AttendanceResponse, error)
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetBoard(ctx context.Context, dateKey string) (BoardResponse, error)
	SaveBoard(ctx context.Context, req SaveBoardRequest) (SaveBoardResponse, error)
	Calendar(ctx context.Context, monthKey, selectedKey string) (CalendarResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger

	// One save at a time per date. The upserts inside a save are each
	// independently retryable, but interleaving two saves for the same day
	// would make partial-failure reporting meaningless.
	saveLocks sync.Map
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
		logger:       zap.L().Named("attendance.service"),
	}
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByDate(ctx context.Context, dateKey string) ([]AttendanceResponse, error) {
	date, err := datekey.ParseKey(dateKey)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}

	rows, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		s.logger.Error("get attendance by date failed", zap.String("date", dateKey), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// Mark is the idempotent upsert for one (employee, date) slot. Marking an
// already-marked slot overwrites the present flag; it never creates a
// second row.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	date, err := datekey.ParseKey(req.Date)
	if err != nil {
		return AttendanceResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}
	if req.Present == nil {
		return AttendanceResponse{}, apperror.RequiredField("Present")
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	switch {
	case err == nil:
		row.Present = *req.Present
		if err := qtx.Update(ctx, row); err != nil {
			s.logger.Error("mark attendance update failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = &Attendance{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Present:    *req.Present,
		}
		if err := qtx.Create(ctx, row); err != nil {
			s.logger.Error("mark attendance create failed", zap.Error(err))
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	default:
		s.logger.Error("mark attendance lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if s.outbox != nil {
		event := events.AttendanceMarkedEvent{
			EventType:  "attendance_marked",
			RequestID:  rid,
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			Present:    *req.Present,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   req.Date,
			EventType:     event.EventType,
			Topic:         events.AttendanceMarkedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("mark attendance outbox persist failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance marked",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.Bool("present", *req.Present),
	)

	return mapToResponse(*row), nil
}

// GetBoard returns the editing draft for one date: every roster member with
// their persisted answer, or unset when no record exists yet.
func (s *service) GetBoard(ctx context.Context, dateKey string) (BoardResponse, error) {
	date, err := datekey.ParseKey(dateKey)
	if err != nil {
		return BoardResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}

	roster, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get board roster fetch failed", zap.Error(err))
		return BoardResponse{}, err
	}

	records, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		s.logger.Error("get board records fetch failed", zap.String("date", dateKey), zap.Error(err))
		return BoardResponse{}, err
	}

	ids := make([]int64, len(roster))
	for i, e := range roster {
		ids[i] = e.ID
	}
	board := NewBoard(dateKey, ids, records)

	entries := make([]BoardEntry, len(roster))
	for i, e := range roster {
		entries[i] = BoardEntry{
			EmployeeID: e.ID,
			Name:       e.Name,
			Status:     board.Get(e.ID).String(),
		}
	}

	summary := board.Summarize()
	return BoardResponse{
		Date:    dateKey,
		Entries: entries,
		Summary: SummaryDTO{
			Present:  summary.Present,
			Absent:   summary.Absent,
			Unmarked: summary.Unmarked,
		},
	}, nil
}

// SaveBoard persists a submitted draft. Only present/absent entries are
// written; unset entries are skipped, so a slot that was saved earlier and
// later cleared on the client keeps its old persisted value. Each upsert is
// retryable on its own and failures are reported per employee; records that
// did save are never rolled back.
func (s *service) SaveBoard(ctx context.Context, req SaveBoardRequest) (SaveBoardResponse, error) {
	if !datekey.IsValid(req.Date) {
		return SaveBoardResponse{}, apperror.New(apperror.CodeInvalidInput, "Invalid date, expected YYYY-MM-DD", 400)
	}

	lock := s.dateLock(req.Date)
	lock.Lock()
	defer lock.Unlock()

	resp := SaveBoardResponse{Date: req.Date}

	for _, entry := range req.Entries {
		mark, err := ParseMark(entry.Status)
		if err != nil {
			resp.Failed = append(resp.Failed, FailedSave{EmployeeID: entry.EmployeeID, Reason: err.Error()})
			continue
		}
		if mark == MarkUnset {
			continue
		}

		present := mark == MarkPresent
		if _, err := s.Mark(ctx, MarkAttendanceRequest{
			EmployeeID: entry.EmployeeID,
			Date:       req.Date,
			Present:    &present,
		}); err != nil {
			s.logger.Warn("save board entry failed",
				zap.Int64("employee_id", entry.EmployeeID),
				zap.String("date", req.Date),
				zap.Error(err),
			)
			resp.Failed = append(resp.Failed, FailedSave{EmployeeID: entry.EmployeeID, Reason: err.Error()})
			continue
		}
		resp.Saved++
	}

	if len(resp.Failed) > 0 {
		return resp, apperror.New(apperror.CodeSaveFailed, "Some attendance records could not be saved", 500)
	}
	return resp, nil
}

func (s *service) Calendar(ctx context.Context, monthKey, selectedKey string) (CalendarResponse, error) {
	anchor, err := datekey.ParseMonthKey(monthKey)
	if err != nil {
		return CalendarResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid month, expected YYYY-MM", 400)
	}
	if selectedKey != "" && !datekey.IsValid(selectedKey) {
		return CalendarResponse{}, apperror.New(apperror.CodeInvalidInput, "Invalid selected date, expected YYYY-MM-DD", 400)
	}

	dates, err := s.repo.DistinctDates(ctx)
	if err != nil {
		s.logger.Error("calendar distinct dates failed", zap.Error(err))
		return CalendarResponse{}, err
	}

	known := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		known[datekey.ToKey(d)] = struct{}{}
	}

	days := calendar.Build(anchor, known, selectedKey)
	resp := CalendarResponse{Month: monthKey, Days: make([]CalendarDay, len(days))}
	for i, d := range days {
		resp.Days[i] = CalendarDay{
			Date:           d.Key,
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelected:     d.IsSelected,
			HasAttendance:  d.HasAttendance,
		}
	}
	return resp, nil
}

func (s *service) dateLock(key string) *sync.Mutex {
	v, _ := s.saveLocks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       datekey.ToKey(a.Date),
		Present:    a.Present,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	} else {
		resp.EmployeeName = employee.UnknownName
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
