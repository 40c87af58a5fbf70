package report

import (
	"context"
	"io"

	"staff-tracker/internal/attendance"
	"staff-tracker/internal/expense"
	"staff-tracker/internal/shared/apperror"
	"staff-tracker/internal/shared/datekey"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Attendance(ctx context.Context, spec FilterSpec) (AttendanceReportResponse, error)
	Expenses(ctx context.Context, spec FilterSpec) (ExpenseReportResponse, error)
	ExportAttendance(ctx context.Context, spec FilterSpec, w io.Writer) error
	ExportExpenses(ctx context.Context, spec FilterSpec, w io.Writer) error
}

// NameResolver supplies the id -> name map reports resolve employees
// through. employee.Service satisfies it.
type NameResolver interface {
	NameIndex(ctx context.Context) (map[int64]string, error)
}

type service struct {
	attendanceRepo attendance.Repository
	expenseRepo    expense.Repository
	names          NameResolver
	logger         *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	expenseRepo expense.Repository,
	names NameResolver,
) Service {
	return &service{
		attendanceRepo: attendanceRepo,
		expenseRepo:    expenseRepo,
		names:          names,
		logger:         zap.L().Named("report.service"),
	}
}

// ValidateSpec rejects malformed filter inputs before any data is fetched.
func ValidateSpec(spec FilterSpec) error {
	if spec.Month != "" && spec.Month != FilterAll {
		if _, err := datekey.ParseMonthKey(spec.Month); err != nil {
			return apperror.New(apperror.CodeInvalidInput, "Invalid month, expected YYYY-MM or all", 400)
		}
	}
	if (spec.RangeStart == "") != (spec.RangeEnd == "") {
		return apperror.New(apperror.CodeInvalidInput, "Date range requires both from and to", 400)
	}
	if spec.RangeStart != "" {
		if !datekey.IsValid(spec.RangeStart) || !datekey.IsValid(spec.RangeEnd) {
			return apperror.New(apperror.CodeInvalidInput, "Invalid date range, expected YYYY-MM-DD", 400)
		}
		if spec.RangeStart > spec.RangeEnd {
			return apperror.New(apperror.CodeInvalidInput, "Date range start is after its end", 400)
		}
	}
	switch spec.SortBy {
	case "", SortByDate, SortByName, SortByStatus:
	default:
		return apperror.New(apperror.CodeInvalidInput, "Invalid sortBy, expected date, name or status", 400)
	}
	switch spec.SortOrder {
	case "", OrderAsc, OrderDesc:
	default:
		return apperror.New(apperror.CodeInvalidInput, "Invalid sortOrder, expected asc or desc", 400)
	}
	return nil
}

func (s *service) Attendance(ctx context.Context, spec FilterSpec) (AttendanceReportResponse, error) {
	if err := ValidateSpec(spec); err != nil {
		return AttendanceReportResponse{}, err
	}

	rows, names, err := s.attendanceRows(ctx, spec)
	if err != nil {
		return AttendanceReportResponse{}, err
	}

	resp := AttendanceReportResponse{Stats: ComputeAttendanceStats(rows)}
	for _, g := range GroupByDate(rows, names) {
		dto := DateGroupDTO{Date: g.Date, Rows: make([]AttendanceReportRow, len(g.Rows))}
		for i, r := range g.Rows {
			dto.Rows[i] = AttendanceReportRow{
				EmployeeID:   r.EmployeeID,
				EmployeeName: displayName(names, r.EmployeeID),
				Date:         r.Date,
				Present:      r.Present,
			}
		}
		resp.Groups = append(resp.Groups, dto)
	}
	return resp, nil
}

func (s *service) Expenses(ctx context.Context, spec FilterSpec) (ExpenseReportResponse, error) {
	if err := ValidateSpec(spec); err != nil {
		return ExpenseReportResponse{}, err
	}

	rows, names, err := s.expenseRows(ctx, spec)
	if err != nil {
		return ExpenseReportResponse{}, err
	}

	resp := ExpenseReportResponse{
		Stats: ComputeExpenseStats(rows),
		Rows:  make([]ExpenseReportRow, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = ExpenseReportRow{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: displayName(names, r.EmployeeID),
			Date:         r.Date,
			Amount:       r.Amount,
			Category:     r.Category,
			Description:  r.Description,
		}
	}
	return resp, nil
}

func (s *service) ExportAttendance(ctx context.Context, spec FilterSpec, w io.Writer) error {
	if err := ValidateSpec(spec); err != nil {
		return err
	}

	rows, names, err := s.attendanceRows(ctx, spec)
	if err != nil {
		return err
	}

	header, data := attendanceExportRows(rows, names)
	return WriteWorkbook(w, header, data)
}

func (s *service) ExportExpenses(ctx context.Context, spec FilterSpec, w io.Writer) error {
	if err := ValidateSpec(spec); err != nil {
		return err
	}

	rows, names, err := s.expenseRows(ctx, spec)
	if err != nil {
		return err
	}

	header, data := expenseExportRows(rows, names)
	return WriteWorkbook(w, header, data)
}

func (s *service) attendanceRows(ctx context.Context, spec FilterSpec) ([]AttendanceRow, map[int64]string, error) {
	records, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("attendance report fetch failed", zap.Error(err))
		return nil, nil, err
	}

	names, err := s.names.NameIndex(ctx)
	if err != nil {
		s.logger.Error("report roster fetch failed", zap.Error(err))
		return nil, nil, err
	}

	rows := make([]AttendanceRow, len(records))
	for i, r := range records {
		rows[i] = AttendanceRow{
			EmployeeID: r.EmployeeID,
			Date:       datekey.ToKey(r.Date),
			Present:    r.Present,
		}
	}
	return FilterAttendance(rows, names, spec), names, nil
}

func (s *service) expenseRows(ctx context.Context, spec FilterSpec) ([]ExpenseRow, map[int64]string, error) {
	records, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("expense report fetch failed", zap.Error(err))
		return nil, nil, err
	}

	names, err := s.names.NameIndex(ctx)
	if err != nil {
		s.logger.Error("report roster fetch failed", zap.Error(err))
		return nil, nil, err
	}

	rows := make([]ExpenseRow, len(records))
	for i, r := range records {
		rows[i] = ExpenseRow{
			ID:          r.ID,
			EmployeeID:  r.EmployeeID,
			Date:        datekey.ToKey(r.Date),
			Amount:      r.Amount,
			Category:    r.Category,
			Description: r.Description,
		}
	}
	return FilterExpenses(rows, names, spec), names, nil
}
