package activity

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"staff-tracker/internal/attendance"
	"staff-tracker/internal/expense"
	"staff-tracker/internal/lending"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository                     { return f }
func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.rows, nil
}
func (f *fakeAttendanceRepo) FindByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) DistinctDates(ctx context.Context) ([]time.Time, error) {
	return nil, nil
}

type fakeExpenseRepo struct {
	rows []expense.Expense
}

func (f *fakeExpenseRepo) WithTx(tx *sql.Tx) expense.Repository                 { return f }
func (f *fakeExpenseRepo) Create(ctx context.Context, e *expense.Expense) error { return nil }
func (f *fakeExpenseRepo) FindAll(ctx context.Context) ([]expense.Expense, error) {
	return f.rows, nil
}
func (f *fakeExpenseRepo) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	return f.rows, nil
}
func (f *fakeExpenseRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeNameResolver struct {
	calls int
}

func (f *fakeNameResolver) NameIndex(ctx context.Context) (map[int64]string, error) {
	f.calls++
	return map[int64]string{1: "Budi"}, nil
}

func TestService_FeedResolvesNamesThroughIndex(t *testing.T) {
	at := time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local)

	attendanceRepo := &fakeAttendanceRepo{rows: []attendance.Attendance{
		{EmployeeID: 1, Date: at, Present: true, UpdatedAt: at},
	}}
	expenseRepo := &fakeExpenseRepo{rows: []expense.Expense{
		{ID: "a", EmployeeID: 7, Date: at, Amount: 40, Category: expense.CategoryMeals, CreatedAt: at.Add(time.Hour)},
	}}
	resolver := &fakeNameResolver{}

	svc := NewService(attendanceRepo, expenseRepo, lending.NewStaticSource(nil), resolver)

	events, err := svc.Feed(context.Background(), FullLimit)
	assert.NoError(t, err)
	assert.Equal(t, 1, resolver.calls)

	assert.Len(t, events, 2)
	assert.Equal(t, KindExpense, events[0].Kind)
	assert.Contains(t, events[0].Message, "Unknown")
	assert.Equal(t, KindAttendance, events[1].Kind)
	assert.Contains(t, events[1].Message, "Budi")
}
