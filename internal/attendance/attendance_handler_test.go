package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-tracker/internal/attendance"
	"staff-tracker/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getAllFn    func(ctx context.Context) ([]attendance.AttendanceResponse, error)
	getByDateFn func(ctx context.Context, dateKey string) ([]attendance.AttendanceResponse, error)
	markFn      func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)
	getBoardFn  func(ctx context.Context, dateKey string) (attendance.BoardResponse, error)
	saveBoardFn func(ctx context.Context, req attendance.SaveBoardRequest) (attendance.SaveBoardResponse, error)
	calendarFn  func(ctx context.Context, monthKey, selectedKey string) (attendance.CalendarResponse, error)
}

func (f *fakeService) GetAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByDate(ctx context.Context, dateKey string) ([]attendance.AttendanceResponse, error) {
	return f.getByDateFn(ctx, dateKey)
}
func (f *fakeService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.markFn(ctx, req)
}
func (f *fakeService) GetBoard(ctx context.Context, dateKey string) (attendance.BoardResponse, error) {
	return f.getBoardFn(ctx, dateKey)
}
func (f *fakeService) SaveBoard(ctx context.Context, req attendance.SaveBoardRequest) (attendance.SaveBoardResponse, error) {
	return f.saveBoardFn(ctx, req)
}
func (f *fakeService) Calendar(ctx context.Context, monthKey, selectedKey string) (attendance.CalendarResponse, error) {
	return f.calendarFn(ctx, monthKey, selectedKey)
}

func TestHandler_MarkAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markFn: func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, int64(1), req.EmployeeID)
			assert.Equal(t, "2026-08-03", req.Date)
			return attendance.AttendanceResponse{ID: 10, EmployeeID: 1, Date: req.Date, Present: *req.Present}, nil
		},
		getAllFn: func(ctx context.Context) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{{ID: 10}, {ID: 11}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/mark",
		strings.NewReader(`{"employeeId":1,"date":"2026-08-03","present":true}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"present":true`)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendances", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestHandler_GetAllWithDateQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByDateFn: func(ctx context.Context, dateKey string) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "2026-08-03", dateKey)
			return nil, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances?date=2026-08-03", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/mark",
		strings.NewReader(`{"employeeId":1}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
}

func TestHandler_SaveBoardPartialFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		saveBoardFn: func(ctx context.Context, req attendance.SaveBoardRequest) (attendance.SaveBoardResponse, error) {
			return attendance.SaveBoardResponse{
					Date:   req.Date,
					Saved:  1,
					Failed: []attendance.FailedSave{{EmployeeID: 2, Reason: "deadlock detected"}},
				},
				apperror.New(apperror.CodeSaveFailed, "Some attendance records could not be saved", 500)
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/board",
		strings.NewReader(`{"date":"2026-08-03","entries":[{"employeeId":1,"status":"present"},{"employeeId":2,"status":"absent"}]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.SaveBoard(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeSaveFailed)
	// Details carry what did save so the client can retry only the rest.
	assert.Contains(t, w.Body.String(), `"saved":1`)
}

func TestHandler_Calendar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		calendarFn: func(ctx context.Context, monthKey, selectedKey string) (attendance.CalendarResponse, error) {
			assert.Equal(t, "2026-08", monthKey)
			assert.Equal(t, "2026-08-03", selectedKey)
			return attendance.CalendarResponse{Month: monthKey}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/calendar?month=2026-08&selected=2026-08-03", nil)
	h.Calendar(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2026-08"`)
}
