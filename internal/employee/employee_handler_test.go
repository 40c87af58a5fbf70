package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-tracker/internal/employee"
	"staff-tracker/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn    func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }
func (f *fakeService) NameIndex(ctx context.Context) (map[int64]string, error) {
	return nil, nil
}

func TestHandler_CreateAndGetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "Citra", req.Name)
			return employee.EmployeeResponse{ID: 7, Name: req.Name, Position: req.Position}, nil
		},
		getByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
			assert.Equal(t, int64(7), id)
			return employee.EmployeeResponse{ID: 7, Name: "Citra"}, nil
		},
	}

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees",
		strings.NewReader(`{"name":"Citra","position":"Painter","email":"citra@example.com","phone":"0811"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: "7"}}
	c2.Request = httptest.NewRequest(http.MethodGet, "/employees/7", nil)
	h.GetByID(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Citra")
}

func TestHandler_GetByIDRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := employee.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
	h.GetByID(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
}

func TestHandler_GetByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, apperror.ErrNotFound
		},
	}

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/42", nil)
	h.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
}
