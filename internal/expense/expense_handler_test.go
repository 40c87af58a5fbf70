package expense_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-tracker/internal/expense"
	"staff-tracker/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn    func(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
	getAllFn    func(ctx context.Context) ([]expense.ExpenseResponse, error)
	getByDateFn func(ctx context.Context, dateKey string) ([]expense.ExpenseResponse, error)
	getByIDFn   func(ctx context.Context, id string) (expense.ExpenseResponse, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]expense.ExpenseResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByDate(ctx context.Context, dateKey string) ([]expense.ExpenseResponse, error) {
	return f.getByDateFn(ctx, dateKey)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }
func (f *fakeService) Categories() []string                        { return expense.Categories }

func TestHandler_CreateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	svc := &fakeService{
		createFn: func(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
			assert.Equal(t, expense.CategoryMaterials, req.Category)
			return expense.ExpenseResponse{ID: id, EmployeeID: req.EmployeeID, Amount: req.Amount}, nil
		},
		deleteFn: func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			return nil
		},
	}

	h := expense.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"employeeId":1,"date":"2026-08-03","amount":125.5,"category":"Materials","description":"Paint"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: id}}
	c2.Request = httptest.NewRequest(http.MethodDelete, "/expenses/"+id, nil)
	h.Delete(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestHandler_GetAllBranchesOnDateQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]expense.ExpenseResponse, error) {
			t.Fatal("GetAll must not be called when a date query is present")
			return nil, nil
		},
		getByDateFn: func(ctx context.Context, dateKey string) ([]expense.ExpenseResponse, error) {
			assert.Equal(t, "2026-08-03", dateKey)
			return []expense.ExpenseResponse{{ID: uuid.NewString(), Date: dateKey, Amount: 50}}, nil
		},
	}

	h := expense.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/expenses?date=2026-08-03", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2026-08-03")
}

func TestHandler_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := expense.NewHandler(&fakeService{})

	// Zero amount fails the gt=0 binding before the service is reached.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"employeeId":1,"date":"2026-08-03","amount":0,"category":"Materials","description":"Paint"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
}

func TestHandler_DeleteRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := expense.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/expenses/not-a-uuid", nil)
	h.Delete(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := expense.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/expenses/categories", nil)
	h.GetCategories(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Office Supplies")
}
