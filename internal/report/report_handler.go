package report

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"staff-tracker/internal/shared/apperror"
	"staff-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func specFromQuery(c *gin.Context) (FilterSpec, bool) {
	spec := FilterSpec{
		Month:      c.DefaultQuery("month", FilterAll),
		RangeStart: c.Query("from"),
		RangeEnd:   c.Query("to"),
		Search:     c.Query("search"),
		SortBy:     c.DefaultQuery("sortBy", SortByDate),
		SortOrder:  c.DefaultQuery("sortOrder", OrderDesc),
	}

	if raw := c.Query("employeeId"); raw != "" && raw != FilterAll {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid employeeId", nil)
			return FilterSpec{}, false
		}
		spec.EmployeeID = id
	}
	return spec, true
}

func (h *Handler) Attendance(c *gin.Context) {
	spec, ok := specFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.Attendance(c.Request.Context(), spec)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Expenses(c *gin.Context) {
	spec, ok := specFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.Expenses(c.Request.Context(), spec)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportAttendance(c *gin.Context) {
	h.export(c, "attendance-report", h.service.ExportAttendance)
}

func (h *Handler) ExportExpenses(c *gin.Context) {
	h.export(c, "expense-report", h.service.ExportExpenses)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) export(c *gin.Context, name string, write func(ctx context.Context, spec FilterSpec, w io.Writer) error) {
	spec, ok := specFromQuery(c)
	if !ok {
		return
	}
	// Bad filters must fail as JSON before any spreadsheet bytes go out.
	if err := ValidateSpec(spec); err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := write(c.Request.Context(), spec, c.Writer); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
