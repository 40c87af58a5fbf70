package attendance

import (
	"net/http"

	"staff-tracker/internal/shared/apperror"
	"staff-tracker/internal/shared/datekey"
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

// GetAll lists every attendance record, or only one day's records when a
// ?date=YYYY-MM-DD query is present.
func (h *Handler) GetAll(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		resp, err := h.service.GetByDate(c.Request.Context(), date)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetBoard defaults to today when no date query is given.
func (h *Handler) GetBoard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = datekey.Today()
	}

	resp, err := h.service.GetBoard(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SaveBoard(c *gin.Context) {
	var req SaveBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.SaveBoard(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		// Partial failures still report what was saved so the client can
		// retry only the failed entries.
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, resp)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Calendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = datekey.MonthOfKey(datekey.Today())
	}

	resp, err := h.service.Calendar(c.Request.Context(), month, c.Query("selected"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
