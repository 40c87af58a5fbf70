package activity

import (
	"net/http"
	"strconv"

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

// Feed serves the recent-activity list. ?limit caps the tail length and
// defaults to the activity page size.
func (h *Handler) Feed(c *gin.Context) {
	limit := FullLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	events, err := h.service.Feed(c.Request.Context(), limit)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, events, nil)
}
