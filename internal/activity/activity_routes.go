package activity

import (
	"staff-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	activities := r.Group("/activities")
	activities.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	{
		activities.GET("", h.Feed)
	}
}
