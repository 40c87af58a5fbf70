package attendance

import (
	"staff-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	{
		attendances.GET("", h.GetAll)
		attendances.POST("/mark", h.Mark)
		attendances.GET("/board", h.GetBoard)
		attendances.POST("/board", h.SaveBoard)
		attendances.GET("/calendar", h.Calendar)
	}
}
