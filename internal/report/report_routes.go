package report

import (
	"staff-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	{
		reports.GET("/attendance", h.Attendance)
		reports.GET("/attendance/export", h.ExportAttendance)
		reports.GET("/expenses", h.Expenses)
		reports.GET("/expenses/export", h.ExportExpenses)
	}
}
