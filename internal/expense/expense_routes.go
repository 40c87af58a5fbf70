package expense

import (
	"staff-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))
	{
		expenses.GET("", h.GetAll)
		expenses.GET("/categories", h.GetCategories)
		expenses.GET("/:id", h.GetByID)
		expenses.POST("", idempotency, h.Create)
		expenses.DELETE("/:id", h.Delete)
	}
}
