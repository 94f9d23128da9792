package reports

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/summary", handler.Summary)
		reports.GET("/quarterly", handler.Quarterly)
		reports.GET("/ytd", handler.YearToDate)
	}
}
