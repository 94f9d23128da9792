package settings

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	grp := r.Group("/settings")
	grp.Use(middleware.AuthMiddleware())
	{
		grp.GET("", handler.Get)
		grp.PUT("", handler.Save)
	}
}
