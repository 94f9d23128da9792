package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	statements := r.Group("/statements")
	statements.Use(middleware.AuthMiddleware())
	{
		statements.GET("", handler.GetAll)
		statements.GET("/:id", handler.GetById)
		statements.GET("/:id/payslip/download", handler.DownloadPayslip)
		if redisClient != nil {
			idemp := middleware.Idempotency(redisClient)
			statements.POST("", idemp, handler.Create)
			statements.POST("/hours", idemp, handler.CreateFromTotalHours)
		} else {
			statements.POST("", handler.Create)
			statements.POST("/hours", handler.CreateFromTotalHours)
		}
		statements.POST("/:id/payslip", handler.RequestPayslip)
		statements.DELETE("/:id", handler.Delete)
	}
}
