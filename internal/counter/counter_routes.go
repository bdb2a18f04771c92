package counter

import (
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	counts := r.Group("counts")
	counts.Use(auth)
	{
		counts.GET("", middleware.RateLimitByUser(2, 10), handler.Counts)
		counts.GET("/stream", handler.Stream)
	}
}
