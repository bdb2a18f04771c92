package order

import (
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rdb *redis.Client) {
	checkout := r.Group("/checkout")
	checkout.Use(auth)
	{
		checkout.GET("/summary", handler.Summary)

		// 1 request per 10 seconds, guards against double orders
		checkout.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Idempotency(rdb),
			handler.Checkout,
		)
	}
}
