package coupon

import (
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	checkout := r.Group("/checkout")
	checkout.Use(auth)
	{
		// guessing codes hits the backend every time
		checkout.POST("/coupon", middleware.RateLimitByUser(1, 5), handler.Apply)
		checkout.DELETE("/coupon", handler.Remove)
	}
}
