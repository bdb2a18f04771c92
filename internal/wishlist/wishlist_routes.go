package wishlist

import (
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth, optionalAuth gin.HandlerFunc) {
	wishlist := r.Group("wishlist")
	{
		// Limit 5 rps, burst 10 for browsing.
		wishlist.GET("",
			auth,
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)

		wishlist.GET("/:productId",
			optionalAuth,
			handler.Contains,
		)

		// Toggle reads then writes; 1 rps, burst 3 keeps double clicks
		// from racing each other.
		wishlist.POST("/:productId/toggle",
			auth,
			middleware.RateLimitByUser(1, 3),
			handler.Toggle,
		)
	}
}
