package cart

import (
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	carts := r.Group("/carts")
	carts.Use(auth)
	{
		carts.GET("", handler.List)
		carts.GET("/count", handler.Count)
		carts.GET("/shop/:shopId", handler.ShopCart)

		// each add is a read plus a write at the backend
		carts.POST("/items",
			middleware.RateLimitByUser(2, 5),
			handler.AddItem,
		)
	}
}
