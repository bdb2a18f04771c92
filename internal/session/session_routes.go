package session

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the session endpoints. They resolve the cookie
// themselves and are not behind RequireSession.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	s := r.Group("session")
	{
		s.POST("/login", handler.Login)
		s.DELETE("", handler.Logout)
		s.GET("", handler.Status)
	}
}
