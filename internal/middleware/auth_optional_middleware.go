package middleware

import (
	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// OptionalSession attaches the session when one resolves and otherwise lets
// the request through as a guest.
func OptionalSession(svc session.Service, cookie session.Cookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := cookie.ID(c)
		if sid == "" {
			c.Next()
			return
		}

		sess, err := svc.Resolve(c.Request.Context(), sid)
		if err != nil {
			// invalid or expired, continue as guest
			c.Next()
			return
		}

		session.Attach(c, sess)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), sess.Token))
		c.Next()
	}
}
