package middleware

import (
	"net/http"
	"net/url"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntendedURLHeader lets the UI tell us which page triggered the call, so the
// user can be sent back there after login.
const IntendedURLHeader = "X-Intended-URL"

type SessionConfig struct {
	Cookie   session.Cookie
	LoginURL string
	Logger   *zap.Logger
}

// RequireSession resolves the caller's session. On success the session is
// attached to the gin context and its token to the request context. On
// failure the intended URL is remembered and a 401 carrying loginUrl is sent.
func RequireSession(svc session.Service, cfg SessionConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		// 1. Session id (issued on first contact)
		sid := cfg.Cookie.Ensure(c)

		// 2. Resolve & validate token
		sess, err := svc.Resolve(c.Request.Context(), sid)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			if httpErr.Status != http.StatusUnauthorized {
				response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
				c.Abort()
				return
			}

			// 3. Remember where the user was going
			intended := intendedURL(c)
			if err := svc.RememberNext(c.Request.Context(), sid, intended); err != nil {
				logger.Warn("failed to remember intended url", zap.String("sid", sid), zap.Error(err))
			}

			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, gin.H{
				"loginUrl": LoginURL(cfg.LoginURL, intended),
			})
			c.Abort()
			return
		}

		// 4. Set validated values
		session.Attach(c, sess)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), sess.Token))

		c.Next()
	}
}

// LoginURL builds the redirect target for an unauthenticated caller.
func LoginURL(base, next string) string {
	if base == "" {
		base = "/login"
	}
	if next == "" {
		return base
	}
	return base + "?next=" + url.QueryEscape(next)
}

func intendedURL(c *gin.Context) string {
	if v := c.GetHeader(IntendedURLHeader); v != "" {
		return v
	}
	return c.Request.URL.RequestURI()
}
