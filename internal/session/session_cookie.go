package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Cookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func (ck Cookie) name() string {
	if ck.Name == "" {
		return "sid"
	}
	return ck.Name
}

// ID returns the session id carried by the request, or "".
func (ck Cookie) ID(c *gin.Context) string {
	sid, err := c.Cookie(ck.name())
	if err != nil {
		return ""
	}
	return sid
}

// Ensure returns the request's session id, issuing a fresh one when absent.
func (ck Cookie) Ensure(c *gin.Context) string {
	if sid := ck.ID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	ck.Set(c, sid)
	return sid
}

func (ck Cookie) Set(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.name(), sid, int(ck.MaxAge.Seconds()), "/", "", ck.Secure, true)
}

func (ck Cookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.name(), "", -1, "/", "", ck.Secure, true)
}
