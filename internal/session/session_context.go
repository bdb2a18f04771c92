package session

import (
	"github.com/gin-gonic/gin"
)

const ginKey = "session"

// Attach stores the resolved session on the gin context.
func Attach(c *gin.Context, sess Session) {
	c.Set(ginKey, sess)
	c.Set("user_id_validated", sess.UserID)
}

func FromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(ginKey)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}
