package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const IdempotencyHeader = "Idempotency-Key"

var ErrDuplicateRequest = apperror.New(
	apperror.CodeConflict,
	"Request is already being processed",
	http.StatusConflict,
)

const idempotencyTTL = 30 * time.Second

// Idempotency rejects a second in-flight request with the same key (the
// Idempotency-Key header, else the session id). The lock is dropped once the
// handler returns.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyHeader)
		if sess, ok := session.FromContext(c); ok {
			key = sess.ID + ":" + key
		}
		if key == "" || key == ":" {
			key = c.ClientIP()
		}
		lockKey := fmt.Sprintf("idempotency:%s:%s", c.FullPath(), key)

		ok, err := rdb.SetNX(c.Request.Context(), lockKey, "1", idempotencyTTL).Result()
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		if !ok {
			response.FromError(c, ErrDuplicateRequest)
			c.Abort()
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		defer rdb.Del(context.Background(), lockKey)

		c.Next()
	}
}
