package counter

import (
	"io"
	"net/http"
	"time"

	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 15 * time.Second

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /counts
func (h *Handler) Counts(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	counts, err := h.service.Get(c.Request.Context(), sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, counts, &response.Meta{
		UpdatedAt: counts.UpdatedAt.Format(time.RFC3339),
	})
}

// GET /counts/stream
// Server-sent events; the stream ends when the client goes away.
func (h *Handler) Stream(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	initial, err := h.service.Get(ctx, sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	updates, unsubscribe := h.service.Subscribe(ctx, sess.ID)
	defer unsubscribe()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("counts", initial)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case counts, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("counts", counts)
			return true
		case <-keepAlive.C:
			h.service.Touch(ctx, sess.ID)
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
