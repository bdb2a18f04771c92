package session

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cookie  Cookie
}

func NewHandler(svc Service, cookie Cookie) *Handler {
	return &Handler{service: svc, cookie: cookie}
}

// POST /session/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Invalid request body",
			http.StatusBadRequest,
		)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), h.cookie.ID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.cookie.Set(c, res.SessionID)
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /session
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), h.cookie.ID(c)); err != nil {
		response.FromError(c, err)
		return
	}

	h.cookie.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}

// GET /session
func (h *Handler) Status(c *gin.Context) {
	sess, err := h.service.Resolve(c.Request.Context(), h.cookie.ID(c))
	if err != nil {
		// an absent or stale session is a normal answer here
		if apperror.ToHTTP(err).Status == http.StatusUnauthorized {
			response.Success(c, http.StatusOK, StatusResponse{Authenticated: false}, nil)
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{
		Authenticated: true,
		UserID:        sess.UserID,
		ExpiresAt:     &sess.ExpiresAt,
	}, nil)
}
