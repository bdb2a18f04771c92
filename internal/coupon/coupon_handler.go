package coupon

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// POST /checkout/coupon
func (h *Handler) Apply(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	var req ApplyRequest
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

	res, err := h.service.Apply(c.Request.Context(), sess, req.Code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /checkout/coupon
func (h *Handler) Remove(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	if err := h.service.Remove(c.Request.Context(), sess); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Coupon removed"}, nil)
}
