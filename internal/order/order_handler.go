package order

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/pkg/response"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

// GET /checkout/summary
func (h *Handler) Summary(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	res, err := h.service.Summary(c.Request.Context(), sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, &response.Meta{Count: len(res.Carts)})
}

// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		h.logger.Warn("http checkout unauthorized: no session")
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http checkout validation failed", zap.Error(err))
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

	res, err := h.service.PlaceOrder(c.Request.Context(), sess, req)
	if err != nil {
		h.logger.Error("http checkout service error",
			zap.String("sid", sess.ID),
			zap.Error(err),
		)
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, &response.Meta{Count: len(res.Orders)})
}
