package cart

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

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// POST /carts/items
func (h *Handler) AddItem(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	var req ReconcileRequest
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

	res, err := h.service.Reconcile(c.Request.Context(), sess, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, res, nil)
}

// GET /carts
func (h *Handler) List(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	carts, err := h.service.List(c.Request.Context(), sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, carts, &response.Meta{Count: len(carts)})
}

// GET /carts/shop/:shopId
func (h *Handler) ShopCart(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	res, err := h.service.ShopCart(c.Request.Context(), sess, c.Param("shopId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GET /carts/count
func (h *Handler) Count(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	count, err := h.service.Count(c.Request.Context(), sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CountResponse{Count: count}, nil)
}
