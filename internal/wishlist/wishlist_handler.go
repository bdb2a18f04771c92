package wishlist

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

// POST /wishlist/:productId/toggle
func (h *Handler) Toggle(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	// shopId is only needed when the product gets added
	var req ToggleRequest
	if c.Request.ContentLength != 0 {
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
	}

	res, err := h.service.Toggle(c.Request.Context(), sess, c.Param("productId"), req.ShopID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		response.FromError(c, session.ErrUnauthorized)
		return
	}

	res, err := h.service.List(c.Request.Context(), sess)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, &response.Meta{Count: res.ItemCount})
}

// GET /wishlist/:productId
// Guests get inWishlist=false instead of a login prompt.
func (h *Handler) Contains(c *gin.Context) {
	productID := c.Param("productId")

	sess, ok := session.FromContext(c)
	if !ok {
		response.Success(c, http.StatusOK, ContainsResponse{ProductID: productID}, nil)
		return
	}

	in, err := h.service.Contains(c.Request.Context(), sess, productID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ContainsResponse{ProductID: productID, InWishlist: in}, nil)
}
