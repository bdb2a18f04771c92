package wishlist

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrInvalidShopID = apperror.New(
		apperror.CodeInvalidInput,
		"shopId is required to add a product",
		http.StatusBadRequest,
	)
)
