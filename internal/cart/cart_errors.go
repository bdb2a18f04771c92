package cart

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be a positive number",
		http.StatusBadRequest,
	)

	ErrMissingShop = apperror.New(
		apperror.CodeInvalidInput,
		"Product has no shop reference",
		http.StatusBadRequest,
	)

	ErrNoVariations = apperror.New(
		apperror.CodeInvalidInput,
		"Product has no variations",
		http.StatusBadRequest,
	)

	ErrInvalidShopID = apperror.New(
		apperror.CodeInvalidInput,
		"shopId is required",
		http.StatusBadRequest,
	)

	ErrCartBusy = apperror.New(
		apperror.CodeConflict,
		"Cart is being updated, please retry",
		http.StatusConflict,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
