package order

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidState,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrInvalidCheckout = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid checkout details",
		http.StatusBadRequest,
	)
)
