package coupon

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	ErrCouponInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid coupon code",
		http.StatusBadRequest,
	)

	ErrCouponExpired = apperror.New(
		apperror.CodeInvalidState,
		"Coupon has expired",
		http.StatusBadRequest,
	)

	ErrCouponFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process coupon",
		http.StatusInternalServerError,
	)
)
