package session

import (
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrLoginFailed = apperror.New(
		apperror.CodeOperationFailed,
		"Login failed",
		http.StatusBadGateway,
	)

	ErrSessionFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process session",
		http.StatusInternalServerError,
	)
)
