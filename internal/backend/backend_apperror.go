package backend

import (
	"errors"
	"net/http"

	"go-pet-storefront/internal/pkg/apperror"
)

var (
	errBackendUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication required",
		http.StatusUnauthorized,
	)

	errBackendUnavailable = apperror.New(
		apperror.CodeOperationFailed,
		"Storefront backend is unavailable",
		http.StatusBadGateway,
	)
)

// AsAppError turns a client error into the error shape handlers render.
// Backend messages are passed through so the user sees the server's reason.
func AsAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, ErrUnauthorized) {
		return apperror.Wrap(err, errBackendUnauthorized.Code, errBackendUnauthorized.Message, errBackendUnauthorized.HTTPStatus)
	}

	var se *StatusError
	if errors.As(err, &se) {
		return apperror.Wrap(err, apperror.CodeOperationFailed, se.Error(), http.StatusBadGateway)
	}

	return apperror.Wrap(err, errBackendUnavailable.Code, errBackendUnavailable.Message, errBackendUnavailable.HTTPStatus)
}
