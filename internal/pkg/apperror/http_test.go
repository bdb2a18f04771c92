package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-pet-storefront/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("wrapped_app_error", func(t *testing.T) {
		base := apperror.New(apperror.CodeNotFound, "cart not found", http.StatusNotFound)
		err := fmt.Errorf("lookup: %w", base)

		res := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, apperror.CodeNotFound, res.Code)
		assert.Equal(t, "cart not found", res.Message)
	})

	t.Run("details_are_forwarded", func(t *testing.T) {
		base := apperror.New(apperror.CodeUnauthorized, "login required", http.StatusUnauthorized)
		err := base.WithDetails(map[string]string{"loginUrl": "/login"})

		res := apperror.ToHTTP(err)
		assert.Equal(t, map[string]string{"loginUrl": "/login"}, res.Details)
		assert.ErrorIs(t, err, base)
	})

	t.Run("plain_error_is_internal", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
	})
}
