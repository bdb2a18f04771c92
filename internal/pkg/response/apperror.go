package response

import (
	"go-pet-storefront/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// FromError renders any service error through apperror.ToHTTP.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
