package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

// abortWithError maps the domain error taxonomy onto HTTP once, here.
// domain.ErrAlreadyCompleted never reaches this function; handlers treat
// it as an idempotent success.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		detail = "not authorized to access this resource"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		detail = err.Error()
	case errors.Is(err, domain.ErrOutOfOrder):
		status = http.StatusConflict
		detail = "cannot complete this step because a previous step is not completed"
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
