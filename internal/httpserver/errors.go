package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musicmerchant/internal/domain"
)

// apiError is a fixed status and message pair returned to clients.
type apiError struct {
	status  int
	message string
}

func (e apiError) Error() string { return e.message }

var (
	errRouteNotFound    = apiError{http.StatusNotFound, "Route not found"}
	errMethodNotAllowed = apiError{http.StatusMethodNotAllowed, "Method not allowed"}
	errProductNotFound  = apiError{http.StatusNotFound, "Product not found"}
	errInternal         = apiError{http.StatusInternalServerError, "Internal server error"}
)

func writeError(c *gin.Context, e apiError) {
	c.AbortWithStatusJSON(e.status, gin.H{"error": e.message})
}

// writeServiceError maps service errors onto responses. Validation messages
// are shown to the caller; anything unrecognised becomes a bare 500.
func writeServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, errProductNotFound)
	case errors.Is(err, domain.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		writeError(c, errInternal)
	}
}
