package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ratguide/internal/apperrors"
)

// Error writes the {"error": message} body every failure path shares.
func Error(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, gin.H{"error": err.Error()})
}

// FromError maps an error to its HTTP status by kind: invalid argument
// and duplicate key become 400, not found 404, and everything else is a
// store failure surfaced verbatim as 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		Error(c, http.StatusBadRequest, err)
	case errors.Is(err, apperrors.ErrDuplicateKey):
		Error(c, http.StatusBadRequest, err)
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, err)
	default:
		Error(c, http.StatusInternalServerError, err)
	}
}
