package httpapi

import (
	"errors"
	"net/http"

	"github.com/jonuar/Donacrypto/internal/apperr"
	"github.com/jonuar/Donacrypto/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// abortWithError maps domain error kinds to status codes. NotAuthorized is
// collapsed into 404 so responses never leak whether a resource exists.
// Anything unrecognized is logged and surfaced as a generic 500.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrInvalidOperation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrNotAuthorized):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		config.Logger.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
