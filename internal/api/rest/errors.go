package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/wallet-ledger/internal/api/shared/errors"
	"github.com/feral-file/wallet-ledger/internal/logger"
)

// respondWithError sends the error's JSON body with its mapped status code
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), apiErr)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, apierrors.NewNotFoundError(message))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, apierrors.NewValidationError(details))
}

// respondError sends an executor error. Anything that is not an *APIError is
// reported as a 500 carrying the raw message.
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(err.Error())
	}
	if apiErr.StatusCode() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	}
	respondWithError(c, apiErr)
}
