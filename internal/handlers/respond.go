package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errUnauthorizedRequest is returned when an authenticated route is reached
// without a user in context.
var errUnauthorizedRequest = fmt.Errorf("missing authenticated user: %w", apperrors.ErrUnauthorized)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewEnvelope(statusCode, data, message))
}

// respondError maps a service error to a status code and writes the uniform
// error envelope. This is the single place where the error taxonomy meets
// transport status codes.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statusCode := http.StatusInternalServerError
	message := err.Error()
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrTokenReused):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		statusCode = http.StatusConflict
	case errors.Is(err, apperrors.ErrUploadFailed):
		statusCode = http.StatusBadGateway
	default:
		// Do not leak internal detail for unexpected failures.
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		message = "Something went wrong"
	}

	c.JSON(statusCode, dto.NewEnvelope(statusCode, nil, message))
}

// respondBadRequest writes a validation-style envelope for binding failures.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewEnvelope(http.StatusBadRequest, nil, message))
}
