package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halfmoonlabs/chatloop/pkg/services"
)

// Error codes used in the response envelope.
const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
)

// errorBody is the error envelope: {"error":{code,message,details?}}.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    CodeValidation,
			Message: validErr.Message,
			Details: gin.H{"field": validErr.Field},
		}})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, CodeNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		respondError(c, http.StatusConflict, CodeConflict, err.Error())
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, CodeConflict, "resource already exists")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	respondError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
