package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/validation"
)

// Error kinds carried in the "error" field of every non-2xx response body.
const (
	ErrorKindValidation = "validation_error"
	ErrorKindHTTP       = "http_error"
	ErrorKindInternal   = "internal_error"
)

// ErrorResponse is the body shape of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details gin.H  `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, kind, message string, details gin.H) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   kind,
		Message: message,
		Details: details,
	})
}

func respondValidationError(c *gin.Context, verr *validation.ValidationError) {
	respondError(c, http.StatusUnprocessableEntity, ErrorKindValidation,
		"Input validation failed", gin.H{"errors": verr.Errors})
}

func respondNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, ErrorKindHTTP, "Book not found", nil)
}
