// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "caseflow-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

// FromError maps service-layer sentinel errors to HTTP statuses.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, xerrors.ErrForbidden):
		Error(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, xerrors.ErrInvalidInput):
		Error(c, http.StatusBadRequest, "invalid input", err)
	default:
		Error(c, http.StatusInternalServerError, "internal server error", err)
	}
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}
