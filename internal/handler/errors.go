package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP responses. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		body := gin.H{"error": verr.Message}
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case service.IsAuthError(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
	case errors.Is(err, service.ErrTaskNotFound):
		c.Status(http.StatusNotFound)
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindRequest decodes the request body into obj. An empty body is not an
// error, so the service reports which fields are missing. Decoder failures
// become ValidationErrors without Go type names in the message.
func bindRequest(c *gin.Context, obj interface{}) error {
	err := c.ShouldBind(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &service.ValidationError{
			Message: "invalid input",
			Fields:  map[string]string{typeErr.Field: "Incorrect type."},
		}
	}
	return service.NewValidationError("Malformed request body.")
}
