package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	perrors "github.com/careconnect/portal-api/pkg/errors"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into the
// standard error envelope. Every catch boundary leaves the client with a
// renderable response, never a bare 500 page.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)
		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("request error")
		}

		lastErr := c.Errors.Last()
		status := http.StatusInternalServerError
		var fields map[string]string
		if appErr, ok := perrors.AsAppError(lastErr.Err); ok {
			status = appErr.StatusCode()
			fields = appErr.Fields
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, ErrorResponse{
			Code:      status,
			Message:   lastErr.Error(),
			Fields:    fields,
			RequestID: requestID,
		})
	}
}
