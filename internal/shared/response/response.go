package response

import (
	"bookstore-catalog/internal/shared/apperror"
	"bookstore-catalog/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error is the body of every failed request
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Ack is the body of acknowledgement-only responses (delete, reset)
type Ack struct {
	Message string `json:"message"`
}

// Success writes data as the raw response body
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes an acknowledgement body
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Ack{Message: message})
}

// ErrorResponse writes an error body with an explicit status
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Error{
		Code:    code,
		Message: message,
	})
}

// FromError maps err through the apperror taxonomy and writes the result.
// Internal errors are logged with their cause; the client only gets the generic message.
func FromError(c *gin.Context, err error) {
	status, code, message := apperror.Describe(err)
	kind := apperror.KindOf(err)
	metrics.RecordError(kind.String())
	if kind == apperror.KindInternal {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed")
	}
	ErrorResponse(c, status, code, message)
	c.Abort()
}

// Common error responses
func NotFound(c *gin.Context, code, message string) {
	ErrorResponse(c, 404, code, message)
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, 500, apperror.CodeInternal, apperror.MessageInternal)
}
