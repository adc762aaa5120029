package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/metrics"
)

// Recovery turns a panic into a 500 with the generic internal error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				metrics.RecordError("panic")
				response.InternalServerError(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
