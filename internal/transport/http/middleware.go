package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// poweredBy overrides the default framework advertisement, a holdover
// from the original deployment.
const poweredBy = "your mother"

// AccessLog creates a middleware that writes one line per request with
// the response time, method, path and status.
func AccessLog(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Dur("duration", time.Since(start)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("http request")
	}
}

// PoweredBy sets the X-Powered-By response header on every response.
func PoweredBy() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Powered-By", poweredBy)
		c.Next()
	}
}
