package mw

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diegoclair/crew-planner/internal/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			log.Infow("request failed", fields)
			return
		}
		log.Debugw("request", fields)
	}
}
