package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/pkg/logger"
	"github.com/sudo-disha/digital-library/internal/pkg/visitors"
)

// VisitorCount increments the visitor counter before every handled
// request. A failed increment is logged and never blocks the request.
func VisitorCount(counter visitors.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := counter.Hit(c.Request.Context()); err != nil {
			logger.Warn().Err(err).Msg("Failed to record visit")
		}
		c.Next()
	}
}
