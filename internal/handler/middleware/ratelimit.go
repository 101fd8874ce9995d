package middleware

import (
	"errors"
	"net/http"

	"fairway/internal/handler/httperr"
	"fairway/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

var errTooManyRequests = errors.New("too many requests")

// RateLimitMiddleware caps write traffic per client IP with a fixed window.
func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
