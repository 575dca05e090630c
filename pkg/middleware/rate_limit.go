package middleware

import (
	"net/http"
	"time"

	mem "dreamtrip/pkg/memcache"
	"dreamtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies a fixed-window limit per client IP. The AI
// endpoints get a tight window (generation calls are slow and metered);
// the rest of the API a loose one.
func RateLimitMiddleware(store mem.RequestCounterStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		if store.Increment(key, window) > limit {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
