package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/schoolbot/internal/common"
	"github.com/edudesk/schoolbot/internal/store/redisstore"
)

// RateLimit enforces a fixed-window per-client limit backed by redis.
// perMinute <= 0 disables the limit. A redis failure lets the request
// through: availability over strictness for this surface.
func RateLimit(rds *redisstore.Store, scope string, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 || rds == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if email, ok := c.Get(ParentEmailKey); ok {
			if s, _ := email.(string); s != "" {
				key = s
			}
		}

		n, err := rds.IncrWindow(c.Request.Context(), scope, key, time.Minute)
		if err != nil {
			log.Printf("[ratelimit] scope=%s key=%s err=%v", scope, key, err)
			c.Next()
			return
		}
		if n > int64(perMinute) {
			common.Fail(c, http.StatusTooManyRequests, 42900, "rate limit exceeded, try again shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}
