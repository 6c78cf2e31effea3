package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/schoolbot/internal/common"
)

// Recovery converts panics into the standard error envelope instead of
// gin's default plain-text response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[recovery] panic path=%s: %v", c.FullPath(), r)
				common.Fail(c, http.StatusInternalServerError, 50000, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
