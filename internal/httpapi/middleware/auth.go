package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/schoolbot/internal/auth"
	"github.com/edudesk/schoolbot/internal/common"
)

const (
	ParentEmailKey = "parent_email"
	StudentIDsKey  = "student_ids"
)

// AuthRequired validates the bearer token and stores the parent identity
// on the request context. This identity is authoritative for everything
// downstream, including the chat engine.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
			c.Abort()
			return
		}
		claims, err := auth.ParseJWT(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			common.Fail(c, http.StatusUnauthorized, 40102, "invalid token")
			c.Abort()
			return
		}
		c.Set(ParentEmailKey, claims.ParentEmail)
		c.Set(StudentIDsKey, claims.StudentIDs)
		c.Next()
	}
}
