package middleware

import (
	"github.com/gin-gonic/gin"

	sharedContext "github.com/ogeoseo/go-api-server/internal/shared/context"
)

// IdentityHeader carries the caller's user id. The value is not verified;
// the portal runs without a real auth system and trusts the header.
const IdentityHeader = "X-User-Id"

// Identity attaches the caller's user id to the gin context, substituting
// the demo user when the header is absent.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(IdentityHeader)
		if userID == "" {
			userID = sharedContext.DefaultUserID
		}

		c.Set(sharedContext.UserIDKey, userID)
		c.Next()
	}
}
