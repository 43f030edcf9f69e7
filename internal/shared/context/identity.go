package context

import (
	"github.com/gin-gonic/gin"
)

// Context keys for the request identity.
const (
	UserIDKey = "user_id"

	// DefaultUserID is the demo identity used when no header is supplied.
	// The campaign portal has no real session system; the X-User-Id header
	// is trusted as-is.
	DefaultUserID = "u1"
)

// CurrentUserID returns the identity attached by the Identity middleware,
// falling back to the demo user when the middleware is not mounted.
func CurrentUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if id, ok := userID.(string); ok && id != "" {
			return id
		}
	}
	return DefaultUserID
}
