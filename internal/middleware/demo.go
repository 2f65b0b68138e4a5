package middleware

import (
	"barbershop-app-server/internal/store"
	"barbershop-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DemoUserHeader selects the acting user in demo mode, standing in for a
// login. It mirrors the demo "switch user" selector in the admin UI.
const DemoUserHeader = "X-Demo-User"

// DemoAuthMiddleware resolves the acting user from the demo header instead of
// a JWT. Unknown users are rejected so role checks stay meaningful.
func DemoAuthMiddleware(staff store.Staff, defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(DemoUserHeader)
		if userID == "" {
			userID = defaultUserID
		}

		user, ok, err := staff.GetUser(c.Request.Context(), userID)
		if err != nil {
			utils.InternalServerError(c, "Failed to resolve demo user: "+err.Error())
			c.Abort()
			return
		}
		if !ok {
			utils.Unauthorized(c, "Unknown demo user: "+userID)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)

		c.Next()
	}
}
