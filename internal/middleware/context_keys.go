package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated operator's employee ID.
const userIDKey = contextKey("userID")

// roleKey stores the authenticated operator's role.
const roleKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated operator's employee ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the authenticated operator's role.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	role, ok := c.Request.Context().Value(roleKey).(string)
	return role, ok && role != ""
}
