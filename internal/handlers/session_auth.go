package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/services"
)

// SessionAuthMiddleware resolves the stored session to a user on every
// request. Resolution never aborts: anonymous requests pass through with no
// user in the context, and each route decides what anonymity may do.
type SessionAuthMiddleware struct {
	auth services.AuthService
}

func NewSessionAuthMiddleware(auth services.AuthService) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{auth: auth}
}

// ResolveMiddleware loads the current-session user into the gin context.
func (sam *SessionAuthMiddleware) ResolveMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sam.auth.CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal",
				"message": "failed to resolve session",
			})
			c.Abort()
			return
		}

		if user != nil {
			c.Set("user_id", user.ID)
			c.Set("user", user)
			c.Set("user_role", user.Role)
			c.Set("user_email", user.Email)
		}

		c.Next()
	}
}

// RequireAuthMiddleware rejects anonymous requests.
func (sam *SessionAuthMiddleware) RequireAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "authentication required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoleMiddleware checks if user has required role
func (sam *SessionAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "authentication required",
			})
			c.Abort()
			return
		}

		role, ok := userRole.(models.UserRole)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "invalid user role format",
			})
			c.Abort()
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole || role == models.RoleAdmin {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": fmt.Sprintf("insufficient permissions, required role: %v", requiredRoles),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserFromContext extracts user from Gin context. Returns nil for an
// anonymous request.
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}

	userModel, ok := user.(*models.User)
	if !ok {
		return nil
	}
	return userModel
}
