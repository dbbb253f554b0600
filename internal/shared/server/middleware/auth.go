package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/auth"
	"resume-portal/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
	userNameKey = "userName"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// DefaultPublicPrefixes are reachable without a token.
var DefaultPublicPrefixes = []string{"/api/v1/health", "/api/v1/shared/", "/metrics"}

// Auth validates bearer JWTs and stores identity in context. Paths under one of
// the public prefixes pass through untouched.
func Auth(verifier TokenVerifier, publicPrefixes ...string) gin.HandlerFunc {
	if len(publicPrefixes) == 0 {
		publicPrefixes = DefaultPublicPrefixes
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		claims, err := verifier.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(userRoleKey, claims.Role)
		if claims.Name != "" {
			c.Set(userNameKey, claims.Name)
		}
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		respond.Error(c, http.StatusForbidden, "forbidden", "insufficient role", nil)
	}
}

// UserIDFromContext fetches the token subject set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

// RoleFromContext fetches the caller role set by the auth middleware.
func RoleFromContext(c *gin.Context) auth.Role {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userRoleKey)
	role, _ := val.(auth.Role)
	return role
}

// UserNameFromContext fetches the display name carried by the token.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userNameKey)
}

// CanAccessStudent reports whether the caller may read the given student's resume.
// Faculty and admins may read any student; students only themselves.
func CanAccessStudent(c *gin.Context, studentID int64) bool {
	switch RoleFromContext(c) {
	case auth.RoleFaculty, auth.RoleAdmin:
		return true
	case auth.RoleStudent:
		return UserIDFromContext(c) == strconv.FormatInt(studentID, 10)
	default:
		return false
	}
}
