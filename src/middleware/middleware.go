package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edmundcwm/nerbcrmwp/src/auth"
)

func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Identify resolves the bearer token into an Identity and stores it on the
// context. It never aborts: public routes share the group, so missing or
// unknown tokens simply leave the request anonymous.
func Identify(resolver auth.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token != "" {
			if identity, err := resolver.Resolve(token); err == nil {
				auth.WithIdentity(c, identity)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireAuth aborts with 401 when no identity was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.FromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "rest_not_logged_in"})
			return
		}
		c.Next()
	}
}

// RequirePermission runs an endpoint's permission predicate. A false result
// aborts with an opaque 403; predicates never see anonymous requests.
func RequirePermission(predicate func(auth.Identity, *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "rest_not_logged_in"})
			return
		}
		if !predicate(identity, c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "rest_forbidden"})
			return
		}
		c.Next()
	}
}
