package auth

import "github.com/gin-gonic/gin"

const identityContextKey = "portal_identity"

// WithIdentity stores the resolved identity on the request context.
func WithIdentity(c *gin.Context, identity Identity) {
	c.Set(identityContextKey, identity)
}

// FromContext returns the identity attached by the auth middleware, if any.
func FromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
