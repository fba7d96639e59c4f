package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate godoc
// @Summary      Echo the authenticated identity
// @Description  Returns the id, email and roles behind the presented token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/validate [get]
func Validate(c *gin.Context) {
	identity, ok := FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "rest_not_logged_in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    identity.ID,
		"user_email": identity.Email,
		"user_role":  identity.Roles,
	})
}
