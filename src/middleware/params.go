package middleware

import (
	"net/http"
	"net/mail"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ValidateNumericParam rejects the request with a structured 400 before the
// handler runs when the named path parameter is not a number.
func ValidateNumericParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := strconv.ParseUint(c.Param(name), 10, 64); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "rest_invalid_param",
				"message": "The filter argument must be a number.",
			})
			return
		}
		c.Next()
	}
}

// ValidateEmailParam rejects the request with a structured 400 before the
// handler runs when the named path parameter is not a syntactically valid
// email address.
func ValidateEmailParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Param(name)
		if _, err := mail.ParseAddress(value); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "rest_invalid_param",
				"message": "The filter argument must be an email.",
			})
			return
		}
		c.Next()
	}
}
