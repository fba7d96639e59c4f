package rest

import "github.com/gin-gonic/gin"

type Middleware struct {
	Handler gin.HandlerFunc
	Group   string
}

// NewMiddleware attaches a handler to a router group. The "*" group applies
// to the whole engine.
func NewMiddleware(group string, handler gin.HandlerFunc) Middleware {
	return Middleware{
		Group:   group,
		Handler: handler,
	}
}
