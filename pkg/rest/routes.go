package rest

import "github.com/gin-gonic/gin"

type HttpMethod int

const (
	GET HttpMethod = iota
	POST
	PUT
	PATCH
)

type Route struct {
	Method   HttpMethod
	Path     string
	Handlers []gin.HandlerFunc
	Group    string
}

// NewRoute declares a route inside a router group. Handlers run in order, so
// param validators and permission checks go before the terminal handler.
func NewRoute(method HttpMethod, group, path string, handlers ...gin.HandlerFunc) Route {
	return Route{
		Method:   method,
		Path:     path,
		Group:    group,
		Handlers: handlers,
	}
}
