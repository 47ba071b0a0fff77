package i

import "github.com/gin-gonic/gin"

// Controller registers a group of maze API routes. Protected routes are
// mounted behind the bearer token middleware.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
