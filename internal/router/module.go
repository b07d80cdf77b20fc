package router

import "github.com/gin-gonic/gin"

// Module is a group of related pages (auth, inventory) that registers its own
// routes on a RouterGroup
type Module interface {
	Register(rg *gin.RouterGroup)
}
