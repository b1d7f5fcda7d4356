package router

import "github.com/gin-gonic/gin"

// Module is a feature that mounts its routes on the group it is given:
// /api for modules added with Registry.Add, the engine root for AddRoot.
type Module interface {
	Register(rg *gin.RouterGroup)
}
