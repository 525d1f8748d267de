package routes

import (
	"github.com/cardparser/vcard/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes wires the /v1 parsing endpoints.
func SetupAPIRoutes(router *gin.Engine, parseController *controllers.ParseController) {
	v1 := router.Group("/v1")
	{
		v1.POST("/parse", parseController.Parse)
		v1.POST("/parse/batch", parseController.ParseBatch)
		v1.POST("/debug/layout", parseController.DebugLayout)
		v1.GET("/health", parseController.HealthCheck)
	}
}
