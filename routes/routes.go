// Package routes wires the HTTP surface: api.go holds the /v1/* group,
// routes.go exposes health routes and the top-level
// SetupAllRoutes entry point used by cmd/api/main.go.
package routes

import (
	"github.com/cardparser/vcard/app/controllers"
	"github.com/cardparser/vcard/helpers/utils"
	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes wires liveness/readiness probes.
func SetupHealthRoutes(router *gin.Engine, parseController *controllers.ParseController) {
	router.GET("/health", parseController.HealthCheck)
	router.GET("/ready", parseController.HealthCheck)
	router.GET("/live", parseController.HealthCheck)
}

// SetupAllRoutes wires middleware, health checks, and the /v1 API group,
// finishing with a JSON 404 fallback.
func SetupAllRoutes(router *gin.Engine, parseController *controllers.ParseController) {
	setupMiddleware(router)

	SetupHealthRoutes(router, parseController)
	SetupAPIRoutes(router, parseController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
}

// requestID stamps every response with an X-Request-ID correlation header,
// so a card that fails parsing can be traced back through the logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUID()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
