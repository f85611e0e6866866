package routes

import (
	"togather/internal/metrics"

	"github.com/gin-gonic/gin"
)

// SetupMainHandlers registers the health and metrics endpoints
func SetupMainHandlers(router *gin.RouterGroup, collector *metrics.Collector) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	router.GET("/metrics", gin.WrapH(collector.Handler()))
}
