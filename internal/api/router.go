package api

import (
	routes "togather/internal/api/handlers"
	"togather/internal/metrics"
	"togather/internal/service/meeting"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, service *meeting.Service, collector *metrics.Collector) {
	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), collector)

	// Setup meeting point handlers
	routes.SetupMeetingHandlers(r.Group(""), service, collector)
}
