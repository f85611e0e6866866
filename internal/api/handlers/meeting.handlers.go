package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"togather/internal/metrics"
	"togather/internal/model"
	"togather/internal/service/meeting"
	"togather/internal/util"

	"github.com/gin-gonic/gin"
)

// SetupMeetingHandlers registers the meeting point computation endpoint
func SetupMeetingHandlers(router *gin.RouterGroup, service *meeting.Service, collector *metrics.Collector) {
	h := &meetingHandler{service: service, metrics: collector}
	router.POST("/compute-location", h.ComputeLocation)
}

type meetingHandler struct {
	service *meeting.Service
	metrics *metrics.Collector
}

// ComputeLocation handles POST /compute-location. Requests with fewer than
// two non-empty addresses are rejected before any provider call is made.
func (h *meetingHandler) ComputeLocation(c *gin.Context) {
	start := time.Now()
	reqID := util.RequestID()

	var req model.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	// Keep only entries with a usable address, preserving order.
	locations := make([]model.ParticipantInput, 0, len(req.Locations))
	for _, loc := range req.Locations {
		loc.Address = strings.TrimSpace(loc.Address)
		if loc.Address != "" {
			locations = append(locations, loc)
		}
	}
	if len(locations) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least two locations are required."})
		return
	}

	log.Printf("[%s] compute-location: %d locations, venueType=%q", reqID, len(locations), req.VenueType)

	result, err := h.service.ComputeMeetingPoint(c.Request.Context(), locations, req.VenueType)
	h.metrics.ObserveCompute(time.Since(start))
	if err != nil {
		log.Printf("[%s] compute-location failed: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": computeErrorMessage(err)})
		return
	}

	log.Printf("[%s] compute-location: best %q in %v", reqID, result.Name, time.Since(start))
	c.JSON(http.StatusOK, model.ComputeResponse{BestLocation: *result})
}

func computeErrorMessage(err error) string {
	switch {
	case errors.Is(err, meeting.ErrInsufficientLocations):
		return "Unable to compute epicenter from the given addresses."
	case errors.Is(err, meeting.ErrNoCandidateFound):
		return "Unable to find suitable meeting points."
	default:
		return "An error occurred while computing the meeting point."
	}
}
