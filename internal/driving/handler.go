package driving

import (
	"context"
	"log"
	"net/http"
	"time"

	"aibuddy/internal/integrations/places"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type proximityClient interface {
	Lookup(ctx context.Context, lat, lng float64, radius int) (*places.Match, error)
	Configured() bool
}

type DrivingHandler struct {
	Registry   *Registry
	Places     proximityClient
	Dispatcher *AlertDispatcher
}

func NewHandler(registry *Registry, placesClient proximityClient, dispatcher *AlertDispatcher) *DrivingHandler {
	return &DrivingHandler{Registry: registry, Places: placesClient, Dispatcher: dispatcher}
}

func (h *DrivingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/location-status", h.UpdateLocation)
	router.POST("/api/location-tracking", h.ToggleTracking)
}

type locationStatusRequest struct {
	// Pointers so a 0.0 coordinate still binds.
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	Accuracy       float64  `json:"accuracy"`
	Speed          float64  `json:"speed"`
	IsParked       bool     `json:"is_parked"`
	AudioCompleted *bool    `json:"audio_completed"`
	DeviceID       string   `json:"device_id"`
	Timestamp      *int64   `json:"timestamp"`
}

func (h *DrivingHandler) UpdateLocation(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req locationStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	sample := Sample{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		Accuracy:       req.Accuracy,
		Speed:          req.Speed,
		IsParked:       req.IsParked,
		AudioCompleted: true,
		Timestamp:      time.Now().UTC(),
	}
	if req.AudioCompleted != nil {
		sample.AudioCompleted = *req.AudioCompleted
	}
	if req.Timestamp != nil && *req.Timestamp > 0 {
		sample.Timestamp = time.Unix(*req.Timestamp, 0).UTC()
	}

	tracker := h.Registry.Get(userID, req.DeviceID)

	tracker.mu.Lock()
	outcome := tracker.Advance(sample)
	tracker.mu.Unlock()

	if outcome.Discarded {
		c.JSON(http.StatusOK, gin.H{"status": "scanning", "message": outcome.DiscardReason})
		return
	}
	if !outcome.NeedsProximity {
		c.JSON(http.StatusOK, gin.H{"status": "scanning"})
		return
	}

	if !h.Places.Configured() {
		c.JSON(http.StatusOK, gin.H{"status": "scanning"})
		return
	}

	// Lookup failures are logged and dropped; the next sample retries.
	found, err := h.Places.Lookup(c.Request.Context(), *req.Latitude, *req.Longitude, 0)
	if err != nil {
		log.Printf("proximity lookup failed for user %d: %v", userID, err)
		c.JSON(http.StatusOK, gin.H{"status": "scanning"})
		return
	}

	var match *Match
	if found != nil {
		match = &Match{Name: found.Name, Distance: found.Distance}
	}

	tracker.mu.Lock()
	fired := tracker.Resolve(sample, match)
	tracker.mu.Unlock()

	if !fired {
		c.JSON(http.StatusOK, gin.H{"status": "scanning"})
		return
	}

	if err := h.Dispatcher.PublishAlert(c.Request.Context(), userID, req.DeviceID, sample, *match); err != nil {
		log.Printf("failed to publish driving alert: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "active",
		"restaurant_name": match.Name,
		"distance":        match.Distance,
		"suggestions":     mindfulEatingSuggestions,
		"audio_message":   formatAudioMessage(*match),
	})
}

func (h *DrivingHandler) ToggleTracking(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Enabled  bool   `json:"enabled"`
		DeviceID string `json:"device_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	key := trackerKey(userID, req.DeviceID)
	if !req.Enabled {
		key = h.Registry.Drop(userID, req.DeviceID)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"tracking_enabled": req.Enabled,
		"tracker_key":      key,
	})
}
