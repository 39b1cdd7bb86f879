package places

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlacesHandler struct {
	Client *Client
}

func NewHandler(client *Client) *PlacesHandler {
	return &PlacesHandler{Client: client}
}

func (h *PlacesHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/nearby-places", h.GetNearbyPlaces)
}

func (h *PlacesHandler) GetNearbyPlaces(c *gin.Context) {
	var req struct {
		// Pointers so a 0.0 coordinate still binds.
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
		Radius    int      `json:"radius"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	if !h.Client.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Places API is not configured"})
		return
	}

	venues, err := h.Client.Search(c.Request.Context(), *req.Latitude, *req.Longitude, req.Radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not search nearby places", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "total_places": len(venues), "results": venues})
}
