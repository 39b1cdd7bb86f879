package telemetry

import (
	"net/http"
	"strconv"

	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type BiomarkerHandler struct {
	Repository BiomarkerRepository
}

func NewHandler(r BiomarkerRepository) *BiomarkerHandler {
	return &BiomarkerHandler{Repository: r}
}

func (h *BiomarkerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/biomarkers", h.GetSamples)
	router.GET("/api/biomarkers/insights", h.GetInsights)
}

func (h *BiomarkerHandler) GetSamples(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	samples, err := h.Repository.GetSamples(userID, c.Query("metric_type"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch biomarker samples", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (h *BiomarkerHandler) GetInsights(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	insights, err := h.Repository.GetInsights(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch insights", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, insights)
}
