package apiusage

import (
	"net/http"
	"strconv"

	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	Repository UsageRepository
}

func NewHandler(r UsageRepository) *UsageHandler {
	return &UsageHandler{Repository: r}
}

func (h *UsageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/api-usage", security.Authorize("admin"), h.GetUsageStats)
	router.GET("/admin/api-usage/recent", security.Authorize("admin"), h.GetRecentLogs)
}

func (h *UsageHandler) GetUsageStats(c *gin.Context) {
	stats, err := h.Repository.GetUsageByAPI()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list API usage stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *UsageHandler) GetRecentLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	logs, err := h.Repository.GetRecentLogs(limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list API usage logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
