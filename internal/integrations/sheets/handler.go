package sheets

import (
	"net/http"

	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type SheetsHandler struct {
	Service *ExportService
}

func NewHandler(service *ExportService) *SheetsHandler {
	return &SheetsHandler{Service: service}
}

func (h *SheetsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/export/daily-summary", h.ExportDailySummary)
}

func (h *SheetsHandler) ExportDailySummary(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
		Days          int    `json:"days"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Days < 0 || req.Days > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
		return
	}

	exported, err := h.Service.ExportDailySummary(userID, req.SpreadsheetID, req.Days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not export daily summary", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Export complete", "rows": exported})
}
