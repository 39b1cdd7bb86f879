package coaching

import (
	"net/http"
	"time"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	chartWindowDays   = 30
	insightWindowDays = 7
)

type CoachingHandler struct {
	Repository CoachingRepository
}

func NewHandler(r CoachingRepository) *CoachingHandler {
	return &CoachingHandler{Repository: r}
}

func (h *CoachingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/mood-patterns", h.GetMoodPatterns)
	router.GET("/api/cbt/insights", h.GetCBTInsights)
	router.GET("/api/dbt/insights", h.GetDBTInsights)
	router.GET("/api/act/insights", h.GetACTInsights)
	router.GET("/api/ipt/insights", h.GetIPTInsights)
}

// GetMoodPatterns returns mood data for the last 30 days shaped for charting.
func (h *CoachingHandler) GetMoodPatterns(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -chartWindowDays)
	moods, err := h.Repository.GetRecentMoods(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch mood entries", "details": err.Error()})
		return
	}

	dates := make([]string, 0, len(moods))
	values := make([]int, 0, len(moods))
	labels := make([]string, 0, len(moods))
	for _, m := range moods {
		dates = append(dates, m.Timestamp.Format("2006-01-02"))
		values = append(values, moodValue(m.Mood))
		labels = append(labels, m.Mood)
	}

	c.JSON(http.StatusOK, gin.H{
		"dates":  dates,
		"values": values,
		"moods":  labels,
	})
}

func (h *CoachingHandler) GetCBTInsights(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	moods, foods, ok := h.recentEntries(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"insights": gin.H{
			"mood_patterns": AnalyzeMoodPatterns(moods),
			"food_insights": AnalyzeFoodPatterns(foods),
		},
	})
}

func (h *CoachingHandler) GetDBTInsights(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -insightWindowDays)
	moods, err := h.Repository.GetRecentMoods(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch mood entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"insights": BuildDBTInsights(moods),
	})
}

func (h *CoachingHandler) GetACTInsights(c *gin.Context) {
	if _, err := security.CurrentUserID(c); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"insights": BuildACTInsights(),
	})
}

func (h *CoachingHandler) GetIPTInsights(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	moods, foods, ok := h.recentEntries(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"insights": BuildIPTInsights(moods, foods),
	})
}

// recentEntries loads the 7-day mood and food history, writing the error
// response itself when a lookup fails.
func (h *CoachingHandler) recentEntries(c *gin.Context, userID int) ([]models.MoodLog, []models.FoodLog, bool) {
	since := time.Now().UTC().AddDate(0, 0, -insightWindowDays)

	moods, err := h.Repository.GetRecentMoods(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch mood entries", "details": err.Error()})
		return nil, nil, false
	}

	foods, err := h.Repository.GetRecentFoodLogs(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch food logs", "details": err.Error()})
		return nil, nil, false
	}

	return moods, foods, true
}
