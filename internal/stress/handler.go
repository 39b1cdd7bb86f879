package stress

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type StressHandler struct {
	Repository StressRepository
}

func NewHandler(r StressRepository) *StressHandler {
	return &StressHandler{Repository: r}
}

func (h *StressHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/stress-level", h.LogStressLevel)
	router.GET("/api/stress-level", h.GetStressLevels)
	router.POST("/api/wellness-checkin", h.LogCheckIn)
	router.GET("/api/wellness-checkin", h.GetCheckIns)
}

func (h *StressHandler) LogStressLevel(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.StressLevelRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Level < 1 || req.Level > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stress level must be between 1 and 10"})
		return
	}

	symptoms, err := json.Marshal(req.Symptoms)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symptoms list"})
		return
	}

	level := &models.StressLevel{
		UserID:   userID,
		Level:    req.Level,
		Symptoms: symptoms,
		Notes:    req.Notes,
	}
	if err := h.Repository.PersistStressLevel(level); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save stress level", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, level)
}

func (h *StressHandler) GetStressLevels(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = parsed
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	levels, err := h.Repository.GetStressLevels(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stress levels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, levels)
}

func (h *StressHandler) LogCheckIn(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var checkIn models.WellnessCheckIn
	if err := c.BindJSON(&checkIn); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	for _, scale := range []*int{
		checkIn.EnergyLevel, checkIn.PhysicalComfort, checkIn.SleepQuality,
		checkIn.BreathingQuality, checkIn.PhysicalTension, checkIn.StressLevel,
		checkIn.FocusLevel,
	} {
		if scale != nil && (*scale < 1 || *scale > 10) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Scale values must be between 1 and 10"})
			return
		}
	}

	checkIn.UserID = userID
	if err := h.Repository.PersistCheckIn(&checkIn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save wellness check-in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}

func (h *StressHandler) GetCheckIns(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	limit := 30
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	checkIns, err := h.Repository.GetCheckIns(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch wellness check-ins", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, checkIns)
}
