package tracker

import (
	"net/http"
	"strconv"
	"time"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type TrackerHandler struct {
	Repository TrackerRepository
}

func NewHandler(r TrackerRepository) *TrackerHandler {
	return &TrackerHandler{Repository: r}
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/log-mood", h.LogMood)
	router.POST("/api/log-water", h.LogWater)
	router.POST("/api/log-weight", h.LogWeight)
	router.POST("/api/log-food", h.LogFood)
	router.GET("/api/daily-summary", h.GetDailySummary)
	router.GET("/api/weight-history", h.GetWeightHistory)
	router.GET("/api/food-history", h.GetFoodHistory)
	router.GET("/api/get-wellness-quote", h.GetWellnessQuote)
}

func (h *TrackerHandler) LogMood(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Mood  string  `json:"mood" binding:"required"`
		Notes *string `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	entry := &models.MoodLog{UserID: userID, Mood: req.Mood, Notes: req.Notes}
	if err := h.Repository.PersistMood(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save mood", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) LogWater(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Amount <= 0 || req.Amount > 128 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Water amount must be between 0 and 128 oz"})
		return
	}

	entry := &models.WaterLog{UserID: userID, Amount: req.Amount}
	if err := h.Repository.PersistWater(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save water log", "details": err.Error()})
		return
	}

	dayStart, dayEnd := boundsNow()
	total, err := h.Repository.GetWaterTotal(userID, dayStart, dayEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute water total", "details": err.Error()})
		return
	}

	goal, err := h.Repository.GetWaterGoal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load water goal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"log":          entry,
		"total_water":  total,
		"water_goal":   goal,
		"goal_reached": total >= goal,
	})
}

func (h *TrackerHandler) LogWeight(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Weight float64 `json:"weight" binding:"required"`
		Notes  *string `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Weight <= 0 || req.Weight > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight value"})
		return
	}

	entry := &models.WeightLog{UserID: userID, Weight: req.Weight, Notes: req.Notes}
	if err := h.Repository.PersistWeight(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save weight log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) LogFood(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var entry models.FoodLog
	if err := c.BindJSON(&entry); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if entry.FoodName == "" || entry.ServingSize <= 0 || entry.ServingUnit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name, serving_size and serving_unit are required"})
		return
	}

	entry.UserID = userID
	if err := h.Repository.PersistFood(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save food log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) GetDailySummary(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	from, to := TrackingBounds(now)

	waterTotal, err := h.Repository.GetWaterTotal(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute water total", "details": err.Error()})
		return
	}

	waterGoal, err := h.Repository.GetWaterGoal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load water goal", "details": err.Error()})
		return
	}

	foodLogs, err := h.Repository.GetFoodLogs(userID, from, to, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load food logs", "details": err.Error()})
		return
	}

	weights, err := h.Repository.GetWeightHistory(userID, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load weight", "details": err.Error()})
		return
	}

	latestMood, err := h.Repository.GetLatestMood(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load mood", "details": err.Error()})
		return
	}

	summary := models.DailySummary{
		Date:        TrackingDate(now).Format("2006-01-02"),
		WaterTotal:  waterTotal,
		WaterGoal:   waterGoal,
		MealsLogged: len(foodLogs),
	}
	if waterGoal > 0 {
		summary.WaterPercent = waterTotal / waterGoal * 100
	}
	for _, l := range foodLogs {
		if l.Calories != nil {
			summary.Calories += *l.Calories
		}
		if l.Protein != nil {
			summary.Protein += *l.Protein
		}
		if l.Carbs != nil {
			summary.Carbs += *l.Carbs
		}
		if l.Fat != nil {
			summary.Fat += *l.Fat
		}
	}
	if len(weights) > 0 {
		summary.LatestWeight = &weights[0].Weight
	}
	if latestMood != nil {
		summary.LatestMood = &latestMood.Mood
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"summary":   summary,
		"food_logs": foodLogs,
		"tracking_period": gin.H{
			"start": from.Format(time.RFC3339),
			"end":   to.Format(time.RFC3339),
		},
	})
}

func (h *TrackerHandler) GetWeightHistory(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit <= 0 {
		limit = 30
	}

	history, err := h.Repository.GetWeightHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load weight history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *TrackerHandler) GetFoodHistory(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	mealType := c.DefaultQuery("meal_type", "")

	_, to := TrackingBounds(time.Now())
	from := to.AddDate(0, 0, -days)

	logs, err := h.Repository.GetFoodLogs(userID, from, to, mealType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load food history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *TrackerHandler) GetWellnessQuote(c *gin.Context) {
	category := c.DefaultQuery("category", "")

	quote, err := h.Repository.GetRandomQuote(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load quote", "details": err.Error()})
		return
	}

	if quote == nil {
		// Fallback when the category has no quotes yet
		c.JSON(http.StatusOK, gin.H{
			"quote_text": "Every step towards healthy eating is a step towards your goals.",
			"author":     "Wellness Team",
			"category":   "motivation",
		})
		return
	}

	c.JSON(http.StatusOK, quote)
}

func boundsNow() (time.Time, time.Time) {
	return TrackingBounds(time.Now())
}
