package meditation

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type MeditationHandler struct {
	Service             *SessionService
	SessionRepository   SessionRepository
	ChallengeRepository ChallengeRepository
}

func NewHandler(service *SessionService, sr SessionRepository, cr ChallengeRepository) *MeditationHandler {
	return &MeditationHandler{Service: service, SessionRepository: sr, ChallengeRepository: cr}
}

func (h *MeditationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/meditation/start", h.StartSession)
	router.POST("/api/meditation/:id/complete", h.CompleteSession)
	router.GET("/api/meditation/sessions", h.GetSessions)
	router.GET("/api/meditation/stats", h.GetStats)
	router.GET("/api/meditation/achievements", h.GetAchievements)
	router.GET("/api/challenges", h.GetChallenges)
	router.POST("/api/challenges", h.CreateChallenge)
	router.GET("/api/challenges/:id", h.GetChallenge)
	router.POST("/api/challenges/:id/join", h.JoinChallenge)
	router.POST("/api/challenges/:id/leave", h.LeaveChallenge)
	router.GET("/api/challenges/:id/leaderboard", h.GetLeaderboard)
}

func (h *MeditationHandler) StartSession(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.StartSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Duration <= 0 || req.Duration > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be between 1 and 180 minutes"})
		return
	}

	session, err := h.Service.StartSession(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *MeditationHandler) CompleteSession(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var req models.CompleteSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	session, err := h.Service.CompleteSession(userID, sessionID, req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "not in progress") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *MeditationHandler) GetSessions(c *gin.Context) {
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

	sessions, err := h.SessionRepository.GetSessions(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sessions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *MeditationHandler) GetStats(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.Service.Stats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch meditation stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *MeditationHandler) GetAchievements(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	achievements, err := h.SessionRepository.GetAchievements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch achievements", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

func (h *MeditationHandler) GetChallenges(c *gin.Context) {
	challenges, err := h.ChallengeRepository.GetChallenges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch challenges", "details": err.Error()})
		return
	}

	now := time.Now()
	for i := range challenges {
		challenges[i].Status = challenges[i].ChallengeStatus(now)
	}

	c.JSON(http.StatusOK, challenges)
}

func (h *MeditationHandler) CreateChallenge(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Name                 string  `json:"name" binding:"required"`
		Description          *string `json:"description"`
		StartDate            string  `json:"start_date" binding:"required"`
		EndDate              string  `json:"end_date" binding:"required"`
		DurationRequirement  *int    `json:"duration_requirement"`
		FrequencyRequirement *int    `json:"frequency_requirement"`
		IsPublic             *bool   `json:"is_public"`
		MaxParticipants      *int    `json:"max_participants"`
		ChallengeType        string  `json:"challenge_type"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	challengeType := req.ChallengeType
	if challengeType == "" {
		challengeType = "duration"
	}

	challenge := &models.MeditationChallenge{
		Name:                 req.Name,
		Description:          req.Description,
		StartDate:            startDate,
		EndDate:              endDate,
		DurationRequirement:  req.DurationRequirement,
		FrequencyRequirement: req.FrequencyRequirement,
		CreatedBy:            &userID,
		IsPublic:             isPublic,
		MaxParticipants:      req.MaxParticipants,
		ChallengeType:        challengeType,
	}
	if err := h.ChallengeRepository.PersistChallenge(challenge); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create challenge", "details": err.Error()})
		return
	}

	challenge.Status = challenge.ChallengeStatus(time.Now())
	c.JSON(http.StatusCreated, challenge)
}

func (h *MeditationHandler) GetChallenge(c *gin.Context) {
	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	challenge, err := h.ChallengeRepository.GetChallenge(challengeID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch challenge", "details": err.Error()})
		return
	}

	challenge.Status = challenge.ChallengeStatus(time.Now())
	c.JSON(http.StatusOK, challenge)
}

func (h *MeditationHandler) JoinChallenge(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	challenge, err := h.ChallengeRepository.GetChallenge(challengeID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch challenge", "details": err.Error()})
		return
	}

	alreadyJoined, err := h.ChallengeRepository.IsParticipant(userID, challengeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check membership", "details": err.Error()})
		return
	}

	if !challenge.CanJoin(userID, alreadyJoined, time.Now()) {
		c.JSON(http.StatusConflict, gin.H{"error": "Challenge cannot be joined"})
		return
	}

	if err := h.ChallengeRepository.JoinChallenge(userID, challengeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not join challenge", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined challenge"})
}

func (h *MeditationHandler) LeaveChallenge(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	if err := h.ChallengeRepository.LeaveChallenge(userID, challengeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a participant of this challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left challenge"})
}

func (h *MeditationHandler) GetLeaderboard(c *gin.Context) {
	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	leaderboard, err := h.ChallengeRepository.GetLeaderboard(challengeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leaderboard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}
