package fasting

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type FastingHandler struct {
	Service    *FastingService
	Repository FastingRepository
}

func NewHandler(service *FastingService, r FastingRepository) *FastingHandler {
	return &FastingHandler{Service: service, Repository: r}
}

func (h *FastingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/fasting/programs", h.GetPrograms)
	router.GET("/api/fasting/programs/:id", h.GetProgram)
	router.POST("/api/fasting/start", h.StartProgram)
	router.GET("/api/fasting/active", h.GetActiveSession)
	router.GET("/api/fasting/history", h.GetHistory)
	router.GET("/api/fasting/sessions/:id", h.GetSession)
	router.POST("/api/fasting/checkin", h.CheckIn)
	router.POST("/api/fasting/end", h.EndSession)
	router.POST("/api/fasting/reset", h.ResetSession)
}

func (h *FastingHandler) GetPrograms(c *gin.Context) {
	programType := c.Query("type")
	if programType != "" && programType != models.ProgramExtended && programType != models.ProgramIntermittent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be extended or intermittent"})
		return
	}

	programs, err := h.Repository.GetPrograms(programType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch programs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, programs)
}

func (h *FastingHandler) GetProgram(c *gin.Context) {
	programID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program ID"})
		return
	}

	program, err := h.Repository.GetProgram(programID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch program", "details": err.Error()})
		return
	}

	guidance, err := program.Guidance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode program guidance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program, "daily_guidance": guidance})
}

func (h *FastingHandler) StartProgram(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		ProgramID int     `json:"program_id" binding:"required"`
		Notes     *string `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	session, err := h.Service.StartProgram(userID, req.ProgramID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case strings.Contains(err.Error(), "not found"):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start program", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, h.sessionView(session))
}

func (h *FastingHandler) GetActiveSession(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Repository.GetActiveSession(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch active session", "details": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	checkIns, err := h.Repository.GetCheckIns(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch check-ins", "details": err.Error()})
		return
	}

	view := h.sessionView(session)
	view["active"] = true
	view["check_ins"] = checkIns
	c.JSON(http.StatusOK, view)
}

func (h *FastingHandler) GetSession(c *gin.Context) {
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

	session, err := h.Repository.GetSession(userID, sessionID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch session", "details": err.Error()})
		return
	}

	checkIns, err := h.Repository.GetCheckIns(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch check-ins", "details": err.Error()})
		return
	}

	view := h.sessionView(session)
	view["check_ins"] = checkIns
	c.JSON(http.StatusOK, view)
}

func (h *FastingHandler) GetHistory(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sessions, err := h.Repository.GetSessionHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch fasting history", "details": err.Error()})
		return
	}

	views := make([]gin.H, 0, len(sessions))
	for i := range sessions {
		views = append(views, h.sessionView(&sessions[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *FastingHandler) CheckIn(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.FastingCheckInRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	checkIn, session, err := h.Service.CheckIn(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveSession):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDuplicateCheckIn):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case strings.Contains(err.Error(), "outside the current session window"):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save check-in", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"check_in": checkIn, "session": h.sessionView(session)})
}

func (h *FastingHandler) EndSession(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.EndSession(userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not end session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.sessionView(session))
}

func (h *FastingHandler) ResetSession(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.ResetSession(userID); err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reset session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fasting session reset"})
}

func (h *FastingHandler) sessionView(session *models.FastingSession) gin.H {
	now := time.Now().UTC()
	return gin.H{
		"id":          session.ID,
		"program_id":  session.ProgramID,
		"program":     session.ProgramName,
		"type":        session.ProgramType,
		"start_date":  session.StartDate,
		"end_date":    session.EndDate,
		"status":      session.Status,
		"notes":       session.Notes,
		"current_day": session.CurrentDay(now),
		"display_day": session.DisplayDay(now),
		"total_days":  session.ProgramDays,
	}
}
