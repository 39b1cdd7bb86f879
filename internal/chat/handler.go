package chat

import (
	"net/http"
	"strconv"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service    *ChatService
	Repository ChatRepository
}

func NewHandler(service *ChatService, r ChatRepository) *ChatHandler {
	return &ChatHandler{Service: service, Repository: r}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/chat", h.SendMessage)
	router.GET("/api/chat/history", h.GetHistory)
	router.DELETE("/api/chat/history", h.ClearHistory)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if len(req.Message) > 4000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message too long"})
		return
	}

	message, err := h.Service.Reply(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process message", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
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

	history, err := h.Repository.GetHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch chat history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repository.ClearHistory(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear chat history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
