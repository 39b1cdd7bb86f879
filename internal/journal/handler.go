package journal

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"aibuddy/pkg/models"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	Repository JournalRepository
}

func NewHandler(r JournalRepository) *JournalHandler {
	return &JournalHandler{Repository: r}
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/journal", h.ListEntries)
	router.POST("/journal", h.CreateEntry)
	router.GET("/journal/:id", h.GetEntry)
	router.PUT("/journal/:id", h.UpdateEntry)
	router.DELETE("/journal/:id", h.RemoveEntry)
	router.GET("/journal/:id/export", h.ExportEntry)
}

func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	search := models.JournalSearch{
		Query: c.DefaultQuery("search", ""),
		Mood:  c.DefaultQuery("mood", ""),
	}

	entries, err := h.Repository.GetEntries(userID, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list journal entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.JournalEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	entry := &models.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	}

	if err := h.Repository.PersistEntry(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save journal entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, entryID, ok := h.entryIDs(c)
	if !ok {
		return
	}

	entry, err := h.Repository.GetEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, entryID, ok := h.entryIDs(c)
	if !ok {
		return
	}

	var req models.JournalEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	entry := &models.JournalEntry{
		ID:      entryID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	}

	if err := h.Repository.UpdateEntry(entry); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update journal entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) RemoveEntry(c *gin.Context) {
	userID, entryID, ok := h.entryIDs(c)
	if !ok {
		return
	}

	if err := h.Repository.RemoveEntry(userID, entryID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete journal entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}

// ExportEntry downloads the entry as a plain text file.
func (h *JournalHandler) ExportEntry(c *gin.Context) {
	userID, entryID, ok := h.entryIDs(c)
	if !ok {
		return
	}

	entry, err := h.Repository.GetEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found", "details": err.Error()})
		return
	}

	mood := "Not specified"
	if entry.Mood != nil {
		mood = *entry.Mood
	}

	content := fmt.Sprintf("Title: %s\nDate: %s\nMood: %s\n\n%s\n",
		entry.Title,
		entry.Timestamp.Format("2006-01-02 03:04 PM"),
		mood,
		entry.Content,
	)

	filename := fmt.Sprintf("journal_%s_%s.txt", safeFilename(entry.Title), entry.Timestamp.Format("20060102"))

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

func (h *JournalHandler) entryIDs(c *gin.Context) (int, int, bool) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return 0, 0, false
	}

	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID", "details": err.Error()})
		return 0, 0, false
	}

	return userID, entryID, true
}

func safeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
