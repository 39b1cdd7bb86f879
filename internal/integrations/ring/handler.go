package ring

import (
	"net/http"
	"strings"
	"time"

	"aibuddy/internal/users"
	"aibuddy/pkg/security"

	"github.com/gin-gonic/gin"
)

type RingHandler struct {
	Oura            *OuraClient
	Ultrahuman      *UltrahumanClient
	Users           users.UserRepository
	AuthorizedEmail string
}

func NewHandler(oura *OuraClient, ultrahuman *UltrahumanClient, userRepo users.UserRepository, authorizedEmail string) *RingHandler {
	return &RingHandler{Oura: oura, Ultrahuman: ultrahuman, Users: userRepo, AuthorizedEmail: authorizedEmail}
}

func (h *RingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/ring-data", h.GetRingData)
}

func (h *RingHandler) authorized(email string, flagged bool) bool {
	if !flagged {
		return false
	}
	if h.AuthorizedEmail == "" {
		return true
	}
	return strings.EqualFold(email, h.AuthorizedEmail)
}

// GetRingData returns the combined smart-ring snapshot. Users without ring
// access get an empty payload rather than an error, so the dashboard can
// simply hide the panel.
func (h *RingHandler) GetRingData(c *gin.Context) {
	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch user", "details": err.Error()})
		return
	}

	if !h.authorized(user.Email, user.RingDataAuthorized) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "show_ring_data": false})
		return
	}

	response := gin.H{
		"status":         "ok",
		"show_ring_data": true,
		"last_updated":   time.Now().UTC().Format(time.RFC3339),
	}

	if h.Oura.Configured() {
		if metrics, err := h.Oura.Fetch(c.Request.Context(), userID); err == nil {
			response["oura"] = metrics
		} else {
			response["oura_error"] = err.Error()
		}
	}

	if h.Ultrahuman.Configured() {
		if metrics, err := h.Ultrahuman.Fetch(c.Request.Context(), userID, user.Email); err == nil {
			response["ultrahuman"] = metrics
		} else {
			response["ultrahuman_error"] = err.Error()
		}
	}

	c.JSON(http.StatusOK, response)
}
