package fasting

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aibuddy/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupSessionRequest(t *testing.T, sessionID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "7")
	c.Request = httptest.NewRequest("GET", "/api/fasting/sessions/"+sessionID, nil)
	c.Params = []gin.Param{{Key: "id", Value: sessionID}}
	return c, w
}

func TestGetSessionWithCheckIns(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	handler := NewHandler(NewFastingService(mockRepo), mockRepo)

	session := activeSession(1, 3)
	mockRepo.On("GetSession", 7, 11).Return(session, nil)
	mockRepo.On("GetCheckIns", 11).Return([]models.FastingCheckIn{
		{ID: 1, SessionID: 11, DayNumber: 1, Completed: true},
	}, nil)

	c, w := setupSessionRequest(t, "11")
	handler.GetSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"check_ins"`)
	assert.Contains(t, w.Body.String(), `"3-Day Reset"`)
	mockRepo.AssertExpectations(t)
}

func TestGetSessionNotFound(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	handler := NewHandler(NewFastingService(mockRepo), mockRepo)

	mockRepo.On("GetSession", 7, 99).Return(nil, errors.New("fasting session with ID 99 not found"))

	c, w := setupSessionRequest(t, "99")
	handler.GetSession(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSessionInvalidID(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	handler := NewHandler(NewFastingService(mockRepo), mockRepo)

	c, w := setupSessionRequest(t, "abc")
	handler.GetSession(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
