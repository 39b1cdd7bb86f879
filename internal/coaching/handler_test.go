package coaching

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aibuddy/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCoachingRepository struct {
	mock.Mock
}

func (m *MockCoachingRepository) GetRecentMoods(userID int, since time.Time) ([]models.MoodLog, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MoodLog), args.Error(1)
}

func (m *MockCoachingRepository) GetRecentFoodLogs(userID int, since time.Time) ([]models.FoodLog, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func setupInsightRequest(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "7")
	c.Request = httptest.NewRequest("GET", path, nil)
	return c, w
}

func TestGetMoodPatternsChartShape(t *testing.T) {
	mockRepo := new(MockCoachingRepository)
	handler := NewHandler(mockRepo)

	ts := time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)
	mockRepo.On("GetRecentMoods", 7, mock.Anything).Return([]models.MoodLog{
		{Mood: "Happy", Timestamp: ts},
		{Mood: "Anxious", Timestamp: ts.Add(24 * time.Hour)},
	}, nil)

	c, w := setupInsightRequest(t, "/api/mood-patterns")
	handler.GetMoodPatterns(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dates":["2026-08-12","2026-08-13"]`)
	assert.Contains(t, w.Body.String(), `"values":[4,1]`)
	assert.Contains(t, w.Body.String(), `"moods":["Happy","Anxious"]`)
	mockRepo.AssertExpectations(t)
}

func TestGetCBTInsightsEnvelope(t *testing.T) {
	mockRepo := new(MockCoachingRepository)
	handler := NewHandler(mockRepo)

	mockRepo.On("GetRecentMoods", 7, mock.Anything).Return([]models.MoodLog{
		{Mood: "Sad", Timestamp: time.Now().UTC().Add(-48 * time.Hour)},
		{Mood: "Happy", Timestamp: time.Now().UTC()},
	}, nil)
	mockRepo.On("GetRecentFoodLogs", 7, mock.Anything).Return([]models.FoodLog{}, nil)

	c, w := setupInsightRequest(t, "/api/cbt/insights")
	handler.GetCBTInsights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	assert.Contains(t, w.Body.String(), `"mood_patterns"`)
	assert.Contains(t, w.Body.String(), `"food_insights"`)
	assert.Contains(t, w.Body.String(), "improving")
	mockRepo.AssertExpectations(t)
}

func TestGetDBTInsightsSections(t *testing.T) {
	mockRepo := new(MockCoachingRepository)
	handler := NewHandler(mockRepo)

	mockRepo.On("GetRecentMoods", 7, mock.Anything).Return([]models.MoodLog{}, nil)

	c, w := setupInsightRequest(t, "/api/dbt/insights")
	handler.GetDBTInsights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, section := range []string{`"mindfulness"`, `"emotion_regulation"`, `"distress_tolerance"`, `"interpersonal_effectiveness"`} {
		assert.Contains(t, w.Body.String(), section)
	}
}

func TestGetACTInsightsSections(t *testing.T) {
	handler := NewHandler(new(MockCoachingRepository))

	c, w := setupInsightRequest(t, "/api/act/insights")
	handler.GetACTInsights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, section := range []string{`"committed_action"`, `"present_moment"`, `"acceptance"`, `"defusion"`} {
		assert.Contains(t, w.Body.String(), section)
	}
}

func TestGetIPTInsightsUnauthorized(t *testing.T) {
	handler := NewHandler(new(MockCoachingRepository))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/ipt/insights", nil)

	handler.GetIPTInsights(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
