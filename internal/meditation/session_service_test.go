package meditation

import (
	"errors"
	"testing"
	"time"

	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) InsertSession(session *models.MeditationSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(userID, sessionID int) (*models.MeditationSession, error) {
	args := m.Called(userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeditationSession), args.Error(1)
}

func (m *MockSessionRepository) GetSessions(userID int, limit int) ([]models.MeditationSession, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MeditationSession), args.Error(1)
}

func (m *MockSessionRepository) CompleteSession(tx *goqu.TxDatabase, session *models.MeditationSession) error {
	args := m.Called(tx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetStreakState(userID int) (*StreakState, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StreakState), args.Error(1)
}

func (m *MockSessionRepository) UpdateStreakState(tx *goqu.TxDatabase, userID int, state StreakState) error {
	args := m.Called(tx, userID, state)
	return args.Error(0)
}

func (m *MockSessionRepository) InsertAchievement(tx *goqu.TxDatabase, achievement models.MeditationAchievement) error {
	args := m.Called(tx, achievement)
	return args.Error(0)
}

func (m *MockSessionRepository) GetAchievements(userID int) ([]models.MeditationAchievement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MeditationAchievement), args.Error(1)
}

func (m *MockSessionRepository) IncrementChallengeProgress(tx *goqu.TxDatabase, userID, challengeID, minutes int) error {
	args := m.Called(tx, userID, challengeID, minutes)
	return args.Error(0)
}

func (m *MockSessionRepository) AverageStressReduction(userID int, lastN int) (*float64, error) {
	args := m.Called(userID, lastN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func TestStartSession(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	service := &SessionService{sr: mockRepo}

	req := models.StartSessionRequest{Duration: 10, MeditationType: "breathing"}

	mockRepo.On("InsertSession", mock.AnythingOfType("*models.MeditationSession")).Return(nil).Once()

	session, err := service.StartSession(7, req)

	assert.NoError(t, err)
	assert.Equal(t, 7, session.UserID)
	assert.Equal(t, models.SessionInProgress, session.Status)
	assert.Equal(t, "breathing", session.MeditationType)

	mockRepo.On("InsertSession", mock.AnythingOfType("*models.MeditationSession")).
		Return(errors.New("insert failed")).Once()

	_, err = service.StartSession(7, req)
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}

func TestCompleteSessionRejectsClosedSession(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	service := &SessionService{sr: mockRepo}

	end := time.Now()
	closed := &models.MeditationSession{ID: 5, UserID: 7, Status: models.SessionCompleted, EndTime: &end}
	mockRepo.On("GetSession", 7, 5).Return(closed, nil).Once()

	_, err := service.CompleteSession(7, 5, models.CompleteSessionRequest{ActualDuration: 10})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in progress")
	mockRepo.AssertExpectations(t)
}

func TestCompleteSessionMissingSession(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	service := &SessionService{sr: mockRepo}

	mockRepo.On("GetSession", 7, 99).Return(nil, errors.New("session with ID 99 not found")).Once()

	_, err := service.CompleteSession(7, 99, models.CompleteSessionRequest{ActualDuration: 10})

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestStats(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	service := &SessionService{sr: mockRepo}

	lastDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	state := &StreakState{
		CurrentStreak:      4,
		LongestStreak:      12,
		LastMeditationDate: &lastDate,
		TotalSessions:      40,
		TotalMinutes:       380,
	}
	avg := 1.8
	mockRepo.On("GetStreakState", 7).Return(state, nil).Once()
	mockRepo.On("AverageStressReduction", 7, 30).Return(&avg, nil).Once()

	stats, err := service.Stats(7)

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.CurrentStreak)
	assert.Equal(t, 12, stats.LongestStreak)
	assert.Equal(t, 40, stats.TotalSessions)
	assert.Equal(t, 380, stats.TotalMinutes)
	assert.NotNil(t, stats.AverageStressReduction)
	assert.InDelta(t, 1.8, *stats.AverageStressReduction, 0.001)

	mockRepo.AssertExpectations(t)
}
