package fasting

import (
	"errors"
	"testing"
	"time"

	"aibuddy/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFastingRepository struct {
	mock.Mock
}

func (m *MockFastingRepository) GetPrograms(programType string) ([]models.FastingProgram, error) {
	args := m.Called(programType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FastingProgram), args.Error(1)
}

func (m *MockFastingRepository) GetProgram(programID int) (*models.FastingProgram, error) {
	args := m.Called(programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FastingProgram), args.Error(1)
}

func (m *MockFastingRepository) GetActiveSession(userID int) (*models.FastingSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FastingSession), args.Error(1)
}

func (m *MockFastingRepository) GetSession(userID, sessionID int) (*models.FastingSession, error) {
	args := m.Called(userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FastingSession), args.Error(1)
}

func (m *MockFastingRepository) GetSessionHistory(userID int) ([]models.FastingSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FastingSession), args.Error(1)
}

func (m *MockFastingRepository) InsertSession(session *models.FastingSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockFastingRepository) CloseSession(userID, sessionID int, status string, endDate time.Time) error {
	args := m.Called(userID, sessionID, status, endDate)
	return args.Error(0)
}

func (m *MockFastingRepository) InsertCheckIn(checkIn *models.FastingCheckIn) error {
	args := m.Called(checkIn)
	return args.Error(0)
}

func (m *MockFastingRepository) GetCheckIns(sessionID int) ([]models.FastingCheckIn, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FastingCheckIn), args.Error(1)
}

func (m *MockFastingRepository) HasCheckIn(sessionID, dayNumber int) (bool, error) {
	args := m.Called(sessionID, dayNumber)
	return args.Bool(0), args.Error(1)
}

func activeSession(startDaysAgo int, programDays int) *models.FastingSession {
	return &models.FastingSession{
		ID:          11,
		UserID:      7,
		ProgramID:   2,
		ProgramName: "3-Day Reset",
		ProgramDays: programDays,
		ProgramType: models.ProgramExtended,
		StartDate:   time.Now().UTC().AddDate(0, 0, -startDaysAgo),
		Status:      models.FastingActive,
	}
}

func TestStartProgram(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	program := &models.FastingProgram{ID: 2, Name: "3-Day Reset", DurationDays: 3, Type: models.ProgramExtended}

	mockRepo.On("GetActiveSession", 7).Return(nil, nil).Once()
	mockRepo.On("GetProgram", 2).Return(program, nil).Once()
	mockRepo.On("InsertSession", mock.AnythingOfType("*models.FastingSession")).Return(nil).Once()

	session, err := service.StartProgram(7, 2, nil)

	assert.NoError(t, err)
	assert.Equal(t, models.FastingActive, session.Status)
	assert.Equal(t, 3, session.ProgramDays)
	assert.Equal(t, "3-Day Reset", session.ProgramName)

	mockRepo.AssertExpectations(t)
}

func TestStartProgramRejectsSecondActiveSession(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(activeSession(1, 3), nil).Once()

	_, err := service.StartProgram(7, 2, nil)

	assert.ErrorIs(t, err, ErrSessionAlreadyActive)
	mockRepo.AssertExpectations(t)
}

func TestCheckIn(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	session := activeSession(1, 3)

	mockRepo.On("GetActiveSession", 7).Return(session, nil).Once()
	mockRepo.On("HasCheckIn", 11, 2).Return(false, nil).Once()
	mockRepo.On("InsertCheckIn", mock.AnythingOfType("*models.FastingCheckIn")).Return(nil).Once()

	checkIn, got, err := service.CheckIn(7, models.FastingCheckInRequest{DayNumber: 2, Completed: true})

	assert.NoError(t, err)
	assert.Equal(t, 2, checkIn.DayNumber)
	assert.Equal(t, models.FastingActive, got.Status)

	mockRepo.AssertExpectations(t)
}

func TestCheckInFinalDayCompletesSession(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	session := activeSession(2, 3)

	mockRepo.On("GetActiveSession", 7).Return(session, nil).Once()
	mockRepo.On("HasCheckIn", 11, 3).Return(false, nil).Once()
	mockRepo.On("InsertCheckIn", mock.AnythingOfType("*models.FastingCheckIn")).Return(nil).Once()
	mockRepo.On("CloseSession", 7, 11, models.FastingCompleted, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, got, err := service.CheckIn(7, models.FastingCheckInRequest{DayNumber: 3, Completed: true})

	assert.NoError(t, err)
	assert.Equal(t, models.FastingCompleted, got.Status)
	assert.NotNil(t, got.EndDate)

	mockRepo.AssertExpectations(t)
}

func TestCheckInRejectsDuplicateDay(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(activeSession(1, 3), nil).Once()
	mockRepo.On("HasCheckIn", 11, 1).Return(true, nil).Once()

	_, _, err := service.CheckIn(7, models.FastingCheckInRequest{DayNumber: 1, Completed: true})

	assert.ErrorIs(t, err, ErrDuplicateCheckIn)
	mockRepo.AssertExpectations(t)
}

func TestCheckInRejectsFutureDay(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(activeSession(0, 3), nil).Once()

	_, _, err := service.CheckIn(7, models.FastingCheckInRequest{DayNumber: 3, Completed: true})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside the current session window")
	mockRepo.AssertExpectations(t)
}

func TestEndSessionEarlyIsAbandoned(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(activeSession(1, 5), nil).Once()
	mockRepo.On("CloseSession", 7, 11, models.FastingAbandoned, mock.AnythingOfType("time.Time")).Return(nil).Once()

	session, err := service.EndSession(7)

	assert.NoError(t, err)
	assert.Equal(t, models.FastingAbandoned, session.Status)
	mockRepo.AssertExpectations(t)
}

func TestEndSessionWithNoActiveSession(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(nil, nil).Once()

	_, err := service.EndSession(7)

	assert.ErrorIs(t, err, ErrNoActiveSession)
	mockRepo.AssertExpectations(t)
}

func TestCheckInPropagatesRepositoryError(t *testing.T) {
	mockRepo := new(MockFastingRepository)
	service := NewFastingService(mockRepo)

	mockRepo.On("GetActiveSession", 7).Return(nil, errors.New("db down")).Once()

	_, _, err := service.CheckIn(7, models.FastingCheckInRequest{DayNumber: 1})

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
