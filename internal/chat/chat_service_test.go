package chat

import (
	"context"
	"errors"
	"testing"

	"aibuddy/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) PersistMessage(message *models.ChatMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockChatRepository) GetHistory(userID int, limit int) ([]models.ChatMessage, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) ClearHistory(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

func TestReplyFallsBackWhenUnconfigured(t *testing.T) {
	mockRepo := new(MockChatRepository)
	service, err := NewChatService("", mockRepo, nil)
	assert.NoError(t, err)
	assert.False(t, service.Configured())

	mockRepo.On("GetHistory", 7, 10).Return([]models.ChatMessage{}, nil).Once()
	mockRepo.On("PersistMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil).Once()

	emotion := "anxious"
	message, err := service.Reply(context.Background(), 7, models.ChatRequest{Message: "rough day", Emotion: &emotion})

	assert.NoError(t, err)
	assert.Equal(t, fallbackReply, message.Response)
	assert.Equal(t, "rough day", message.Message)
	assert.Equal(t, &emotion, message.Emotion)

	mockRepo.AssertExpectations(t)
}

func TestReplyPropagatesHistoryError(t *testing.T) {
	mockRepo := new(MockChatRepository)
	service, err := NewChatService("", mockRepo, nil)
	assert.NoError(t, err)

	mockRepo.On("GetHistory", 7, 10).Return(nil, errors.New("db down")).Once()

	_, err = service.Reply(context.Background(), 7, models.ChatRequest{Message: "hi"})

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
