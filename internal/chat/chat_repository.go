package chat

import (
	"fmt"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	custom_error "aibuddy/pkg/errors"
)

type ChatRepository interface {
	PersistMessage(message *models.ChatMessage) error
	GetHistory(userID int, limit int) ([]models.ChatMessage, error)
	ClearHistory(userID int) error
}

type chatRepositoryImpl struct {
	r *repository.Repository
}

func NewChatRepository(r *repository.Repository) ChatRepository {
	return &chatRepositoryImpl{r: r}
}

func (r *chatRepositoryImpl) PersistMessage(message *models.ChatMessage) error {
	insert := r.r.GoquDBWrapper.Insert("chat_history").
		Rows(goqu.Record{
			"user_id":  message.UserID,
			"message":  message.Message,
			"response": message.Response,
			"emotion":  message.Emotion,
		}).
		Returning("id", "timestamp").
		Executor()

	if _, err := insert.ScanStruct(message); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save chat message", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save chat message: %w", err)
	}

	return nil
}

func (r *chatRepositoryImpl) GetHistory(userID int, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.r.GoquDBWrapper.
		Select("id", "user_id", "message", "response", "emotion", "timestamp").
		From("chat_history").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.I("timestamp").Desc()).
		Limit(uint(limit)).
		ScanStructs(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	return messages, nil
}

func (r *chatRepositoryImpl) ClearHistory(userID int) error {
	_, err := r.r.GoquDBWrapper.Delete("chat_history").
		Where(goqu.C("user_id").Eq(userID)).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("unable to clear chat history: %w", err)
	}

	return nil
}
