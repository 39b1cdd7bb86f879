package models

import "time"

type ChatMessage struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	Emotion   *string   `json:"emotion" db:"emotion"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type ChatRequest struct {
	Message string  `json:"message" binding:"required"`
	Emotion *string `json:"emotion"`
}
