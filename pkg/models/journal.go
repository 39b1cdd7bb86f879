package models

import "time"

type JournalEntry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Mood      *string   `json:"mood" db:"mood"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type JournalEntryRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Mood    *string `json:"mood"`
}

type JournalSearch struct {
	Query string
	Mood  string
}
