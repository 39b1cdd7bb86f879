package journal

import (
	"fmt"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type JournalRepository interface {
	PersistEntry(entry *models.JournalEntry) error
	GetEntry(userID, entryID int) (*models.JournalEntry, error)
	GetEntries(userID int, search models.JournalSearch) ([]models.JournalEntry, error)
	UpdateEntry(entry *models.JournalEntry) error
	RemoveEntry(userID, entryID int) error
}

type journalRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) JournalRepository {
	return &journalRepositoryImpl{repository: r}
}

func (r *journalRepositoryImpl) PersistEntry(entry *models.JournalEntry) error {
	query := r.repository.GoquDBWrapper.Insert("journal_entry").
		Rows(goqu.Record{
			"user_id": entry.UserID,
			"title":   entry.Title,
			"content": entry.Content,
			"mood":    entry.Mood,
		}).
		Returning("id", "timestamp")

	if _, err := query.Executor().ScanStruct(entry); err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

func (r *journalRepositoryImpl) GetEntry(userID, entryID int) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "title", "content", "mood", "timestamp").
		From("journal_entry").
		Where(goqu.Ex{"id": entryID, "user_id": userID})

	found, err := query.Executor().ScanStruct(&entry)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("journal entry %d not found", entryID)
	}

	return &entry, nil
}

func (r *journalRepositoryImpl) GetEntries(userID int, search models.JournalSearch) ([]models.JournalEntry, error) {
	conditions := []goqu.Expression{goqu.Ex{"user_id": userID}}

	if search.Query != "" {
		pattern := "%" + search.Query + "%"
		conditions = append(conditions, goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("content").ILike(pattern),
		))
	}
	if search.Mood != "" {
		conditions = append(conditions, goqu.Ex{"mood": search.Mood})
	}

	var entries []models.JournalEntry
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "title", "content", "mood", "timestamp").
		From("journal_entry").
		Where(conditions...).
		Order(goqu.I("timestamp").Desc())

	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return entries, nil
}

func (r *journalRepositoryImpl) UpdateEntry(entry *models.JournalEntry) error {
	query := r.repository.GoquDBWrapper.Update("journal_entry").
		Set(goqu.Record{
			"title":   entry.Title,
			"content": entry.Content,
			"mood":    entry.Mood,
		}).
		Where(goqu.Ex{"id": entry.ID, "user_id": entry.UserID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("journal entry %d not found", entry.ID)
	}

	return nil
}

func (r *journalRepositoryImpl) RemoveEntry(userID, entryID int) error {
	query := r.repository.GoquDBWrapper.Delete("journal_entry").
		Where(goqu.Ex{"id": entryID, "user_id": userID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("journal entry %d not found", entryID)
	}

	return nil
}
