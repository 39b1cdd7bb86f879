package journal

import (
	"testing"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newMockRepository(t *testing.T) (JournalRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(repository.NewRepository(db)), mock
}

func TestPersistEntry(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO "journal_entry"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(7, now))

	entry := &models.JournalEntry{UserID: 1, Title: "Morning pages", Content: "Slept well, feeling calm."}
	err := repo.PersistEntry(entry)

	assert.NoError(t, err)
	assert.Equal(t, 7, entry.ID)
	assert.Equal(t, now, entry.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntry(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "content", "mood", "timestamp"}).
		AddRow(7, 1, "Morning pages", "Slept well, feeling calm.", "calm", now)
	mock.ExpectQuery(`SELECT .+ FROM "journal_entry"`).WillReturnRows(rows)

	entry, err := repo.GetEntry(1, 7)

	assert.NoError(t, err)
	assert.Equal(t, "Morning pages", entry.Title)
	assert.Equal(t, "calm", *entry.Mood)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntryNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM "journal_entry"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "mood", "timestamp"}))

	entry, err := repo.GetEntry(1, 99)

	assert.Error(t, err)
	assert.Nil(t, entry)
}

func TestUpdateEntryNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "journal_entry"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateEntry(&models.JournalEntry{ID: 99, UserID: 1, Title: "x", Content: "y"})

	assert.ErrorContains(t, err, "not found")
}

func TestRemoveEntry(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM "journal_entry"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RemoveEntry(1, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
