package meditation

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SessionRepository interface {
	InsertSession(session *models.MeditationSession) error
	GetSession(userID, sessionID int) (*models.MeditationSession, error)
	GetSessions(userID int, limit int) ([]models.MeditationSession, error)
	CompleteSession(tx *goqu.TxDatabase, session *models.MeditationSession) error
	GetStreakState(userID int) (*StreakState, error)
	UpdateStreakState(tx *goqu.TxDatabase, userID int, state StreakState) error
	InsertAchievement(tx *goqu.TxDatabase, achievement models.MeditationAchievement) error
	GetAchievements(userID int) ([]models.MeditationAchievement, error)
	IncrementChallengeProgress(tx *goqu.TxDatabase, userID, challengeID, minutes int) error
	AverageStressReduction(userID int, lastN int) (*float64, error)
}

type sessionRepositoryImpl struct {
	repository *repository.Repository
}

func NewSessionRepository(r *repository.Repository) SessionRepository {
	return &sessionRepositoryImpl{repository: r}
}

const sessionColumns = "id, user_id, challenge_id, start_time, end_time, duration, meditation_type, status, notes, " +
	"stress_level_start, stress_level_end, stress_reduction"

func (r *sessionRepositoryImpl) InsertSession(session *models.MeditationSession) error {
	query := r.repository.GoquDBWrapper.Insert("meditation_sessions").
		Rows(goqu.Record{
			"user_id":            session.UserID,
			"challenge_id":       session.ChallengeID,
			"start_time":         session.StartTime,
			"duration":           session.Duration,
			"meditation_type":    session.MeditationType,
			"status":             session.Status,
			"stress_level_start": session.StressLevelStart,
		}).
		Returning("id")

	if _, err := query.Executor().ScanStruct(session); err != nil {
		return fmt.Errorf("failed to insert meditation session: %w", err)
	}
	return nil
}

func (r *sessionRepositoryImpl) GetSession(userID, sessionID int) (*models.MeditationSession, error) {
	var session models.MeditationSession
	query := r.repository.GoquDBWrapper.
		Select(goqu.L(sessionColumns)).
		From("meditation_sessions").
		Where(goqu.Ex{"id": sessionID, "user_id": userID})

	found, err := query.Executor().ScanStruct(&session)
	if err != nil {
		return nil, fmt.Errorf("failed to get meditation session: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("meditation session %d not found", sessionID)
	}

	return &session, nil
}

func (r *sessionRepositoryImpl) GetSessions(userID int, limit int) ([]models.MeditationSession, error) {
	var sessions []models.MeditationSession
	query := r.repository.GoquDBWrapper.
		Select(goqu.L(sessionColumns)).
		From("meditation_sessions").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("start_time").Desc()).
		Limit(uint(limit))

	if err := query.Executor().ScanStructs(&sessions); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return sessions, nil
}

func (r *sessionRepositoryImpl) CompleteSession(tx *goqu.TxDatabase, session *models.MeditationSession) error {
	query := tx.Update("meditation_sessions").
		Set(goqu.Record{
			"end_time":         session.EndTime,
			"duration":         session.Duration,
			"status":           session.Status,
			"notes":            session.Notes,
			"stress_level_end": session.StressLevelEnd,
			"stress_reduction": session.StressReduction,
		}).
		Where(goqu.Ex{"id": session.ID, "user_id": session.UserID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to complete meditation session: %w", err)
	}
	return nil
}

func (r *sessionRepositoryImpl) GetStreakState(userID int) (*StreakState, error) {
	var row struct {
		CurrentStreak      int        `db:"current_streak"`
		LongestStreak      int        `db:"longest_streak"`
		LastMeditationDate *time.Time `db:"last_meditation_date"`
		TotalSessions      int        `db:"total_sessions"`
		TotalMinutes       int        `db:"total_meditation_minutes"`
	}

	query := r.repository.GoquDBWrapper.
		Select("current_streak", "longest_streak", "last_meditation_date", "total_sessions", "total_meditation_minutes").
		From("users").
		Where(goqu.Ex{"id": userID})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak state: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	return &StreakState{
		CurrentStreak:      row.CurrentStreak,
		LongestStreak:      row.LongestStreak,
		LastMeditationDate: row.LastMeditationDate,
		TotalSessions:      row.TotalSessions,
		TotalMinutes:       row.TotalMinutes,
	}, nil
}

func (r *sessionRepositoryImpl) UpdateStreakState(tx *goqu.TxDatabase, userID int, state StreakState) error {
	query := tx.Update("users").
		Set(goqu.Record{
			"current_streak":           state.CurrentStreak,
			"longest_streak":           state.LongestStreak,
			"last_meditation_date":     state.LastMeditationDate,
			"total_sessions":           state.TotalSessions,
			"total_meditation_minutes": state.TotalMinutes,
		}).
		Where(goqu.Ex{"id": userID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update streak state: %w", err)
	}
	return nil
}

func (r *sessionRepositoryImpl) InsertAchievement(tx *goqu.TxDatabase, achievement models.MeditationAchievement) error {
	query := tx.Insert("meditation_achievements").
		Rows(goqu.Record{
			"user_id":          achievement.UserID,
			"achievement_type": achievement.AchievementType,
			"description":      achievement.Description,
			"milestone_value":  achievement.MilestoneValue,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert achievement: %w", err)
	}
	return nil
}

func (r *sessionRepositoryImpl) GetAchievements(userID int) ([]models.MeditationAchievement, error) {
	var achievements []models.MeditationAchievement
	query := r.repository.GoquDBWrapper.
		Select("id", "user_id", "achievement_type", "earned_date", "description", "milestone_value").
		From("meditation_achievements").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("earned_date").Desc())

	if err := query.Executor().ScanStructs(&achievements); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return achievements, nil
}

func (r *sessionRepositoryImpl) IncrementChallengeProgress(tx *goqu.TxDatabase, userID, challengeID, minutes int) error {
	query := tx.Update("challenge_participants").
		Set(goqu.Record{
			"completed_sessions": goqu.L("completed_sessions + 1"),
			"total_minutes":      goqu.L("total_minutes + ?", minutes),
		}).
		Where(goqu.Ex{"user_id": userID, "challenge_id": challengeID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update challenge progress: %w", err)
	}
	return nil
}

func (r *sessionRepositoryImpl) AverageStressReduction(userID int, lastN int) (*float64, error) {
	var vals []*float64
	query := r.repository.GoquDBWrapper.
		From(r.repository.GoquDBWrapper.
			Select("stress_reduction").
			From("meditation_sessions").
			Where(
				goqu.Ex{"user_id": userID, "status": models.SessionCompleted},
				goqu.I("stress_reduction").IsNotNull(),
			).
			Order(goqu.I("start_time").Desc()).
			Limit(uint(lastN)).
			As("recent")).
		Select(goqu.AVG("stress_reduction"))

	if err := query.Executor().ScanVals(&vals); err != nil {
		return nil, fmt.Errorf("failed to compute stress reduction: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return vals[0], nil
}
