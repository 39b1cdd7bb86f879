package meditation

import (
	"database/sql"
	"fmt"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	custom_error "aibuddy/pkg/errors"
)

type ChallengeRepository interface {
	PersistChallenge(challenge *models.MeditationChallenge) error
	GetChallenge(challengeID int) (*models.MeditationChallenge, error)
	GetChallenges() ([]models.MeditationChallenge, error)
	IsParticipant(userID, challengeID int) (bool, error)
	JoinChallenge(userID, challengeID int) error
	LeaveChallenge(userID, challengeID int) error
	GetLeaderboard(challengeID int) ([]models.ChallengeParticipant, error)
}

type challengeRepositoryImpl struct {
	r *repository.Repository
}

func NewChallengeRepository(r *repository.Repository) ChallengeRepository {
	return &challengeRepositoryImpl{r: r}
}

func (r *challengeRepositoryImpl) PersistChallenge(challenge *models.MeditationChallenge) error {
	insert := r.r.GoquDBWrapper.Insert("meditation_challenges").
		Rows(goqu.Record{
			"name":                  challenge.Name,
			"description":           challenge.Description,
			"start_date":            challenge.StartDate,
			"end_date":              challenge.EndDate,
			"duration_requirement":  challenge.DurationRequirement,
			"frequency_requirement": challenge.FrequencyRequirement,
			"created_by":            challenge.CreatedBy,
			"is_public":             challenge.IsPublic,
			"max_participants":      challenge.MaxParticipants,
			"challenge_type":        challenge.ChallengeType,
		}).
		Returning("id").
		Executor()

	if _, err := insert.ScanStruct(challenge); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save challenge", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save challenge: %w", err)
	}

	return nil
}

func (r *challengeRepositoryImpl) GetChallenge(challengeID int) (*models.MeditationChallenge, error) {
	var challenge models.MeditationChallenge
	found, err := r.r.GoquDBWrapper.
		Select(
			goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.description"),
			goqu.I("c.start_date"), goqu.I("c.end_date"),
			goqu.I("c.duration_requirement"), goqu.I("c.frequency_requirement"),
			goqu.I("c.created_by"), goqu.I("c.is_public"), goqu.I("c.max_participants"),
			goqu.I("c.challenge_type"),
			goqu.I("u.username").As("creator"),
			goqu.COUNT(goqu.I("p.user_id")).As("current_participants"),
		).
		From(goqu.T("meditation_challenges").As("c")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("c.created_by").Eq(goqu.I("u.id")))).
		LeftJoin(goqu.T("challenge_participants").As("p"), goqu.On(goqu.I("c.id").Eq(goqu.I("p.challenge_id")))).
		Where(goqu.I("c.id").Eq(challengeID)).
		GroupBy(goqu.I("c.id"), goqu.I("u.username")).
		ScanStruct(&challenge)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("challenge with ID %d not found", challengeID)
	}

	return &challenge, nil
}

func (r *challengeRepositoryImpl) GetChallenges() ([]models.MeditationChallenge, error) {
	var challenges []models.MeditationChallenge
	err := r.r.GoquDBWrapper.
		Select(
			goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.description"),
			goqu.I("c.start_date"), goqu.I("c.end_date"),
			goqu.I("c.duration_requirement"), goqu.I("c.frequency_requirement"),
			goqu.I("c.created_by"), goqu.I("c.is_public"), goqu.I("c.max_participants"),
			goqu.I("c.challenge_type"),
			goqu.I("u.username").As("creator"),
			goqu.COUNT(goqu.I("p.user_id")).As("current_participants"),
		).
		From(goqu.T("meditation_challenges").As("c")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("c.created_by").Eq(goqu.I("u.id")))).
		LeftJoin(goqu.T("challenge_participants").As("p"), goqu.On(goqu.I("c.id").Eq(goqu.I("p.challenge_id")))).
		Where(goqu.I("c.is_public").IsTrue()).
		GroupBy(goqu.I("c.id"), goqu.I("u.username")).
		Order(goqu.I("c.start_date").Desc()).
		ScanStructs(&challenges)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}

	return challenges, nil
}

func (r *challengeRepositoryImpl) IsParticipant(userID, challengeID int) (bool, error) {
	var participantID int
	found, err := r.r.GoquDBWrapper.
		Select("user_id").
		From("challenge_participants").
		Where(goqu.Ex{"user_id": userID, "challenge_id": challengeID}).
		ScanVal(&participantID)
	if err != nil {
		return false, fmt.Errorf("failed to check challenge membership: %w", err)
	}

	return found, nil
}

func (r *challengeRepositoryImpl) JoinChallenge(userID, challengeID int) error {
	insert := r.r.GoquDBWrapper.Insert("challenge_participants").
		Rows(goqu.Record{"user_id": userID, "challenge_id": challengeID}).
		Executor()

	if _, err := insert.Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to join challenge", string(pqErr.Code))
		}
		return fmt.Errorf("unable to join challenge: %w", err)
	}

	return nil
}

func (r *challengeRepositoryImpl) LeaveChallenge(userID, challengeID int) error {
	result, err := r.r.GoquDBWrapper.Delete("challenge_participants").
		Where(goqu.Ex{"user_id": userID, "challenge_id": challengeID}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("unable to leave challenge: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *challengeRepositoryImpl) GetLeaderboard(challengeID int) ([]models.ChallengeParticipant, error) {
	var participants []models.ChallengeParticipant
	err := r.r.GoquDBWrapper.
		Select(
			goqu.I("p.user_id"),
			goqu.I("u.username"),
			goqu.I("p.join_date"),
			goqu.I("p.completed_sessions"),
			goqu.I("p.total_minutes"),
		).
		From(goqu.T("challenge_participants").As("p")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("p.user_id").Eq(goqu.I("u.id")))).
		Where(goqu.I("p.challenge_id").Eq(challengeID)).
		Order(goqu.I("p.total_minutes").Desc(), goqu.I("p.completed_sessions").Desc()).
		ScanStructs(&participants)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	return participants, nil
}
