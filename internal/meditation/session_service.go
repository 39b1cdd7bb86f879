package meditation

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SessionService struct {
	r  *repository.Repository
	sr SessionRepository
}

func NewSessionService(r *repository.Repository, sr SessionRepository) *SessionService {
	return &SessionService{r: r, sr: sr}
}

func (s *SessionService) StartSession(userID int, req models.StartSessionRequest) (*models.MeditationSession, error) {
	session := &models.MeditationSession{
		UserID:           userID,
		ChallengeID:      req.ChallengeID,
		StartTime:        time.Now().UTC(),
		Duration:         req.Duration,
		MeditationType:   req.MeditationType,
		Status:           models.SessionInProgress,
		StressLevelStart: req.StressLevelStart,
	}

	if err := s.sr.InsertSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// CompleteSession closes the session, recomputes the user's streak and
// awards any newly crossed milestone, all in one transaction.
func (s *SessionService) CompleteSession(userID, sessionID int, req models.CompleteSessionRequest) (*models.MeditationSession, error) {
	session, err := s.sr.GetSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionInProgress {
		return nil, fmt.Errorf("session %d is not in progress", sessionID)
	}

	now := time.Now().UTC()
	session.EndTime = &now
	session.Duration = req.ActualDuration
	session.Status = models.SessionCompleted
	session.Notes = req.Notes
	session.StressLevelEnd = req.StressLevelEnd
	if req.StressLevelEnd != nil && session.StressLevelStart != nil {
		reduction := *session.StressLevelStart - *req.StressLevelEnd
		session.StressReduction = &reduction
	}

	before, err := s.sr.GetStreakState(userID)
	if err != nil {
		return nil, err
	}
	after := before.Advance(now, req.ActualDuration)

	err = repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if err := s.sr.CompleteSession(tx, session); err != nil {
			return err
		}

		if err := s.sr.UpdateStreakState(tx, userID, after); err != nil {
			return err
		}

		if milestone := ReachedMilestone(*before, after); milestone > 0 {
			description := fmt.Sprintf("Meditated %d days in a row", milestone)
			achievement := models.MeditationAchievement{
				UserID:          userID,
				AchievementType: "streak",
				Description:     &description,
				MilestoneValue:  &milestone,
			}
			if err := s.sr.InsertAchievement(tx, achievement); err != nil {
				return err
			}
		}

		if session.ChallengeID != nil {
			if err := s.sr.IncrementChallengeProgress(tx, userID, *session.ChallengeID, req.ActualDuration); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Stats builds the aggregate meditation view for the profile page.
func (s *SessionService) Stats(userID int) (*models.MeditationStats, error) {
	state, err := s.sr.GetStreakState(userID)
	if err != nil {
		return nil, err
	}

	avg, err := s.sr.AverageStressReduction(userID, 30)
	if err != nil {
		return nil, err
	}

	return &models.MeditationStats{
		CurrentStreak:          state.CurrentStreak,
		LongestStreak:          state.LongestStreak,
		TotalSessions:          state.TotalSessions,
		TotalMinutes:           state.TotalMinutes,
		AverageStressReduction: avg,
	}, nil
}
