package fasting

import (
	"encoding/json"
	"fmt"
	"time"

	"aibuddy/pkg/models"
)

type FastingService struct {
	fr FastingRepository
}

func NewFastingService(fr FastingRepository) *FastingService {
	return &FastingService{fr: fr}
}

var (
	ErrSessionAlreadyActive = fmt.Errorf("a fasting session is already active")
	ErrNoActiveSession      = fmt.Errorf("no active fasting session")
	ErrDuplicateCheckIn     = fmt.Errorf("check-in for this day already recorded")
)

// StartProgram enforces the single-active-session rule before opening a
// new session on the given program.
func (s *FastingService) StartProgram(userID, programID int, notes *string) (*models.FastingSession, error) {
	active, err := s.fr.GetActiveSession(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrSessionAlreadyActive
	}

	program, err := s.fr.GetProgram(programID)
	if err != nil {
		return nil, err
	}

	session := &models.FastingSession{
		UserID:      userID,
		ProgramID:   program.ID,
		ProgramName: program.Name,
		ProgramDays: program.DurationDays,
		ProgramType: program.Type,
		StartDate:   time.Now().UTC(),
		Status:      models.FastingActive,
		Notes:       notes,
	}
	if err := s.fr.InsertSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// CheckIn records one daily check-in. The day must be within the session
// window and not already checked in; completing the final day closes the
// session.
func (s *FastingService) CheckIn(userID int, req models.FastingCheckInRequest) (*models.FastingCheckIn, *models.FastingSession, error) {
	session, err := s.fr.GetActiveSession(userID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrNoActiveSession
	}

	now := time.Now().UTC()
	if req.DayNumber < 1 || req.DayNumber > session.CurrentDay(now) {
		return nil, nil, fmt.Errorf("day %d is outside the current session window", req.DayNumber)
	}

	exists, err := s.fr.HasCheckIn(session.ID, req.DayNumber)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrDuplicateCheckIn
	}

	symptoms, err := json.Marshal(req.Symptoms)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode symptoms: %w", err)
	}

	checkIn := &models.FastingCheckIn{
		SessionID:   session.ID,
		DayNumber:   req.DayNumber,
		Completed:   req.Completed,
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		Weight:      req.Weight,
		Symptoms:    symptoms,
		Notes:       req.Notes,
	}
	if err := s.fr.InsertCheckIn(checkIn); err != nil {
		return nil, nil, err
	}

	if req.Completed && req.DayNumber >= session.ProgramDays {
		if err := s.fr.CloseSession(userID, session.ID, models.FastingCompleted, now); err != nil {
			return nil, nil, err
		}
		session.Status = models.FastingCompleted
		session.EndDate = &now
	}

	return checkIn, session, nil
}

// EndSession closes the active session early as abandoned, unless the
// final day was reached.
func (s *FastingService) EndSession(userID int) (*models.FastingSession, error) {
	session, err := s.fr.GetActiveSession(userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	now := time.Now().UTC()
	status := models.FastingAbandoned
	if session.CurrentDay(now) >= session.ProgramDays {
		status = models.FastingCompleted
	}

	if err := s.fr.CloseSession(userID, session.ID, status, now); err != nil {
		return nil, err
	}
	session.Status = status
	session.EndDate = &now

	return session, nil
}

// ResetSession abandons the active session so a fresh one can start.
func (s *FastingService) ResetSession(userID int) error {
	session, err := s.fr.GetActiveSession(userID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoActiveSession
	}

	return s.fr.CloseSession(userID, session.ID, models.FastingAbandoned, time.Now().UTC())
}
