package fasting

import (
	"fmt"
	"time"

	"aibuddy/internal/repository"
	"aibuddy/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	custom_error "aibuddy/pkg/errors"
)

type FastingRepository interface {
	GetPrograms(programType string) ([]models.FastingProgram, error)
	GetProgram(programID int) (*models.FastingProgram, error)
	GetActiveSession(userID int) (*models.FastingSession, error)
	GetSession(userID, sessionID int) (*models.FastingSession, error)
	GetSessionHistory(userID int) ([]models.FastingSession, error)
	InsertSession(session *models.FastingSession) error
	CloseSession(userID, sessionID int, status string, endDate time.Time) error
	InsertCheckIn(checkIn *models.FastingCheckIn) error
	GetCheckIns(sessionID int) ([]models.FastingCheckIn, error)
	HasCheckIn(sessionID, dayNumber int) (bool, error)
}

type fastingRepositoryImpl struct {
	r *repository.Repository
}

func NewFastingRepository(r *repository.Repository) FastingRepository {
	return &fastingRepositoryImpl{r: r}
}

const sessionSelect = "s.id, s.user_id, s.program_id, p.name AS program_name, " +
	"p.duration_days AS program_days, p.type AS program_type, " +
	"s.start_date, s.end_date, s.status, s.notes"

func (r *fastingRepositoryImpl) GetPrograms(programType string) ([]models.FastingProgram, error) {
	query := r.r.GoquDBWrapper.
		Select("id", "name", "duration_days", "description", "benefits", "instructions", "daily_guidance", "type", "contraindications").
		From("fasting_programs").
		Order(goqu.I("duration_days").Asc())

	if programType != "" {
		query = query.Where(goqu.C("type").Eq(programType))
	}

	var programs []models.FastingProgram
	if err := query.ScanStructs(&programs); err != nil {
		return nil, fmt.Errorf("failed to fetch fasting programs: %w", err)
	}

	return programs, nil
}

func (r *fastingRepositoryImpl) GetProgram(programID int) (*models.FastingProgram, error) {
	var program models.FastingProgram
	found, err := r.r.GoquDBWrapper.
		Select("id", "name", "duration_days", "description", "benefits", "instructions", "daily_guidance", "type", "contraindications").
		From("fasting_programs").
		Where(goqu.C("id").Eq(programID)).
		ScanStruct(&program)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fasting program: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("fasting program with ID %d not found", programID)
	}

	return &program, nil
}

func (r *fastingRepositoryImpl) GetActiveSession(userID int) (*models.FastingSession, error) {
	var session models.FastingSession
	found, err := r.r.GoquDBWrapper.
		Select(goqu.L(sessionSelect)).
		From(goqu.T("fasting_sessions").As("s")).
		Join(goqu.T("fasting_programs").As("p"), goqu.On(goqu.I("s.program_id").Eq(goqu.I("p.id")))).
		Where(goqu.I("s.user_id").Eq(userID), goqu.I("s.status").Eq(models.FastingActive)).
		Order(goqu.I("s.start_date").Desc()).
		Limit(1).
		ScanStruct(&session)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active fasting session: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &session, nil
}

func (r *fastingRepositoryImpl) GetSession(userID, sessionID int) (*models.FastingSession, error) {
	var session models.FastingSession
	found, err := r.r.GoquDBWrapper.
		Select(goqu.L(sessionSelect)).
		From(goqu.T("fasting_sessions").As("s")).
		Join(goqu.T("fasting_programs").As("p"), goqu.On(goqu.I("s.program_id").Eq(goqu.I("p.id")))).
		Where(goqu.I("s.id").Eq(sessionID), goqu.I("s.user_id").Eq(userID)).
		ScanStruct(&session)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fasting session: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("fasting session with ID %d not found", sessionID)
	}

	return &session, nil
}

func (r *fastingRepositoryImpl) GetSessionHistory(userID int) ([]models.FastingSession, error) {
	var sessions []models.FastingSession
	err := r.r.GoquDBWrapper.
		Select(goqu.L(sessionSelect)).
		From(goqu.T("fasting_sessions").As("s")).
		Join(goqu.T("fasting_programs").As("p"), goqu.On(goqu.I("s.program_id").Eq(goqu.I("p.id")))).
		Where(goqu.I("s.user_id").Eq(userID)).
		Order(goqu.I("s.start_date").Desc()).
		ScanStructs(&sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fasting history: %w", err)
	}

	return sessions, nil
}

func (r *fastingRepositoryImpl) InsertSession(session *models.FastingSession) error {
	insert := r.r.GoquDBWrapper.Insert("fasting_sessions").
		Rows(goqu.Record{
			"user_id":    session.UserID,
			"program_id": session.ProgramID,
			"start_date": session.StartDate,
			"status":     session.Status,
			"notes":      session.Notes,
		}).
		Returning("id").
		Executor()

	if _, err := insert.ScanStruct(session); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save fasting session", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save fasting session: %w", err)
	}

	return nil
}

func (r *fastingRepositoryImpl) CloseSession(userID, sessionID int, status string, endDate time.Time) error {
	result, err := r.r.GoquDBWrapper.Update("fasting_sessions").
		Set(goqu.Record{"status": status, "end_date": endDate}).
		Where(goqu.Ex{"id": sessionID, "user_id": userID, "status": models.FastingActive}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("unable to close fasting session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no active fasting session with ID %d", sessionID)
	}

	return nil
}

func (r *fastingRepositoryImpl) InsertCheckIn(checkIn *models.FastingCheckIn) error {
	symptoms := checkIn.Symptoms
	if symptoms == nil {
		symptoms = []byte("[]")
	}

	insert := r.r.GoquDBWrapper.Insert("fasting_check_ins").
		Rows(goqu.Record{
			"session_id":   checkIn.SessionID,
			"day_number":   checkIn.DayNumber,
			"completed":    checkIn.Completed,
			"mood":         checkIn.Mood,
			"energy_level": checkIn.EnergyLevel,
			"weight":       checkIn.Weight,
			"symptoms":     symptoms,
			"notes":        checkIn.Notes,
		}).
		Returning("id", "check_in_time").
		Executor()

	if _, err := insert.ScanStruct(checkIn); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("unable to save check-in", string(pqErr.Code))
		}
		return fmt.Errorf("unable to save check-in: %w", err)
	}

	return nil
}

func (r *fastingRepositoryImpl) GetCheckIns(sessionID int) ([]models.FastingCheckIn, error) {
	var checkIns []models.FastingCheckIn
	err := r.r.GoquDBWrapper.
		Select("id", "session_id", "day_number", "check_in_time", "completed", "mood", "energy_level", "weight", "symptoms", "notes").
		From("fasting_check_ins").
		Where(goqu.C("session_id").Eq(sessionID)).
		Order(goqu.I("day_number").Asc()).
		ScanStructs(&checkIns)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}

	return checkIns, nil
}

func (r *fastingRepositoryImpl) HasCheckIn(sessionID, dayNumber int) (bool, error) {
	var id int
	found, err := r.r.GoquDBWrapper.
		Select("id").
		From("fasting_check_ins").
		Where(goqu.Ex{"session_id": sessionID, "day_number": dayNumber}).
		ScanVal(&id)
	if err != nil {
		return false, fmt.Errorf("failed to check existing check-in: %w", err)
	}

	return found, nil
}
