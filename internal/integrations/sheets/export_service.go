package sheets

import (
	"context"
	"fmt"
	"os"
	"time"

	"aibuddy/internal/tracker"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// ExportService appends daily wellness summaries to a Google spreadsheet so
// users can share progress with a coach.
type ExportService struct {
	sheetsService *sheets.Service
	trackerRepo   tracker.TrackerRepository
}

func NewExportService(trackerRepo tracker.TrackerRepository) (*ExportService, error) {
	ctx := context.Background()

	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	var credentials *google.Credentials
	var err error

	if credentialsJSON != "" {
		credentials, err = google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheets.SpreadsheetsScope)
	} else {
		b, readErr := os.ReadFile("configs/google-credentials.json")
		if readErr != nil {
			return nil, fmt.Errorf("cannot read Google credentials file: %v", readErr)
		}
		credentials, err = google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load Google credentials: %v", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("cannot create Google Sheets client: %v", err)
	}

	return &ExportService{sheetsService: sheetsService, trackerRepo: trackerRepo}, nil
}

// ExportDailySummary appends one row per tracking day covering the last
// `days` days.
func (s *ExportService) ExportDailySummary(userID int, spreadsheetID string, days int) (int, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	rows := make([][]interface{}, 0, days)

	for offset := days - 1; offset >= 0; offset-- {
		dayRef := now.AddDate(0, 0, -offset)
		start, end := tracker.TrackingBounds(dayRef)

		water, err := s.trackerRepo.GetWaterTotal(userID, start, end)
		if err != nil {
			return 0, err
		}

		mood := ""
		if latest, err := s.trackerRepo.GetLatestMood(userID, start, end); err == nil && latest != nil {
			mood = latest.Mood
		}

		var calories, protein float64
		meals := 0
		if foods, err := s.trackerRepo.GetFoodLogs(userID, start, end, ""); err == nil {
			meals = len(foods)
			for _, food := range foods {
				if food.Calories != nil {
					calories += *food.Calories
				}
				if food.Protein != nil {
					protein += *food.Protein
				}
			}
		}

		rows = append(rows, []interface{}{
			tracker.TrackingDate(dayRef).Format("2006-01-02"),
			water,
			mood,
			meals,
			calories,
			protein,
		})
	}

	valueRange := &sheets.ValueRange{Values: rows}
	_, err := s.sheetsService.Spreadsheets.Values.
		Append(spreadsheetID, "A1", valueRange).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return 0, fmt.Errorf("cannot append to spreadsheet: %v", err)
	}

	return len(rows), nil
}
