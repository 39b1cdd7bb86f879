package apiusage

import (
	"log"
	"time"

	"aibuddy/pkg/models"
)

// Tracker records the outcome of external API calls. Failures to persist a
// log entry never propagate to the caller.
type Tracker struct {
	repo UsageRepository
}

func NewTracker(repo UsageRepository) *Tracker {
	return &Tracker{repo: repo}
}

// Record logs one call to an external API. A nil tracker is a no-op.
func (t *Tracker) Record(apiName, endpoint string, userID *int, start time.Time, success bool, statusCode int) {
	if t == nil {
		return
	}

	entry := models.APIUsageLog{
		APIName:      apiName,
		Endpoint:     endpoint,
		UserID:       userID,
		ResponseTime: time.Since(start).Seconds(),
		Success:      success,
		StatusCode:   statusCode,
	}

	if err := t.repo.PersistLog(entry); err != nil {
		log.Println("Unable to create API usage entry for", apiName, endpoint)
		return
	}
}
