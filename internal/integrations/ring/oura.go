package ring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"aibuddy/internal/apiusage"

	"golang.org/x/oauth2"
)

const ouraBaseURL = "https://api.ouraring.com/v2/usercollection"

// OuraMetrics is the subset of Oura v2 data shown on the dashboard. Nil
// fields mean the API had no value; nothing is ever synthesized.
type OuraMetrics struct {
	HeartRate       *float64 `json:"heart_rate"`
	HRV             *float64 `json:"heart_rate_variability"`
	ReadinessScore  *float64 `json:"readiness_score"`
	SkinTemperature *float64 `json:"skin_temperature"`
	SleepScore      *float64 `json:"sleep_score"`
}

type OuraClient struct {
	http    *http.Client
	baseURL string
	usage   *apiusage.Tracker
}

// NewOuraClient wraps the personal access token in a static oauth2 source so
// every request carries the bearer header.
func NewOuraClient(token string, usage *apiusage.Tracker) *OuraClient {
	if token == "" {
		return &OuraClient{baseURL: ouraBaseURL, usage: usage}
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(context.Background(), source)
	client.Timeout = 15 * time.Second

	return &OuraClient{http: client, baseURL: ouraBaseURL, usage: usage}
}

func (c *OuraClient) Configured() bool {
	return c.http != nil
}

type ouraHeartRateResponse struct {
	Data []struct {
		BPM       float64   `json:"bpm"`
		Timestamp time.Time `json:"timestamp"`
	} `json:"data"`
}

type ouraDailyResponse struct {
	Data []struct {
		Day          string   `json:"day"`
		Score        *float64 `json:"score"`
		Contributors struct {
			HRVBalance *float64 `json:"hrv_balance"`
		} `json:"contributors"`
		TemperatureDeviation *float64 `json:"temperature_deviation"`
	} `json:"data"`
}

// Fetch gathers heart rate, sleep and readiness data. Individual endpoint
// failures leave the corresponding fields nil instead of failing the whole
// snapshot.
func (c *OuraClient) Fetch(ctx context.Context, userID int) (*OuraMetrics, error) {
	if c.http == nil {
		return nil, fmt.Errorf("oura API key is not configured")
	}

	metrics := &OuraMetrics{}

	now := time.Now().UTC()
	var hr ouraHeartRateResponse
	params := url.Values{}
	params.Set("start_datetime", now.Add(-6*time.Hour).Format(time.RFC3339))
	params.Set("end_datetime", now.Format(time.RFC3339))
	if err := c.get(ctx, userID, "heartrate", params, &hr); err == nil && len(hr.Data) > 0 {
		sort.Slice(hr.Data, func(i, j int) bool {
			return hr.Data[i].Timestamp.After(hr.Data[j].Timestamp)
		})
		metrics.HeartRate = &hr.Data[0].BPM
	}

	day := url.Values{}
	day.Set("start_date", now.AddDate(0, 0, -1).Format("2006-01-02"))
	day.Set("end_date", now.Format("2006-01-02"))

	var sleep ouraDailyResponse
	if err := c.get(ctx, userID, "daily_sleep", day, &sleep); err == nil && len(sleep.Data) > 0 {
		latest := sleep.Data[len(sleep.Data)-1]
		metrics.SleepScore = latest.Score
		metrics.HRV = latest.Contributors.HRVBalance
	}

	var readiness ouraDailyResponse
	if err := c.get(ctx, userID, "daily_readiness", day, &readiness); err == nil && len(readiness.Data) > 0 {
		latest := readiness.Data[len(readiness.Data)-1]
		metrics.ReadinessScore = latest.Score
		metrics.SkinTemperature = latest.TemperatureDeviation
	}

	return metrics, nil
}

func (c *OuraClient) get(ctx context.Context, userID int, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.usage.Record("Oura", endpoint, &userID, start, false, 0)
		return fmt.Errorf("oura %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	success := resp.StatusCode == http.StatusOK
	c.usage.Record("Oura", endpoint, &userID, start, success, resp.StatusCode)

	if !success {
		return fmt.Errorf("oura %s returned status %d", endpoint, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
