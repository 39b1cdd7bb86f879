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
)

const ultrahumanBaseURL = "https://partner.ultrahuman.com/api/v1"

// UltrahumanMetrics mirrors the partner API metric types we care about.
type UltrahumanMetrics struct {
	HeartRate       *float64 `json:"heart_rate"`
	HRV             *float64 `json:"heart_rate_variability"`
	SkinTemperature *float64 `json:"skin_temperature"`
	RecoveryIndex   *float64 `json:"recovery_index"`
	VO2Max          *float64 `json:"vo2_max"`
}

type UltrahumanClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	usage   *apiusage.Tracker
}

func NewUltrahumanClient(apiKey string, usage *apiusage.Tracker) *UltrahumanClient {
	return &UltrahumanClient{
		apiKey:  apiKey,
		baseURL: ultrahumanBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		usage:   usage,
	}
}

func (c *UltrahumanClient) Configured() bool {
	return c.apiKey != ""
}

type uhValue struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

type uhObject struct {
	Value  *float64  `json:"value"`
	Values []uhValue `json:"values"`
	Gist   struct {
		Avg *float64 `json:"avg"`
	} `json:"gist_object"`
}

type uhMetric struct {
	Type   string   `json:"type"`
	Object uhObject `json:"object"`
}

type uhResponse struct {
	Data struct {
		MetricData []uhMetric `json:"metric_data"`
	} `json:"data"`
}

// Fetch pulls today's metrics for the given partner account email.
func (c *UltrahumanClient) Fetch(ctx context.Context, userID int, email string) (*UltrahumanMetrics, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ultrahuman API key is not configured")
	}

	params := url.Values{}
	params.Set("email", email)
	params.Set("date", time.Now().UTC().Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metrics?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// Partner API takes the key directly, without a Bearer prefix.
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.usage.Record("Ultrahuman", "metrics", &userID, start, false, 0)
		return nil, fmt.Errorf("ultrahuman request failed: %w", err)
	}
	defer resp.Body.Close()

	success := resp.StatusCode == http.StatusOK
	c.usage.Record("Ultrahuman", "metrics", &userID, start, success, resp.StatusCode)

	if !success {
		return nil, fmt.Errorf("ultrahuman API returned status %d", resp.StatusCode)
	}

	var payload uhResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode ultrahuman response: %w", err)
	}

	byType := map[string]uhMetric{}
	for _, metric := range payload.Data.MetricData {
		byType[metric.Type] = metric
	}

	metrics := &UltrahumanMetrics{
		HeartRate:       latestValue(byType["hr"].Object),
		HRV:             latestValue(byType["hrv"].Object),
		SkinTemperature: temperatureValue(byType["temp"].Object),
		RecoveryIndex:   byType["recovery_index"].Object.Value,
		VO2Max:          byType["vo2_max"].Object.Value,
	}
	if metrics.HeartRate == nil {
		metrics.HeartRate = byType["night_rhr"].Object.Value
	}

	return metrics, nil
}

func latestValue(obj uhObject) *float64 {
	if len(obj.Values) == 0 {
		return obj.Value
	}
	values := make([]uhValue, len(obj.Values))
	copy(values, obj.Values)
	sort.Slice(values, func(i, j int) bool { return values[i].Timestamp > values[j].Timestamp })
	return &values[0].Value
}

// temperatureValue tries the direct value, then the values array, then the
// gist average, matching the shapes the partner API actually returns.
func temperatureValue(obj uhObject) *float64 {
	if obj.Value != nil {
		return obj.Value
	}
	if v := latestValue(obj); v != nil {
		return v
	}
	return obj.Gist.Avg
}
