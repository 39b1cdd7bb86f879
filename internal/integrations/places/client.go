package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"aibuddy/internal/apiusage"
	"aibuddy/pkg/geo"
)

// Endpoints tried in order until one returns a usable result.
var defaultEndpoints = []string{
	"https://maps.googleapis.com/maps/api/place/nearbysearch/json",
	"https://maps.googleapis.com/maps/api/place/textsearch/json",
	"https://maps.googleapis.com/maps/api/geocode/json",
}

const (
	defaultSearchRadius = 5000
	alertRadiusMeters   = 150
)

type Match struct {
	Name     string  `json:"restaurant"`
	Distance float64 `json:"distance"`
}

type Venue struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Distance float64  `json:"distance"`
	FastFood bool     `json:"fast_food"`
}

type Client struct {
	apiKey    string
	endpoints []string
	http      *http.Client
	usage     *apiusage.Tracker
}

func NewClient(apiKey string, usage *apiusage.Tracker) *Client {
	return &Client{
		apiKey:    apiKey,
		endpoints: defaultEndpoints,
		http:      &http.Client{Timeout: 10 * time.Second},
		usage:     usage,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Lookup returns the closest fast-food venue within the alert radius, or nil
// when none is close enough. Each configured endpoint is tried in sequence.
func (c *Client) Lookup(ctx context.Context, lat, lng float64, radius int) (*Match, error) {
	venues, err := c.Search(ctx, lat, lng, radius)
	if err != nil {
		return nil, err
	}

	var match *Match
	for _, venue := range venues {
		if !venue.FastFood || venue.Distance > alertRadiusMeters {
			continue
		}
		if match == nil || venue.Distance < match.Distance {
			match = &Match{Name: venue.Name, Distance: venue.Distance}
		}
	}

	return match, nil
}

// Search returns all venues near the point, classified but unfiltered, for
// map display.
func (c *Client) Search(ctx context.Context, lat, lng float64, radius int) ([]Venue, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("places API key is not configured")
	}
	if radius <= 0 {
		radius = defaultSearchRadius
	}

	var lastErr error
	for _, endpoint := range c.endpoints {
		venues, err := c.query(ctx, endpoint, lat, lng, radius)
		if err != nil {
			lastErr = err
			continue
		}
		return venues, nil
	}

	return nil, fmt.Errorf("all place endpoints failed: %w", lastErr)
}

func (c *Client) query(ctx context.Context, endpoint string, lat, lng float64, radius int) ([]Venue, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.usage.Record("Google Maps", "places/nearbysearch", nil, start, false, 0)
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	success := resp.StatusCode == http.StatusOK
	c.usage.Record("Google Maps", "places/nearbysearch", nil, start, success, resp.StatusCode)

	if !success {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	var payload placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %s", payload.Status)
	}

	venues := make([]Venue, 0, len(payload.Results))
	for _, result := range payload.Results {
		venue := Venue{
			Name:  result.Name,
			Types: result.Types,
			Lat:   result.Geometry.Location.Lat,
			Lng:   result.Geometry.Location.Lng,
		}
		venue.Distance = geo.Distance(lat, lng, venue.Lat, venue.Lng)
		venue.FastFood = IsFastFood(venue.Name, venue.Types)
		venues = append(venues, venue)
	}

	return venues, nil
}
