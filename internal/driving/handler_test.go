package driving

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"aibuddy/internal/integrations/places"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubProximityClient struct{}

func (stubProximityClient) Lookup(_ context.Context, _, _ float64, _ int) (*places.Match, error) {
	return nil, nil
}

func (stubProximityClient) Configured() bool { return false }

func postLocationStatus(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewRegistry(DefaultConfig()), stubProximityClient{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Request = httptest.NewRequest("POST", "/api/location-status", bytes.NewBufferString(body))

	handler.UpdateLocation(c)
	return w
}

func TestUpdateLocationAcceptsZeroCoordinates(t *testing.T) {
	w := postLocationStatus(t, `{"latitude": 0, "longitude": 0, "speed": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scanning")
}

func TestUpdateLocationRejectsMissingCoordinates(t *testing.T) {
	w := postLocationStatus(t, `{"speed": 5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLocationRejectsOutOfRangeCoordinates(t *testing.T) {
	w := postLocationStatus(t, `{"latitude": 95, "longitude": 10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
