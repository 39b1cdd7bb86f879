package places

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postNearbyPlaces(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewClient("", nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/nearby-places", bytes.NewBufferString(body))

	handler.GetNearbyPlaces(c)
	return w
}

func TestGetNearbyPlacesAcceptsZeroCoordinates(t *testing.T) {
	// Binds fine at 0,0; fails later on the unconfigured client, not validation.
	w := postNearbyPlaces(t, `{"latitude": 0, "longitude": 0}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetNearbyPlacesRejectsMissingCoordinates(t *testing.T) {
	w := postNearbyPlaces(t, `{"radius": 500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNearbyPlacesRejectsOutOfRangeCoordinates(t *testing.T) {
	w := postNearbyPlaces(t, `{"latitude": 12.5, "longitude": 200}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
