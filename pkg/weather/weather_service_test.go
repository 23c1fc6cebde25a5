package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weekend-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamPayload = `{
	"weather": [{"main": "Clouds", "description": "mây đen u ám", "icon": "04d"}],
	"main": {"temp": 28.4, "feels_like": 32.1, "humidity": 74},
	"wind": {"speed": 3.6}
}`

func TestGetCurrentWeather_ParsesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "21.0285", query.Get("lat"))
		assert.Equal(t, "105.8542", query.Get("lon"))
		assert.Equal(t, "metric", query.Get("units"))
		assert.Equal(t, "vi", query.Get("lang"))
		w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	service := NewWeatherService("test-key", "21.0285", "105.8542", upstream.URL, nil)

	res, err := service.GetCurrentWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 28.4, res.Temp)
	assert.Equal(t, "Clouds", res.Condition)
	assert.Equal(t, "mây đen u ám", res.Description)
	assert.Equal(t, 74, res.Humidity)
	assert.Equal(t, 3.6, res.WindSpeed)
	assert.Equal(t, "04d", res.Icon)
	assert.Equal(t, 32.1, res.FeelsLike)
}

func TestGetCurrentWeather_MissingAPIKey(t *testing.T) {
	service := NewWeatherService("", "21.0285", "105.8542", "http://127.0.0.1:0", nil)

	_, err := service.GetCurrentWeather(context.Background())
	assert.ErrorIs(t, err, domain.ErrWeatherKeyMissing)
}

func TestGetCurrentWeather_InvalidAPIKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	service := NewWeatherService("bad-key", "21.0285", "105.8542", upstream.URL, nil)

	_, err := service.GetCurrentWeather(context.Background())
	assert.ErrorIs(t, err, domain.ErrWeatherKeyInvalid)
}

func TestGetCurrentWeather_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	service := NewWeatherService("test-key", "21.0285", "105.8542", upstream.URL, nil)

	_, err := service.GetCurrentWeather(context.Background())
	assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
}
