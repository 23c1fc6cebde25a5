package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"weekend-planner/domain"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKey = "weather:current"
	cacheTTL = 10 * time.Minute
)

type (
	WeatherService interface {
		GetCurrentWeather(ctx context.Context) (domain.WeatherResponse, error)
		RefreshWeather(ctx context.Context) (domain.WeatherResponse, error)
	}

	weatherService struct {
		apiKey     string
		latitude   string
		longitude  string
		baseURL    string
		httpClient *http.Client
		rdb        *redis.Client
	}

	// openWeatherResponse covers the parts of the OpenWeatherMap
	// current-conditions payload the planner shows.
	openWeatherResponse struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
)

// NewWeatherService builds the OpenWeatherMap client for a fixed coordinate.
// rdb may be nil, in which case responses are fetched upstream every time.
func NewWeatherService(apiKey, latitude, longitude, baseURL string, rdb *redis.Client) WeatherService {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	return &weatherService{
		apiKey:     apiKey,
		latitude:   latitude,
		longitude:  longitude,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		rdb:        rdb,
	}
}

func (s *weatherService) GetCurrentWeather(ctx context.Context) (domain.WeatherResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var weather domain.WeatherResponse
			if err := json.Unmarshal([]byte(cached), &weather); err == nil {
				return weather, nil
			}
		}
	}
	return s.RefreshWeather(ctx)
}

// RefreshWeather always hits the upstream API and rewrites the cache.
func (s *weatherService) RefreshWeather(ctx context.Context) (domain.WeatherResponse, error) {
	if s.apiKey == "" {
		return domain.WeatherResponse{}, domain.ErrWeatherKeyMissing
	}

	url := fmt.Sprintf("%s?lat=%s&lon=%s&appid=%s&units=metric&lang=vi",
		s.baseURL, s.latitude, s.longitude, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.WeatherResponse{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherResponse{}, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.WeatherResponse{}, domain.ErrWeatherKeyInvalid
	}
	if resp.StatusCode != http.StatusOK {
		return domain.WeatherResponse{}, fmt.Errorf("%w: upstream status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var upstream openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return domain.WeatherResponse{}, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	if len(upstream.Weather) == 0 {
		return domain.WeatherResponse{}, fmt.Errorf("%w: empty conditions", domain.ErrWeatherUnavailable)
	}

	weather := domain.WeatherResponse{
		Temp:        upstream.Main.Temp,
		Condition:   upstream.Weather[0].Main,
		Description: upstream.Weather[0].Description,
		Humidity:    upstream.Main.Humidity,
		WindSpeed:   upstream.Wind.Speed,
		Icon:        upstream.Weather[0].Icon,
		FeelsLike:   upstream.Main.FeelsLike,
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(weather); err == nil {
			// Cache failures are not worth failing the request over.
			s.rdb.Set(ctx, cacheKey, payload, cacheTTL)
		}
	}

	return weather, nil
}
