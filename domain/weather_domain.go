package domain

import "errors"

var (
	MessageSuccessGetWeather = "weather retrieved successfully"
	MessageFailedGetWeather  = "failed to retrieve weather"

	ErrWeatherKeyMissing  = errors.New("weather API key not configured")
	ErrWeatherKeyInvalid  = errors.New("invalid weather API key")
	ErrWeatherUnavailable = errors.New("failed to fetch weather data")
)

// WeatherResponse keeps the field names the original frontend consumes.
type WeatherResponse struct {
	Temp        float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	FeelsLike   float64 `json:"feelsLike"`
}
