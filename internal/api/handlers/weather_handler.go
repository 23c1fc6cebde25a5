package handlers

import (
	"errors"

	"weekend-planner/domain"
	"weekend-planner/internal/api/presenters"
	"weekend-planner/pkg/weather"

	"github.com/gofiber/fiber/v2"
)

type (
	WeatherHandler interface {
		GetCurrentWeather(c *fiber.Ctx) error
	}

	weatherHandler struct {
		weatherService weather.WeatherService
	}
)

func NewWeatherHandler(weatherService weather.WeatherService) WeatherHandler {
	return &weatherHandler{weatherService: weatherService}
}

func (h *weatherHandler) GetCurrentWeather(c *fiber.Ctx) error {
	res, err := h.weatherService.GetCurrentWeather(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrWeatherKeyInvalid) {
			status = fiber.StatusUnauthorized
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetWeather, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeather)
}
