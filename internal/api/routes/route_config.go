package routes

import (
	"weekend-planner/internal/api/handlers"
	"weekend-planner/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	SelectionHandler handlers.SelectionHandler
	WeatherHandler   handlers.WeatherHandler
	CatalogHandler   handlers.CatalogHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Selections()
	c.Weather()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Selections() {
	selections := c.App.Group("/api/v1/selections")
	{
		selections.Post("", c.SelectionHandler.CreateSelection)
		selections.Get("", c.SelectionHandler.GetSelections)
		selections.Get("/:id", c.SelectionHandler.GetSelection)
		selections.Put("/:id", c.SelectionHandler.UpdateSelection)
		selections.Delete("/:id", c.SelectionHandler.DeleteSelection)
	}
}

func (c *Config) Weather() {
	c.App.Get("/api/v1/weather", c.WeatherHandler.GetCurrentWeather)
	c.App.Get("/api/v1/countdown", c.CatalogHandler.GetCountdown)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")
	{
		catalog.Get("/locations", c.CatalogHandler.GetLocations)
		catalog.Get("/cuisines", c.CatalogHandler.GetCuisines)
		catalog.Get("/food-moods", c.CatalogHandler.GetFoodMoods)
		catalog.Get("/feelings", c.CatalogHandler.GetFeelings)
		catalog.Get("/checklist-items", c.CatalogHandler.GetChecklistItems)
		catalog.Post("/checklist-suggestions", c.CatalogHandler.SuggestChecklistItems)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
