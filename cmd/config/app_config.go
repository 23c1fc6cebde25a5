package config

import (
	"os"
	"time"

	"weekend-planner/internal/api/handlers"
	"weekend-planner/internal/api/routes"
	"weekend-planner/internal/middleware"
	"weekend-planner/internal/utils"
	"weekend-planner/pkg/selection"
	"weekend-planner/pkg/weather"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// defaultCountdownTarget matches the originally planned weekend; override
// with COUNTDOWN_TARGET in config.yaml.
const defaultCountdownTarget = "2026-01-10T12:00:00+07:00"

func NewApp(db *gorm.DB, rdb *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Ho_Chi_Minh",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	selectionRepository := selection.NewSelectionRepository(db)

	// Service
	selectionService := selection.NewSelectionService(selectionRepository)
	weatherService := weather.NewWeatherService(
		utils.GetConfig("WEATHER_API_KEY"),
		getConfigOr("WEATHER_LAT", "21.0285"),
		getConfigOr("WEATHER_LON", "105.8542"),
		"",
		rdb,
	)
	if rdb != nil {
		weather.StartWeatherCron(weatherService)
	}

	// Handler
	selectionHandler := handlers.NewSelectionHandler(selectionService, validator)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	catalogHandler := handlers.NewCatalogHandler(validator, countdownTarget())

	// routes
	routesConfig := routes.Config{
		App:              app,
		SelectionHandler: selectionHandler,
		WeatherHandler:   weatherHandler,
		CatalogHandler:   catalogHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func getConfigOr(key, fallback string) string {
	if value := utils.GetConfig(key); value != "" {
		return value
	}
	return fallback
}

func countdownTarget() time.Time {
	raw := getConfigOr("COUNTDOWN_TARGET", defaultCountdownTarget)
	target, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		log.Errorf("invalid COUNTDOWN_TARGET %q: %v", raw, err)
		target, _ = time.Parse(time.RFC3339, defaultCountdownTarget)
	}
	return target
}
