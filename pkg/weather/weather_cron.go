package weather

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartWeatherCron keeps the weather cache warm on the same interval the
// cache expires, so the UI normally never waits on the upstream API.
func StartWeatherCron(service WeatherService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		if _, err := service.RefreshWeather(context.Background()); err != nil {
			log.Printf("[WEATHER CRON] refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("[WEATHER CRON] failed to schedule refresh: %v", err)
		return c
	}

	c.Start()
	return c
}
