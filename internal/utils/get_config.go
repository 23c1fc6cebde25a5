package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// Redis configuration
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`

	// Weather API configuration
	WeatherAPIKey string `yaml:"WEATHER_API_KEY"`
	WeatherLat    string `yaml:"WEATHER_LAT"`
	WeatherLon    string `yaml:"WEATHER_LON"`

	// Countdown target, RFC3339
	CountdownTarget string `yaml:"COUNTDOWN_TARGET"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("WEATHER_API_KEY", config.WeatherAPIKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "WEATHER_API_KEY":
		return config.WeatherAPIKey
	case "WEATHER_LAT":
		return config.WeatherLat
	case "WEATHER_LON":
		return config.WeatherLon
	case "COUNTDOWN_TARGET":
		return config.CountdownTarget
	default:
		return ""
	}
}
