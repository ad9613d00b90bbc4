package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	ImageryURI    string
	WeatherURI    string
	WeatherAPIKey string
	JWTSecret     string
	Port          string

	// MonitorInterval is how often the background monitor re-checks fields
	// for stale analyses. Zero disables the monitor.
	MonitorInterval time.Duration
}

func mustConfig() Config {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "fieldvision"),
		ImageryURI:    getenv("IMAGERY_URL", "http://127.0.0.1:8000"),
		WeatherURI:    getenv("WEATHER_URL", "https://api.openweathermap.org"),
		WeatherAPIKey: getenv("OPENWEATHERMAP_API_KEY", ""),
		JWTSecret:     getenv("JWT_SECRET", "change_me"),
		Port:          getenv("PORT", "8080"),
	}

	interval := getenv("MONITOR_INTERVAL", "1h")
	d, err := time.ParseDuration(interval)
	if err != nil {
		log.Fatal("invalid MONITOR_INTERVAL: ", err)
	}
	cfg.MonitorInterval = d

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
