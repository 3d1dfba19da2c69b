package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AppPort  string // HTTP port for the dashboard server
	DataPath string // Path to the transactions CSV
	IsProd   bool   // Is production environment
}

// Load reads configuration from the environment, with a .env file as
// fallback, and fills in defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		AppPort:  os.Getenv("APP_PORT"),
		DataPath: os.Getenv("DATA_PATH"),
		IsProd:   os.Getenv("IS_PROD") == "true",
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8081"
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "data/transactions.csv"
	}
	return cfg
}
