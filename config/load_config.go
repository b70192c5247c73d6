package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the yaml file at filePath and applies environment
// overrides on top of it. Secrets and API keys are expected to arrive via the
// environment (optionally from a .env file) rather than the yaml file.
func LoadConfig(filePath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Environment, "APP_ENV")
	overrideString(&cfg.Server.Address, "SERVER_ADDRESS")
	overrideString(&cfg.Database.Driver, "DATABASE_DRIVER")
	overrideString(&cfg.Database.ConnectionString, "DATABASE_CONNECTION_URL")
	overrideString(&cfg.JWT.AccessSecret, "ACCESS_TOKEN_SECRET")
	overrideString(&cfg.JWT.RefreshSecret, "REFRESH_TOKEN_SECRET")
	overrideString(&cfg.Webhook.URL, "WEBHOOK_URL")
	overrideString(&cfg.External.GeoNamesUsername, "GEONAMES_USERNAME")
	overrideString(&cfg.External.OpenWeatherAPIKey, "OPENWEATHER_API_KEY")
	overrideString(&cfg.External.OpenTripMapAPIKey, "OPENTRIPMAP_API_KEY")
	overrideString(&cfg.External.NewsAPIKey, "NEWS_API_KEY")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":3000"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "cityscope"
	}
	if cfg.External.GeoNamesUsername == "" {
		cfg.External.GeoNamesUsername = "demo"
	}
	if cfg.External.GeoNamesBaseURL == "" {
		cfg.External.GeoNamesBaseURL = "http://api.geonames.org"
	}
	if cfg.External.OpenWeatherBaseURL == "" {
		cfg.External.OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.External.OpenTripMapBaseURL == "" {
		cfg.External.OpenTripMapBaseURL = "https://api.opentripmap.com/0.1/en"
	}
	if cfg.External.NewsBaseURL == "" {
		cfg.External.NewsBaseURL = "https://newsapi.org/v2"
	}
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
