package config

import "time"

type Config struct {
	Environment string         `yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	JWT         JWTConfig      `yaml:"jwt"`
	Webhook     WebhookConfig  `yaml:"webhook"`
	External    ExternalConfig `yaml:"external"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Driver           string `yaml:"driver"`
	ConnectionString string `yaml:"connection_string"`
}

type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret"`
	RefreshSecret   string `yaml:"refresh_secret"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
	Issuer          string `yaml:"issuer"`
}

type WebhookConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// ExternalConfig holds credentials and endpoints for the upstream APIs the
// service aggregates. Base URLs are overridable so tests can point the
// clients at a local server.
type ExternalConfig struct {
	GeoNamesUsername   string `yaml:"geonames_username"`
	GeoNamesBaseURL    string `yaml:"geonames_base_url"`
	OpenWeatherAPIKey  string `yaml:"openweather_api_key"`
	OpenWeatherBaseURL string `yaml:"openweather_base_url"`
	OpenTripMapAPIKey  string `yaml:"opentripmap_api_key"`
	OpenTripMapBaseURL string `yaml:"opentripmap_base_url"`
	NewsAPIKey         string `yaml:"news_api_key"`
	NewsBaseURL        string `yaml:"news_base_url"`
	Timeout            string `yaml:"timeout"`
}

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
	defaultExternalTimeout = 5 * time.Second
	defaultWebhookTimeout  = 5 * time.Second
)

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *JWTConfig) AccessTTL() time.Duration {
	return parseDuration(c.AccessTokenTTL, defaultAccessTokenTTL)
}

func (c *JWTConfig) RefreshTTL() time.Duration {
	return parseDuration(c.RefreshTokenTTL, defaultRefreshTokenTTL)
}

func (c *ExternalConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, defaultExternalTimeout)
}

func (c *WebhookConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, defaultWebhookTimeout)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}
