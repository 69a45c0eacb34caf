package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Upstream struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Cache struct {
	DurationSeconds int  `mapstructure:"duration_seconds"`
	RefreshEnabled  bool `mapstructure:"refresh_enabled"`
}

type Logging struct {
	Level string `mapstructure:"level"`
	Debug bool   `mapstructure:"debug"`
}

type AppConfig struct {
	Version    string     `mapstructure:"version"`
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Upstream   Upstream   `mapstructure:"upstream"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	// .env is optional, plain env vars win anyway
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("version", "1.0.0")
	v.SetDefault("http_server.port", "5000")
	v.SetDefault("upstream.base_url", coinGeckoBaseURL)
	v.SetDefault("upstream.timeout_seconds", 10)
	v.SetDefault("cache.duration_seconds", 300)
	v.SetDefault("cache.refresh_enabled", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.debug", false)

	_ = v.BindEnv("version", "APP_VERSION")
	_ = v.BindEnv("http_server.port", "PORT")
	_ = v.BindEnv("upstream.timeout_seconds", "API_TIMEOUT")
	_ = v.BindEnv("cache.duration_seconds", "CACHE_DURATION")
	_ = v.BindEnv("cache.refresh_enabled", "REFRESH_ENABLED")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.debug", "DEBUG")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
