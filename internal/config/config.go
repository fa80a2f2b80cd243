package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Screen   ScreenConfig   `mapstructure:"screen"`
	Log      LogConfig      `mapstructure:"log"`
	Rate     RateConfig     `mapstructure:"rate"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port" envconfig:"SERVER_PORT"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds" envconfig:"SERVER_TIMEOUT_SECONDS"`
}

// UpstreamConfig locates the scheduling backend. BaseURL is the deploy-time
// knob that moves the whole service between environments.
type UpstreamConfig struct {
	BaseURL      string        `mapstructure:"baseUrl" envconfig:"UPSTREAM_BASE_URL"`
	Timeout      time.Duration `mapstructure:"timeout" envconfig:"UPSTREAM_TIMEOUT"`
	DirectoryTTL time.Duration `mapstructure:"directoryTtl" envconfig:"UPSTREAM_DIRECTORY_TTL"`
}

type ScreenConfig struct {
	TTL time.Duration `mapstructure:"ttl" envconfig:"SCREEN_TTL"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Console bool   `mapstructure:"console" envconfig:"LOG_CONSOLE"`
}

type RateConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_BURST"`
}

// LoadConfig reads config.yaml (optional) and overlays PORTAL_* environment
// variables on top. Environment always wins.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := defaults()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("portal", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.Upstream.BaseURL == "" {
		return nil, errors.New("upstream base URL is required (upstream.baseUrl or PORTAL_UPSTREAM_BASE_URL)")
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			TimeoutSeconds: 30,
		},
		Upstream: UpstreamConfig{
			Timeout:      15 * time.Second,
			DirectoryTTL: 30 * time.Second,
		},
		Screen: ScreenConfig{
			TTL: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Rate: RateConfig{
			RPS:   50,
			Burst: 100,
		},
	}
}
