// Package config loads application configuration from an optional config.yaml
// plus RISK_-prefixed environment variables, and initializes the global
// logger. Configuration is read once at startup and treated as read-only
// afterwards.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Geocode GeocodeConfig `yaml:"geocode" mapstructure:"geocode"`
	Crime   CrimeConfig   `yaml:"crime" mapstructure:"crime"`
}

// ServerConfig configures the assessment HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GeocodeConfig configures the geocoding chain. The Google key is optional;
// without it the chain starts at the free geocoders.
type GeocodeConfig struct {
	GoogleAPIKey string  `yaml:"google_api_key" mapstructure:"google_api_key"`
	FreeRPS      float64 `yaml:"free_rps" mapstructure:"free_rps"`
}

// CrimeConfig configures the crime lookup windows.
type CrimeConfig struct {
	LookbackDays     int `yaml:"lookback_days" mapstructure:"lookback_days"`
	RecentWindowDays int `yaml:"recent_window_days" mapstructure:"recent_window_days"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	// Registered empty so AutomaticEnv can populate it through Unmarshal.
	v.SetDefault("geocode.google_api_key", "")
	v.SetDefault("geocode.free_rps", 1.0)
	v.SetDefault("crime.lookback_days", 30)
	v.SetDefault("crime.recent_window_days", 7)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
