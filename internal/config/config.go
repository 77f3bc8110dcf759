package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	Env               string   `mapstructure:"ENV"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`

	// TrustedProxies may set X-Forwarded-For, empty trusts no proxy.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`
}

func (cfg *Config) IsProduction() bool {
	return cfg.Env == "production"
}

// Load reads config.yaml from the given paths (current and ./config when none),
// environment variables taking precedence.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError
		if !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("read config: %w", errRead)
		}
	}

	var result Config

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("unmarshal config: %w", errUnmarshal)
	}

	if result.MaxRequestsPerMin <= 0 {
		return nil,
			fmt.Errorf(
				"MAX_REQUESTS_PER_MIN must be positive, got %d",
				result.MaxRequestsPerMin,
			)
	}

	return &result,
		nil
}
