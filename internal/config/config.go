package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Checker CheckerConfig `mapstructure:"checker"`
}

// CheckerConfig holds link checker configuration
type CheckerConfig struct {
	Timeout   int    `mapstructure:"timeout"` // seconds per request
	UserAgent string `mapstructure:"user_agent"`
	Limit     int    `mapstructure:"limit"` // -1 means unlimited
}

// Load loads configuration from an optional config.yaml with environment
// variable overrides. The tool must run without any config file, so a
// missing file only means defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvPrefix("marklint")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("checker.timeout", 30)
	viper.SetDefault("checker.user_agent", "marklint/0.1 (+bookmark backup checker)")
	viper.SetDefault("checker.limit", -1)
}
