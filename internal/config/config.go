package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"fakestoredw/internal/pkg/constants"
)

const configFilePath = "config.json"

const (
	defaultBaseURL   = "https://fakestoreapi.com"
	defaultOutputDir = "./data"
)

// Config represents the application's configuration structure.
type Config struct {
	BaseURL   string `json:"base-url" mapstructure:"base-url"`
	OutputDir string `json:"output-dir" mapstructure:"output-dir"`
}

// Load reads configuration from an optional JSON file and environment variables.
// Environment variables take precedence over the config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault(constants.ViperKeyBaseURL, defaultBaseURL)
	v.SetDefault(constants.ViperKeyOutputDir, defaultOutputDir)

	if _, err := os.Stat(configFilePath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
