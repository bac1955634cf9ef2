package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the application configuration, assembled hierarchically:
// defaults, then an optional config.yaml, then VISFA_-prefixed environment
// variables.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Archive struct {
		Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"archive" yaml:"archive"`

	Accounts struct {
		// File points at an optional YAML account-rule override file,
		// see LoadAccountRules.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"accounts" yaml:"accounts"`
}

// InitializeConfig builds the Config from defaults, config file, and
// environment.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.vis-to-fa")
	v.AddConfigPath(".vis-to-fa")
	v.AddConfigPath(".")

	v.SetEnvPrefix("VISFA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.directory", "archive")

	v.SetDefault("accounts.file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Archive.Enabled && config.Archive.Directory == "" {
		return fmt.Errorf("archive.directory must be set when archiving is enabled")
	}
	return nil
}
