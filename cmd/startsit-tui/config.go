package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gridironhq/startsit/internal/model"
)

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	DefaultYear int    `mapstructure:"default-year"`
	DefaultWeek int    `mapstructure:"default-week"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("STARTSIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("endpoint", model.DefaultEndpoint)
	v.SetDefault("default-year", model.DefaultSeason)
	v.SetDefault("default-week", model.DefaultWeek)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "startsit", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.DefaultWeek < 1 || cfg.DefaultWeek > 18 {
		return cfg, fmt.Errorf("invalid default-week: %d", cfg.DefaultWeek)
	}

	return cfg, nil
}
