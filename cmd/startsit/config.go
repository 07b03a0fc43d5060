package main

import "github.com/gridironhq/startsit/internal/model"

const (
	defaultAPIPort  = model.DefaultAPIPort
	defaultBindHost = "0.0.0.0"
)

// appConfig holds the service configuration.
type appConfig struct {
	APIPort   int    `mapstructure:"api-port"`
	APIAddr   string `mapstructure:"api-addr"`
	StatSheet string `mapstructure:"stat-sheet"`

	ConfigPath string
}
