package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the environment variables the pipeline honours.
type Env struct {
	NodeEnv   string `env:"NODE_ENV"`
	IconLimit bool   `env:"ICON_LIMIT"`
	LogLevel  string `env:"ICONFORGE_LOG_LEVEL"`
	Workers   int    `env:"ICONFORGE_DTS_WORKERS"`
}

// ParseEnv loads an optional .env file and parses the environment.
func ParseEnv() (Env, error) {
	_ = godotenv.Load()
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overlays environment settings onto the config.
func (c *Config) ApplyEnv(e Env) {
	if strings.EqualFold(e.NodeEnv, "development") || e.IconLimit {
		c.Options.Dev = true
	}
	setString(&c.Options.LogLevel, e.LogLevel)
	if e.Workers > 0 {
		c.Declarations.Workers = e.Workers
	}
}
