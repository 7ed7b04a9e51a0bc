package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment settings of vsatool, read from VSATOOL_*
// variables. Command line flags take these as defaults and override them.
type Config struct {
	// Server is the RADIUS server address for send mode (host or host:port).
	Server string `envconfig:"SERVER"`

	// Secret is the shared secret for send mode.
	Secret string `envconfig:"SECRET" default:"testing123"`

	// Timeout bounds one send attempt including retries.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`

	// DictionaryDir names a directory of extra dictionary files (YAML or
	// JSON) merged over the compiled-in tables.
	DictionaryDir string `envconfig:"DICTIONARY_DIR"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vsatool", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return &cfg, nil
}
