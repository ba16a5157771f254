// Package config resolves invocation defaults for the notox CLI.
//
// Precedence, lowest to highest: built-in defaults, the optional .notox.yml
// defaults file in the working directory, then environment variables (with
// an optional .env file loaded first). Command-line flags are applied on
// top by the cmd layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultsFile is the optional per-directory defaults file.
const DefaultsFile = ".notox.yml"

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the configuration struct.
var ErrParsingConfig = errors.New("failed to parse configuration")

// Config holds invocation defaults. Field values left unset by every source
// keep their built-in defaults.
type Config struct {
	// Workers bounds parallel traversal; 0 means one worker per CPU.
	Workers int `env:"NOTOX_WORKERS" yaml:"workers"`
	// Serial forces deterministic single-threaded traversal.
	Serial bool `env:"NOTOX_SERIAL" yaml:"serial"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"NOTOX_LOG_LEVEL" yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `env:"NOTOX_LOG_FORMAT" yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:   0,
		Serial:    false,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

var dotenvOnce sync.Once

// Load resolves the configuration from the defaults file and the
// environment.
func Load() (Config, error) {
	return load(DefaultsFile)
}

// load is Load with an explicit defaults-file path, for tests.
func load(defaultsPath string) (Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(defaultsPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", defaultsPath, err)
		}
	}

	dotenvOnce.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
