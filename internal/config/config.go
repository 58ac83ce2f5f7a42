// Package config resolves the CLI settings from the environment.
//
// Sources, lowest precedence first:
//  1. Default() values;
//  2. an optional .env file (godotenv; a missing file is not an error);
//  3. process environment variables prefixed with TSP_.
//
// Command-line flags override the result; that happens in cmd/.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// envPrefix selects the variables this package reads.
const envPrefix = "TSP_"

// ErrInvalidConfig is returned when a decoded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI settings.
type Config struct {
	// CitiesFile is where generate writes and solve reads the city set.
	CitiesFile string `mapstructure:"TSP_CITIES_FILE"`
	// TraceFile receives one line per tested tour.
	TraceFile string `mapstructure:"TSP_TRACE_FILE"`
	// SummaryFile receives the best tour with per-edge distances.
	SummaryFile string `mapstructure:"TSP_SUMMARY_FILE"`
	// Interval bounds generated coordinates to [0, Interval).
	Interval int `mapstructure:"TSP_INTERVAL"`
	// MaxCities caps generate --count; brute force grows as n!.
	MaxCities int `mapstructure:"TSP_MAX_CITIES"`
	// Seed for generation; 0 means a fresh time-based seed per run.
	Seed int64 `mapstructure:"TSP_SEED"`
	// Quiet suppresses per-tour console lines.
	Quiet bool `mapstructure:"TSP_QUIET"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CitiesFile:  "cities.txt",
		TraceFile:   "paths.txt",
		SummaryFile: "best_path.txt",
		Interval:    100,
		MaxCities:   8,
	}
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then decodes it. Missing files are ignored; the returned bool
// reports whether any file was loaded.
func Load(envFiles ...string) (Config, bool, error) {
	loaded := true
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, fmt.Errorf("config: load env file: %w", err)
		}
		loaded = false
	}

	cfg, err := FromEnviron(os.Environ())

	return cfg, loaded, err
}

// FromEnviron decodes KEY=VALUE pairs (as returned by os.Environ) on top of
// Default(). Unknown TSP_ keys are ignored; empty values keep the default.
func FromEnviron(environ []string) (Config, error) {
	values := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) || value == "" {
			continue
		}
		values[key] = value
	}

	cfg := Default()
	if err := mapstructure.WeakDecode(values, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Interval < 1 {
		return fmt.Errorf("%w: TSP_INTERVAL must be ≥ 1, got %d", ErrInvalidConfig, c.Interval)
	}
	if c.MaxCities < 1 {
		return fmt.Errorf("%w: TSP_MAX_CITIES must be ≥ 1, got %d", ErrInvalidConfig, c.MaxCities)
	}
	if c.CitiesFile == "" {
		return fmt.Errorf("%w: TSP_CITIES_FILE is empty", ErrInvalidConfig)
	}

	return nil
}
