// Package config loads moodmeal settings from defaults, an optional YAML
// file and MOODMEAL_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "MOODMEAL_"

// PathEnvVar names an explicit config file.
const PathEnvVar = EnvPrefix + "CONFIG"

// DefaultPaths are searched in order when no file is named.
var DefaultPaths = []string{"moodmeal.yaml", "moodmeal.yml"}

type Config struct {
	Latency LatencyConfig `koanf:"latency"`
	Catalog CatalogConfig `koanf:"catalog"`
	Log     LogConfig     `koanf:"log"`
	Random  RandomConfig  `koanf:"random"`
}

// LatencyConfig holds the simulated delay of each async call.
type LatencyConfig struct {
	Image     time.Duration `koanf:"image" validate:"gte=0s"`
	Text      time.Duration `koanf:"text" validate:"gte=0s"`
	Voice     time.Duration `koanf:"voice" validate:"gte=0s"`
	Recommend time.Duration `koanf:"recommend" validate:"gte=0s"`
	Lookup    time.Duration `koanf:"lookup" validate:"gte=0s"`
}

// CatalogConfig selects the recipe source. DB wins over Path; with neither
// set the built-in catalog is used.
type CatalogConfig struct {
	Path string `koanf:"path"`
	DB   string `koanf:"db"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=console json"`
	// File receives logs while the TUI owns the terminal. Empty means the
	// default temp-dir file.
	File string `koanf:"file"`
}

// RandomConfig seeds the mood simulators. Zero seeds from the clock.
type RandomConfig struct {
	Seed int64 `koanf:"seed"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Latency: LatencyConfig{
			Image:     1500 * time.Millisecond,
			Text:      1000 * time.Millisecond,
			Voice:     1200 * time.Millisecond,
			Recommend: 1800 * time.Millisecond,
			Lookup:    800 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load builds the configuration. path names a YAML file and may be empty,
// in which case MOODMEAL_CONFIG and then DefaultPaths are tried. A named
// file that does not exist is an error; a missing default file is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if p := findFile(path); p != "" {
		if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", p, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps MOODMEAL_LATENCY_TEXT to latency.text.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func findFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
