// Package config holds the settings of the radixsort command.
//
// Settings come from, in increasing priority: defaults, an optional YAML file,
// and environment variables. Command line flags are applied by the command.
//
//	max_word_length: 30
//	input_file: words.txt
//	output_file: sorted.txt
//	trace_level: info
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
)

// Environment variables overriding file settings.
const (
	EnvMaxLen = "RADIXSORT_MAX_LEN"
	EnvInput  = "RADIXSORT_INPUT"
	EnvOutput = "RADIXSORT_OUTPUT"
	EnvTrace  = "RADIXSORT_TRACE"
)

type Config struct {
	MaxWordLength int    `yaml:"max_word_length"`
	InputFile     string `yaml:"input_file"`
	OutputFile    string `yaml:"output_file"`
	TraceLevel    string `yaml:"trace_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxWordLength: radixsort.DefaultMaxLen,
		TraceLevel:    "error",
	}
}

// Load reads path (if not empty) over the defaults, then applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	maxLen, err := envInt(EnvMaxLen, cfg.MaxWordLength)
	if err != nil {
		return cfg, err
	}
	cfg.MaxWordLength = maxLen
	cfg.InputFile = envStr(EnvInput, cfg.InputFile)
	cfg.OutputFile = envStr(EnvOutput, cfg.OutputFile)
	cfg.TraceLevel = envStr(EnvTrace, cfg.TraceLevel)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxWordLength < 1 || c.MaxWordLength > 255 {
		return fmt.Errorf("max_word_length out of range (1..255): %d", c.MaxWordLength)
	}
	switch c.TraceLevel {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace_level %q (debug, info, error)", c.TraceLevel)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q is not an integer: %w", key, v, err)
	}
	return i, nil
}
