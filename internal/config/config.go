package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"janggi/internal/script"
)

type Config struct {
	LogLevel  string `json:"log_level"`
	Encoding  string `json:"encoding"`
	ShowBoard bool   `json:"show_board"`
	Parallel  int    `json:"parallel"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		Encoding:  string(script.UTF8),
		ShowBoard: true,
		Parallel:  4,
	}
}

// Load reads a JSON config file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := script.ParseEncoding(c.Encoding); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel: must be at least 1, got %d", c.Parallel)
	}
	return nil
}

// ScriptEncoding is the validated Encoding as a script.Encoding.
func (c Config) ScriptEncoding() script.Encoding {
	enc, err := script.ParseEncoding(c.Encoding)
	if err != nil {
		return script.UTF8
	}
	return enc
}
