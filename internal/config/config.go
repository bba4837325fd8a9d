package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by every front end.
// Values come from defaults, then an optional TOML file, then the environment.
type Config struct {
	Port          string  `toml:"port"`
	CanvasWidth   float64 `toml:"canvas_width"`
	CanvasHeight  float64 `toml:"canvas_height"`
	Padding       float64 `toml:"padding"`
	ReturnToStart bool    `toml:"return_to_start"`
	LogLevel      string  `toml:"log_level"`
}

func Default() Config {
	return Config{
		Port:          "8080",
		CanvasWidth:   500,
		CanvasHeight:  500,
		Padding:       50,
		ReturnToStart: false,
		LogLevel:      "info",
	}
}

// Load builds a Config. path may be empty; a missing .env file is not an error.
func Load(path string) (Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load config: read %q: %w", envFile, err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: decode %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must be non-empty")
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %vx%v", c.CanvasWidth, c.CanvasHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %v", c.Padding)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func applyEnv(cfg *Config) error {
	cfg.Port = Get("PORT", cfg.Port)
	cfg.LogLevel = Get("LOG_LEVEL", cfg.LogLevel)

	floats := []struct {
		key string
		dst *float64
	}{
		{"CANVAS_WIDTH", &cfg.CanvasWidth},
		{"CANVAS_HEIGHT", &cfg.CanvasHeight},
		{"PADDING", &cfg.Padding},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", f.key, v, err)
		}
		*f.dst = parsed
	}

	if v := os.Getenv("RETURN_TO_START"); v != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse RETURN_TO_START=%q: %w", v, err)
		}
		cfg.ReturnToStart = parsed
	}

	return nil
}
