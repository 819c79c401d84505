package config

import (
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"50"`

	MinZoom  float64 `envconfig:"MIN_ZOOM" default:"0.1"`
	MaxZoom  float64 `envconfig:"MAX_ZOOM" default:"3.0"`
	ZoomStep float64 `envconfig:"ZOOM_STEP" default:"0.1"`

	DuplicateOffset float64 `envconfig:"DUPLICATE_OFFSET" default:"10"`

	// Properties given to every newly drawn element.
	DefaultStroke      string  `envconfig:"DEFAULT_STROKE" default:"#000000"`
	DefaultFill        string  `envconfig:"DEFAULT_FILL" default:"transparent"`
	DefaultFillStyle   string  `envconfig:"DEFAULT_FILL_STYLE" default:"hachure"`
	DefaultStrokeWidth float64 `envconfig:"DEFAULT_STROKE_WIDTH" default:"2"`
	DefaultRoughness   float64 `envconfig:"DEFAULT_ROUGHNESS" default:"1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
