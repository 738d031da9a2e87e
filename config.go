package gizmo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gekko3d/gizmo/core"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSpace    = errors.New("invalid space")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrNegativeSnap    = errors.New("snap increment must not be negative")
	ErrInvalidWindow   = errors.New("window size must be positive")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the gizmo and viewer settings.
type Config struct {
	Style   core.Style    `yaml:"style"`
	Snap    core.Snap     `yaml:"snap"`
	Space   string        `yaml:"space"`
	Mode    string        `yaml:"mode"`
	Logging LoggingConfig `yaml:"logging"`
	Window  WindowConfig  `yaml:"window"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		Style: core.DefaultStyle(),
		Space: "local",
		Mode:  "translate",
		Logging: LoggingConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "gizmo",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveTo writes the config to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	for name, s := range map[string]core.AxisSnap{
		"translate": c.Snap.Translate,
		"rotate":    c.Snap.Rotate,
		"scale":     c.Snap.Scale,
	} {
		for _, axis := range core.Axes {
			if v, ok := s.Get(axis); ok && v < 0 {
				return fmt.Errorf("snap %s %s: %w", name, axis, ErrNegativeSnap)
			}
		}
	}
	if _, err := ParseSpace(c.Space); err != nil {
		return err
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	return nil
}

// ParseSpace accepts "local" or "world" in any case.
func ParseSpace(s string) (core.Space, error) {
	switch strings.ToLower(s) {
	case "local":
		return core.SpaceLocal, nil
	case "world":
		return core.SpaceWorld, nil
	}
	return core.SpaceLocal, fmt.Errorf("%w: %q", ErrInvalidSpace, s)
}

// ParseMode accepts "translate", "rotate" or "scale" in any case.
func ParseMode(s string) (core.Mode, error) {
	switch strings.ToLower(s) {
	case "translate":
		return core.ModeTranslate, nil
	case "rotate":
		return core.ModeRotate, nil
	case "scale":
		return core.ModeScale, nil
	}
	return core.ModeTranslate, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
