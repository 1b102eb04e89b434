// Package config loads the editor's TOML settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// EnvScale pins the scale factor, overriding the file.
const EnvScale = "NOISEG8_SCALE"

type Config struct {
	Window WindowConfig `toml:"window"`
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Scale of 0 follows the system; anything else is a fixed factor.
	Scale float64 `toml:"scale"`
	VSync bool    `toml:"vsync"`
}

type EditorConfig struct {
	Background          string  `toml:"background"`
	PointsPerScrollLine float32 `toml:"points_per_scroll_line"`
	MeterDecayMs        float64 `toml:"meter_decay_ms"`
	// Font is a TTF/OTF path; empty uses the built-in bitmap font.
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

// Default matches the size the editor has always opened at.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "NoiseG8",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Editor: EditorConfig{
			Background:          "#000000",
			PointsPerScrollLine: 50,
			MeterDecayMs:        150,
			FontSize:            14,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// Environment overrides are applied and the result validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies NOISEG8_SCALE when set.
func (c *Config) ApplyEnvOverrides() error {
	v, ok := os.LookupEnv(EnvScale)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvScale, v, err)
	}
	c.Window.Scale = f
	return nil
}

// Validate checks ranges and formats.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window size %vx%v must be at least 1x1", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale < 0 {
		errs = append(errs, fmt.Errorf("window scale %v must not be negative", c.Window.Scale))
	}
	if _, err := colors.ParseHex(c.Editor.Background); err != nil {
		errs = append(errs, err)
	}
	if c.Editor.PointsPerScrollLine <= 0 {
		errs = append(errs, fmt.Errorf("points_per_scroll_line %v must be positive", c.Editor.PointsPerScrollLine))
	}
	if c.Editor.MeterDecayMs <= 0 {
		errs = append(errs, fmt.Errorf("meter_decay_ms %v must be positive", c.Editor.MeterDecayMs))
	}
	if c.Editor.Font != "" && c.Editor.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %v must be positive", c.Editor.FontSize))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q: want text or json", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// WindowOptions converts the [window] section.
func (c *Config) WindowOptions() core.WindowOptions {
	scale := core.SystemScaleFactor()
	if c.Window.Scale > 0 {
		scale = core.FixedScale(c.Window.Scale)
	}
	return core.WindowOptions{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Scale:  scale,
		VSync:  c.Window.VSync,
	}
}

// Background is the parsed editor background; invalid values fall back to black.
func (c *Config) Background() colors.Color {
	col, err := colors.ParseHex(c.Editor.Background)
	if err != nil {
		return colors.Black
	}
	return col
}

// LogLevel is the parsed [log] level.
func (c *Config) LogLevel() slog.Level {
	lvl, _ := parseLevel(c.Log.Level)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
