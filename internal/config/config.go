package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/san-kum/vidyut/internal/sketch"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS          = 30
	DefaultFrames       = 300
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultTheme        = "arcade"
	DefaultLoadingDelay = 1500 * time.Millisecond

	MinKnob = 1.0
	MaxKnob = 10.0
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Sketch        string          `yaml:"sketch"`
	Speed         float64         `yaml:"speed"`
	Size          float64         `yaml:"size"`
	FPS           int             `yaml:"fps"`
	Theme         string          `yaml:"theme"`
	PanelTheme    sketch.Theme    `yaml:"panel_theme"`
	PanelPosition sketch.Position `yaml:"panel_position"`
	TrailLength   int             `yaml:"trail_length"`
	LoadingDelay  time.Duration   `yaml:"loading_delay"`
	LiveTuning    bool            `yaml:"live_tuning"`
	Seed          int64           `yaml:"seed"`
	Frames        int             `yaml:"frames"`
	Width         int             `yaml:"width"`
	Height        int             `yaml:"height"`
	PixelScale    float64         `yaml:"pixel_scale"`
	Font          string          `yaml:"font,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Sketch:        "bouncing-ball",
		Speed:         sketch.DefaultSpeed,
		Size:          sketch.DefaultSize,
		FPS:           DefaultFPS,
		Theme:         DefaultTheme,
		PanelTheme:    sketch.ThemeRetro,
		PanelPosition: sketch.BottomLeft,
		TrailLength:   sketch.DefaultTrailLength,
		LoadingDelay:  DefaultLoadingDelay,
		Frames:        DefaultFrames,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Settings are the knobs handed to a sketch.
func (c *Config) Settings() sketch.Settings {
	return sketch.Settings{Speed: c.Speed, Size: c.Size}
}

// Panel are the on-canvas panel options.
func (c *Config) Panel() *sketch.PanelOptions {
	return &sketch.PanelOptions{Theme: c.PanelTheme, Position: c.PanelPosition}
}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var errs []error
	knob := func(name string, v float64) {
		if v < MinKnob || v > MaxKnob {
			errs = append(errs, fmt.Errorf("%s %.1f outside [%.0f, %.0f]", name, v, MinKnob, MaxKnob))
		}
	}
	knob("speed", c.Speed)
	knob("size", c.Size)

	if c.FPS < 1 || c.FPS > 120 {
		errs = append(errs, fmt.Errorf("fps %d outside [1, 120]", c.FPS))
	}
	if c.PanelTheme != "" && !slices.Contains(sketch.Themes, c.PanelTheme) {
		errs = append(errs, fmt.Errorf("unknown panel theme %q", c.PanelTheme))
	}
	switch c.PanelPosition {
	case "", sketch.TopLeft, sketch.TopRight, sketch.BottomLeft, sketch.BottomRight:
	default:
		errs = append(errs, fmt.Errorf("unknown panel position %q", c.PanelPosition))
	}
	if c.TrailLength < 0 {
		errs = append(errs, fmt.Errorf("trail_length %d is negative", c.TrailLength))
	}
	if c.LoadingDelay < 0 {
		errs = append(errs, fmt.Errorf("loading_delay %s is negative", c.LoadingDelay))
	}
	if c.Frames < 0 || c.Width < 0 || c.Height < 0 {
		errs = append(errs, errors.New("frames, width and height must not be negative"))
	}
	if c.PixelScale < 0 {
		errs = append(errs, fmt.Errorf("pixel_scale %.2f is negative", c.PixelScale))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
