package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/vidyut/internal/sketch"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Speed != 5 || cfg.Size != 5 {
		t.Errorf("expected speed and size 5, got %f %f", cfg.Speed, cfg.Size)
	}
	if cfg.LoadingDelay != 1500*time.Millisecond {
		t.Errorf("expected 1500ms loading delay, got %s", cfg.LoadingDelay)
	}
	if cfg.TrailLength != 50 {
		t.Errorf("expected trail length 50, got %d", cfg.TrailLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidyut.yaml")
	cfg := DefaultConfig()
	cfg.Speed = 8
	cfg.PanelTheme = sketch.ThemeDark
	cfg.LiveTuning = true
	cfg.LoadingDelay = 250 * time.Millisecond

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Speed != 8 || loaded.PanelTheme != sketch.ThemeDark || !loaded.LiveTuning {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.LoadingDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", loaded.LoadingDelay)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidyut.yaml")
	if err := os.WriteFile(path, []byte("speed: 3\nloading_delay: 2s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Speed != 3 {
		t.Errorf("expected speed 3, got %f", cfg.Speed)
	}
	if cfg.Size != 5 || cfg.FPS != DefaultFPS {
		t.Errorf("expected defaults kept, got size %f fps %d", cfg.Size, cfg.FPS)
	}
	if cfg.LoadingDelay != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.LoadingDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"speed low", func(c *Config) { c.Speed = 0 }, false},
		{"size high", func(c *Config) { c.Size = 11 }, false},
		{"fps", func(c *Config) { c.FPS = 0 }, false},
		{"panel theme", func(c *Config) { c.PanelTheme = "neon" }, false},
		{"panel position", func(c *Config) { c.PanelPosition = "center" }, false},
		{"negative delay", func(c *Config) { c.LoadingDelay = -time.Second }, false},
		{"zero delay", func(c *Config) { c.LoadingDelay = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Speed != 1 {
		t.Errorf("expected speed 1, got %f", cfg.Speed)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("pendulum", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "moon")
	if cfg != nil {
		t.Error("expected nil for nonexistent sketch")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("pendulum")
	if len(presets) != 3 || presets[0] != "long" {
		t.Errorf("expected sorted pendulum presets, got %v", presets)
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent sketch")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.ApplyPreset("pendulum", "long"); err != nil {
		t.Fatal(err)
	}
	if cfg.Sketch != "pendulum" || cfg.Size != 10 || cfg.Frames != 900 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Speed != 5 {
		t.Errorf("expected speed kept at 5, got %f", cfg.Speed)
	}

	if err := cfg.ApplyPreset("pendulum", "nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestEveryPresetValidates(t *testing.T) {
	for id := range Presets {
		for _, name := range ListPresets(id) {
			cfg := DefaultConfig()
			if err := cfg.ApplyPreset(id, name); err != nil {
				t.Fatal(err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", id, name, err)
			}
		}
	}
}
