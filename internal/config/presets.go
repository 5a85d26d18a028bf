package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Presets are per-sketch knob combinations, keyed by sketch id then name.
var Presets = map[string]map[string]*Config{
	"bouncing-ball": {
		"lazy":    {Speed: 1, Size: 8},
		"frantic": {Speed: 10, Size: 2},
		"giant":   {Speed: 4, Size: 10},
	},
	"wave-patterns": {
		"calm":   {Speed: 2, Size: 3},
		"storm":  {Speed: 9, Size: 10},
		"ripple": {Speed: 6, Size: 1},
	},
	"particle-system": {
		"sparse": {Speed: 3, Size: 1},
		"swarm":  {Speed: 8, Size: 10},
		"drift":  {Speed: 1, Size: 6},
	},
	"pendulum": {
		"moon":  {Speed: 1, Size: 5, Frames: 600},
		"short": {Speed: 5, Size: 1},
		"long":  {Speed: 5, Size: 10, Frames: 900},
	},
}

func GetPreset(id, preset string) *Config {
	sketchPresets, ok := Presets[id]
	if !ok {
		return nil
	}
	cfg, ok := sketchPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names of a sketch in sorted order.
func ListPresets(id string) []string {
	sketchPresets, ok := Presets[id]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sketchPresets))
	for name := range sketchPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the non-zero fields of a preset onto c.
func (c *Config) ApplyPreset(id, preset string) error {
	p := GetPreset(id, preset)
	if p == nil {
		return fmt.Errorf("%w: %s/%s", ErrUnknownPreset, id, preset)
	}
	c.Sketch = id
	if p.Speed != 0 {
		c.Speed = p.Speed
	}
	if p.Size != 0 {
		c.Size = p.Size
	}
	if p.Frames != 0 {
		c.Frames = p.Frames
	}
	return nil
}
