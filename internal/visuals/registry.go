// Package visuals binds the physics models to sketches: each module owns
// its setup, draw and resize callbacks and its on-canvas controls.
package visuals

import (
	"fmt"
	"strings"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/sketch"
)

const stateKey = "state"

// Params are the sketch options plus module tuning that is not a UI knob.
type Params struct {
	sketch.Options
	TrailLength int
}

// Factory builds a sketch for one visualization.
type Factory func(p Params) sketch.Sketch

type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.factories["bouncing-ball"] = Ball
	r.factories["wave-patterns"] = Wave
	r.factories["particle-system"] = Particles
	r.factories["pendulum"] = Pendulum

	return r
}

func (r *Registry) Get(id string, p Params) (sketch.Sketch, error) {
	fn, ok := r.factories[id]
	if !ok {
		return sketch.Sketch{}, fmt.Errorf("%w: %s", catalog.ErrUnknownSketch, id)
	}
	return fn(p), nil
}

// List returns the registered ids in catalog order.
func (r *Registry) List() []string {
	var ids []string
	for _, id := range catalog.IDs() {
		if _, ok := r.factories[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reconfigurable is implemented by every module's state.
type Reconfigurable interface {
	Reconfigure(s sketch.Settings)
}

// Reconfigure pushes new knobs into a live instance without rebuilding
// it. It reports false when the instance has no tunable state.
func Reconfigure(inst *sketch.Instance, s sketch.Settings) bool {
	if inst == nil || inst.Removed() {
		return false
	}
	ctx := inst.Context()
	st, ok := sketch.Control[Reconfigurable](ctx, stateKey)
	if !ok {
		return false
	}
	s = s.WithDefaults()
	s.Playing = ctx.Settings.Playing
	ctx.Settings = s
	st.Reconfigure(s)
	return true
}

// withPanel makes sure the sketch gets a panel titled after the catalog
// entry.
func withPanel(o sketch.Options, id string) sketch.Options {
	panel := sketch.PanelOptions{}
	if o.Panel != nil {
		panel = *o.Panel
	}
	if panel.Title == "" {
		if s, err := catalog.Lookup(id); err == nil {
			panel.Title = strings.ToUpper(s.Title)
		}
	}
	o.Panel = &panel
	return o
}

// knobs are the speed and size sliders plus their show/hide toggle.
type knobs struct {
	speed, size *sketch.Slider
	toggle      *sketch.Toggle
}

func newKnobs(ctx *sketch.Context, id string, apply func(sketch.Settings)) *knobs {
	if ctx.Panel == nil {
		return nil
	}
	s, _ := catalog.Lookup(id)
	k := &knobs{}
	// a slider writes back only its own knob
	k.speed = sketch.NewSlider(ctx.Panel, s.SpeedLabel, 1, 10, ctx.Settings.Speed, 1, sketch.Fixed(0), func(v float64) {
		ctx.Settings.Speed = v
		apply(ctx.Settings)
	})
	k.size = sketch.NewSlider(ctx.Panel, s.SizeLabel, 1, 10, ctx.Settings.Size, 1, sketch.Fixed(0), func(v float64) {
		ctx.Settings.Size = v
		apply(ctx.Settings)
	})
	k.toggle = sketch.NewToggle(ctx.Panel, sketch.DefaultToggleOn, sketch.DefaultToggleOff, true,
		k.speed.Caption, k.speed.Track, k.size.Caption, k.size.Track)
	return k
}

func (k *knobs) sync(s sketch.Settings) {
	if k == nil {
		return
	}
	k.speed.SetValue(s.Speed)
	k.size.SetValue(s.Size)
}

var black = sketch.Gray(0)
