package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/sketch"
	"github.com/san-kum/vidyut/internal/visuals"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("scenario has no steps")

// Scenario is a scripted sequence of headless sketch runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one run of a scenario. Zero knobs and frames take the defaults.
type Step struct {
	Sketch  string         `yaml:"sketch"`
	Speed   float64        `yaml:"speed"`
	Size    float64        `yaml:"size"`
	Frames  int            `yaml:"frames"`
	Seed    int64          `yaml:"seed"`
	Pointer []PointerEvent `yaml:"pointer"`
	Save    bool           `yaml:"save"`
}

// PointerEvent moves or presses the pointer from Frame onward, in canvas pixels.
type PointerEvent struct {
	Frame   int     `yaml:"frame"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Pressed bool    `yaml:"pressed"`
}

// StepResult pairs a step with the run it produced.
type StepResult struct {
	Step   Step
	Result *visuals.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate checks every step names a known sketch and keeps its knobs in range.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	var errs []error
	for i, step := range s.Steps {
		if _, err := catalog.Lookup(step.Sketch); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
		for name, v := range map[string]float64{"speed": step.Speed, "size": step.Size} {
			if v != 0 && (v < config.MinKnob || v > config.MaxKnob) {
				errs = append(errs, fmt.Errorf("step %d: %s %.1f outside [%.0f, %.0f]", i+1, name, v, config.MinKnob, config.MaxKnob))
			}
		}
		if step.Frames < 0 {
			errs = append(errs, fmt.Errorf("step %d: negative frames", i+1))
		}
	}
	return errors.Join(errs...)
}

// Input replays the pointer script. The latest event at or before a frame holds.
func (s Step) Input(frame int) sketch.Input {
	var in sketch.Input
	last := -1
	for _, ev := range s.Pointer {
		if ev.Frame <= frame && ev.Frame >= last {
			in = sketch.Input{MouseX: ev.X, MouseY: ev.Y, MousePressed: ev.Pressed}
			last = ev.Frame
		}
	}
	return in
}

// RunScenario plays the steps in order and stops at the first failure,
// returning the results gathered so far. Progress lines go to out.
func RunScenario(ctx context.Context, scenario *Scenario, registry *visuals.Registry, base visuals.RunOptions, out io.Writer) ([]StepResult, error) {
	if out == nil {
		out = io.Discard
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Sketch)

		opts := base
		opts.Settings = sketch.Settings{Speed: step.Speed, Size: step.Size}.WithDefaults()
		if step.Frames > 0 {
			opts.Frames = step.Frames
		}
		if step.Seed != 0 {
			opts.Seed = step.Seed
		}
		opts.Input = nil
		if len(step.Pointer) > 0 {
			opts.Input = step.Input
		}
		opts.Metrics = nil

		res, err := registry.Run(ctx, step.Sketch, opts)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, StepResult{Step: step, Result: res})
	}

	return results, nil
}
