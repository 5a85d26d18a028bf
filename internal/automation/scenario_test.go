package automation

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/visuals"
)

const demo = `
name: demo
description: drop a ball then shake the particles
steps:
  - sketch: bouncing-ball
    speed: 8
    frames: 20
    seed: 3
  - sketch: particle-system
    frames: 15
    pointer:
      - frame: 5
        x: 100
        y: 80
        pressed: true
      - frame: 10
        x: 120
        y: 90
    save: true
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, demo))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "demo" || len(s.Steps) != 2 {
		t.Fatalf("scenario = %+v", s)
	}
	if s.Steps[0].Speed != 8 || s.Steps[0].Seed != 3 {
		t.Errorf("step 1 = %+v", s.Steps[0])
	}
	if !s.Steps[1].Save || len(s.Steps[1].Pointer) != 2 {
		t.Errorf("step 2 = %+v", s.Steps[1])
	}
}

func TestLoadScenarioRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty", "name: nothing\n", ErrEmptyScenario},
		{"unknown sketch", "steps:\n  - sketch: pong\n", catalog.ErrUnknownSketch},
		{"knob out of range", "steps:\n  - sketch: pendulum\n    size: 11\n", nil},
		{"bad yaml", "steps: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStepInput(t *testing.T) {
	step := Step{Pointer: []PointerEvent{
		{Frame: 10, X: 5, Y: 6},
		{Frame: 2, X: 1, Y: 2, Pressed: true},
	}}
	if in := step.Input(0); in.MousePressed || in.MouseX != 0 {
		t.Errorf("frame 0 = %+v, want zero input", in)
	}
	if in := step.Input(4); !in.MousePressed || in.MouseX != 1 || in.MouseY != 2 {
		t.Errorf("frame 4 = %+v", in)
	}
	if in := step.Input(12); in.MousePressed || in.MouseX != 5 {
		t.Errorf("frame 12 = %+v", in)
	}
}

func TestRunScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, demo))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	base := visuals.RunOptions{Frames: 50, Width: 160, Height: 120, Seed: 1}
	results, err := RunScenario(context.Background(), s, visuals.NewRegistry(), base, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if got := len(results[0].Result.Rows); got != 20 {
		t.Errorf("step 1 frames = %d, want 20", got)
	}
	if got := len(results[1].Result.Rows); got != 15 {
		t.Errorf("step 2 frames = %d, want 15", got)
	}
	if results[1].Result.ID != "particle-system" {
		t.Errorf("step 2 id = %s", results[1].Result.ID)
	}
	if !strings.Contains(out.String(), "running step 2/2: particle-system") {
		t.Errorf("progress = %q", out.String())
	}
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Scenario{Steps: []Step{{Sketch: "pendulum", Frames: 10}}}
	results, err := RunScenario(ctx, s, visuals.NewRegistry(), visuals.RunOptions{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}
