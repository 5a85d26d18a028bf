package visuals

import (
	"errors"
	"testing"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/render"
	"github.com/san-kum/vidyut/internal/sketch"
)

func TestRegistryCoversCatalog(t *testing.T) {
	r := NewRegistry()

	ids := r.List()
	if len(ids) != len(catalog.Sketches) {
		t.Fatalf("expected %d modules, got %d", len(catalog.Sketches), len(ids))
	}
	for i, s := range catalog.Sketches {
		if ids[i] != s.ID {
			t.Errorf("position %d: expected %s, got %s", i, s.ID, ids[i])
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Get("pong", Params{})
	if !errors.Is(err, catalog.ErrUnknownSketch) {
		t.Errorf("expected ErrUnknownSketch, got %v", err)
	}
}

func TestModulesDrawAndReport(t *testing.T) {
	r := NewRegistry()

	for _, id := range r.List() {
		t.Run(id, func(t *testing.T) {
			sk, err := r.Get(id, Params{})
			if err != nil {
				t.Fatal(err)
			}
			host := render.NewHeadless(320, 240, 1)
			inst := sk.Instantiate(host)

			if inst.Context().Panel == nil {
				t.Fatal("expected a control panel")
			}
			if len(inst.Context().Panel.Sliders()) != 2 {
				t.Errorf("expected 2 sliders, got %d", len(inst.Context().Panel.Sliders()))
			}
			for i := 0; i < 5; i++ {
				if !inst.Frame(sketch.Input{}) {
					t.Fatalf("frame %d did not draw", i)
				}
			}
			if len(inst.Context().Readings()) == 0 {
				t.Error("expected telemetry readings")
			}
			if host.Canvas().Lit() == 0 {
				t.Error("expected something on the canvas")
			}
		})
	}
}

func TestPanelTitle(t *testing.T) {
	sk, _ := NewRegistry().Get("pendulum", Params{})
	inst := sk.Instantiate(render.NewHeadless(320, 240, 1))

	if got := inst.Context().Panel.Title(); got != "PENDULUM PHYSICS" {
		t.Errorf("expected PENDULUM PHYSICS, got %q", got)
	}
}

func TestReconfigureLive(t *testing.T) {
	sk, _ := NewRegistry().Get("bouncing-ball", Params{})
	inst := sk.Instantiate(render.NewHeadless(320, 240, 1))
	inst.Frame(sketch.Input{})

	if !Reconfigure(inst, sketch.Settings{Speed: 10, Size: 2}) {
		t.Fatal("expected reconfigure to apply")
	}

	st, _ := sketch.Control[*ballState](inst.Context(), stateKey)
	if st.ball.Size != 30 {
		t.Errorf("expected ball size 30, got %f", st.ball.Size)
	}
	if st.knobs.speed.Value() != 10 || st.knobs.size.Value() != 2 {
		t.Errorf("expected sliders synced, got %f %f", st.knobs.speed.Value(), st.knobs.size.Value())
	}
	if inst.Context().Settings.Speed != 10 {
		t.Errorf("expected context settings updated, got %f", inst.Context().Settings.Speed)
	}

	inst.Remove()
	if Reconfigure(inst, sketch.Settings{}) {
		t.Error("expected removed instance to refuse reconfigure")
	}
}

func TestKnobSliderRebuildsPhysics(t *testing.T) {
	sk, _ := NewRegistry().Get("particle-system", Params{})
	inst := sk.Instantiate(render.NewHeadless(320, 240, 1))

	st, _ := sketch.Control[*particleState](inst.Context(), stateKey)
	st.knobs.size.Input(1)

	if len(st.system.Particles) != 60 {
		t.Errorf("expected 60 particles, got %d", len(st.system.Particles))
	}
	if inst.Context().Settings.Size != 1 {
		t.Errorf("expected size setting 1, got %f", inst.Context().Settings.Size)
	}
}

func TestKnobSliderKeepsOtherKnob(t *testing.T) {
	sk, _ := NewRegistry().Get("bouncing-ball", Params{
		Options: sketch.Options{Settings: sketch.Settings{Speed: 5.5, Size: 5}},
	})
	inst := sk.Instantiate(render.NewHeadless(320, 240, 1))

	st, _ := sketch.Control[*ballState](inst.Context(), stateKey)
	st.knobs.size.Nudge(1)

	if got := inst.Context().Settings.Speed; got != 5.5 {
		t.Errorf("size nudge changed speed to %f", got)
	}
	if got := inst.Context().Settings.Size; got != 6 {
		t.Errorf("expected size 6, got %f", got)
	}
}

func TestPendulumSliders(t *testing.T) {
	sk, _ := NewRegistry().Get("pendulum", Params{})
	inst := sk.Instantiate(render.NewHeadless(320, 240, 1))
	ctx := inst.Context()

	length, ok := sketch.Control[*sketch.Slider](ctx, "lengthControl")
	if !ok {
		t.Fatal("expected lengthControl to be registered")
	}
	length.Input(200)

	st, _ := sketch.Control[*pendulumState](ctx, stateKey)
	if st.pendulum.Length != 200 || st.pendulum.BobSize != 30 {
		t.Errorf("expected length 200 bob 30, got %f %f", st.pendulum.Length, st.pendulum.BobSize)
	}
	if length.Label() != "LENGTH: 200" {
		t.Errorf("expected label LENGTH: 200, got %q", length.Label())
	}

	toggle, _ := sketch.Control[*sketch.Toggle](ctx, "toggleControls")
	toggle.Press()
	if length.Track.Visible() || st.gravity.Caption.Visible() {
		t.Error("expected sliders hidden after toggle")
	}
}

func TestPendulumDrag(t *testing.T) {
	sk, _ := NewRegistry().Get("pendulum", Params{})
	inst := sk.Instantiate(render.NewHeadless(400, 400, 1))

	inst.Frame(sketch.Input{MouseX: 300, MouseY: 100, MousePressed: true})

	st, _ := sketch.Control[*pendulumState](inst.Context(), stateKey)
	if st.pendulum.Velocity != 0 {
		t.Errorf("expected drag to stop the bob, got %f", st.pendulum.Velocity)
	}
}
