package visuals

import (
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/sketch"
)

type pendulumState struct {
	pendulum *physics.Pendulum
	trail    *sketch.Trail[physics.Vec2]
	gravity  *sketch.Slider
	length   *sketch.Slider
	toggle   *sketch.Toggle
}

// Pendulum is the damped pendulum sketch with gravity and length sliders.
// Dragging moves the bob.
func Pendulum(p Params) sketch.Sketch {
	trailLen := p.TrailLength
	setup := func(ctx *sketch.Context) { pendulumSetup(ctx, trailLen) }
	return sketch.New(withPanel(p.Options, "pendulum"), setup, pendulumDraw, pendulumResize)
}

func pendulumSetup(ctx *sketch.Context, trailLen int) {
	p := physics.NewPendulum(ctx.Settings.Speed, ctx.Settings.Size, float64(ctx.Width), float64(ctx.Height))
	st := &pendulumState{
		pendulum: p,
		trail:    sketch.NewTrail[physics.Vec2](trailLen),
	}
	sketch.Register(ctx, stateKey, st)
	sketch.Register(ctx, "trail", st.trail)

	if ctx.Panel == nil {
		return
	}
	st.gravity = sketch.NewSlider(ctx.Panel, "GRAVITY", 0.1, 1.5, p.Gravity, 0.05, sketch.Fixed(2), p.SetGravity)
	st.length = sketch.NewSlider(ctx.Panel, "LENGTH", 50, 300, p.Length, 10, sketch.Fixed(0), p.SetLength)
	st.toggle = sketch.NewToggle(ctx.Panel, sketch.DefaultToggleOn, sketch.DefaultToggleOff, true,
		st.gravity.Track, st.gravity.Caption, st.length.Track, st.length.Caption)
	sketch.Register(ctx, "gravityControl", st.gravity)
	sketch.Register(ctx, "lengthControl", st.length)
	sketch.Register(ctx, "toggleControls", st.toggle)
}

func pendulumDraw(ctx *sketch.Context) {
	st, ok := sketch.Control[*pendulumState](ctx, stateKey)
	if !ok {
		return
	}
	s, p := ctx.Surface, st.pendulum
	rod := sketch.Gray(200)

	s.Background(black, 40.0/255)
	p.Step()
	bob := p.Bob()
	st.trail.Add(bob)

	pts := st.trail.Points()
	for i := 1; i < len(pts); i++ {
		a := sketch.TrailAlpha(i, len(pts), 50, 255) / 255
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, p.Color, a)
	}

	s.Line(p.Origin.X, p.Origin.Y, bob.X, bob.Y, rod, 1)
	s.Circle(p.Origin.X, p.Origin.Y, 10, rod, 1, true)
	sketch.Glow(s, bob.X, bob.Y, p.BobSize, p.Color)
	s.Circle(bob.X, bob.Y, p.BobSize, p.Color, 1, true)

	ctx.Report("Angle", p.Angle, 2)
	ctx.Report("Velocity", p.Velocity, 4)
	ctx.Report("Gravity", p.Gravity, 2)
	ctx.DrawReadings(20, 30, 20)

	if ctx.Input.MousePressed {
		p.DragTo(physics.Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY})
	}

	ctx.Record("X", bob.X)
	ctx.Record("Y", bob.Y)
	ctx.Record("Energy", p.Energy())
}

func pendulumResize(ctx *sketch.Context) {
	if st, ok := sketch.Control[*pendulumState](ctx, stateKey); ok {
		st.pendulum.Resize(float64(ctx.Width), float64(ctx.Height))
	}
}

func (st *pendulumState) Reconfigure(s sketch.Settings) {
	st.pendulum.Reconfigure(s.Speed, s.Size)
	if st.gravity != nil {
		st.gravity.SetValue(st.pendulum.Gravity)
		st.length.SetValue(st.pendulum.Length)
	}
}
