package visuals

import (
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/sketch"
)

type particleState struct {
	system *physics.ParticleSystem
	knobs  *knobs
}

// Particles is the particle system sketch. Holding the pointer down
// inside the canvas attracts the particles.
func Particles(p Params) sketch.Sketch {
	return sketch.New(withPanel(p.Options, "particle-system"), particleSetup, particleDraw, particleResize)
}

func particleSetup(ctx *sketch.Context) {
	st := &particleState{system: physics.NewParticleSystem(
		ctx.Settings.Speed, ctx.Settings.Size,
		float64(ctx.Width), float64(ctx.Height), ctx.Rand,
	)}
	st.knobs = newKnobs(ctx, "particle-system", st.Reconfigure)
	sketch.Register(ctx, stateKey, st)
}

func particleDraw(ctx *sketch.Context) {
	st, ok := sketch.Control[*particleState](ctx, stateKey)
	if !ok {
		return
	}
	s, ps := ctx.Surface, st.system
	white := sketch.Gray(255)
	pointer := physics.Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}

	s.Background(black, 20.0/255)
	if ctx.Input.MousePressed &&
		pointer.X > 0 && pointer.X < float64(ctx.Width) &&
		pointer.Y > 0 && pointer.Y < float64(ctx.Height) {
		s.Circle(pointer.X, pointer.Y, 30, white, 1, false)
	}

	ps.Step(pointer, ctx.Input.MousePressed)

	for _, p := range ps.Particles {
		s.Circle(p.Pos.X, p.Pos.Y, p.Size, p.Color, p.Alpha(), true)
	}
	for _, l := range ps.Links() {
		a, b := ps.Particles[l.A].Pos, ps.Particles[l.B].Pos
		s.Line(a.X, a.Y, b.X, b.Y, white, l.Alpha)
	}

	ctx.Record("Energy", ps.Energy())
	ctx.Record("Particles", float64(len(ps.Particles)))
	ctx.Record("Respawned", float64(ps.Respawned))
}

func particleResize(ctx *sketch.Context) {
	if st, ok := sketch.Control[*particleState](ctx, stateKey); ok {
		st.system.Resize(float64(ctx.Width), float64(ctx.Height))
	}
}

func (st *particleState) Reconfigure(s sketch.Settings) {
	st.system.Reconfigure(s.Speed, s.Size)
	st.knobs.sync(s)
}
