package visuals

import (
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/sketch"
)

type ballState struct {
	ball  *physics.Ball
	knobs *knobs
}

// Ball is the bouncing ball sketch.
func Ball(p Params) sketch.Sketch {
	return sketch.New(withPanel(p.Options, "bouncing-ball"), ballSetup, ballDraw, nil)
}

func ballSetup(ctx *sketch.Context) {
	st := &ballState{ball: physics.NewBall(ctx.Settings.Speed, ctx.Settings.Size, ctx.Rand)}
	st.knobs = newKnobs(ctx, "bouncing-ball", st.Reconfigure)
	sketch.Register(ctx, stateKey, st)
}

func ballDraw(ctx *sketch.Context) {
	st, ok := sketch.Control[*ballState](ctx, stateKey)
	if !ok {
		return
	}
	s, b := ctx.Surface, st.ball

	s.Background(black, 20.0/255)
	sketch.Glow(s, b.Pos.X, b.Pos.Y, b.Size, b.Color)
	s.Circle(b.Pos.X, b.Pos.Y, b.Size, b.Color, 1, true)

	b.Step(float64(ctx.Width), float64(ctx.Height))

	ctx.Record("X", b.Pos.X)
	ctx.Record("Y", b.Pos.Y)
	ctx.Record("Energy", b.Energy())
	ctx.Record("Bounces", float64(b.Bounces))
}

func (st *ballState) Reconfigure(s sketch.Settings) {
	st.ball.Reconfigure(s.Speed, s.Size)
	st.knobs.sync(s)
}
