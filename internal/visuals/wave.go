package visuals

import (
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/sketch"
)

type waveState struct {
	wave  *physics.Wave
	knobs *knobs
}

// Wave is the layered wave sketch.
func Wave(p Params) sketch.Sketch {
	return sketch.New(withPanel(p.Options, "wave-patterns"), waveSetup, waveDraw, nil)
}

func waveSetup(ctx *sketch.Context) {
	st := &waveState{wave: physics.NewWave(ctx.Settings.Speed, ctx.Settings.Size)}
	st.knobs = newKnobs(ctx, "wave-patterns", st.Reconfigure)
	sketch.Register(ctx, stateKey, st)
}

func waveDraw(ctx *sketch.Context) {
	st, ok := sketch.Control[*waveState](ctx, stateKey)
	if !ok {
		return
	}
	s, w := ctx.Surface, st.wave
	width, height := float64(ctx.Width), float64(ctx.Height)

	s.Background(black, 40.0/255)
	w.Step()

	for i, layer := range w.Layers {
		pts := w.Polyline(i, width, height)
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j], ys[j] = p.X, p.Y
		}
		sketch.Polyline(s, xs, ys, layer.Color, 1)
	}

	mid := width / 2
	y := w.Sample(0, mid, w.Baseline(0, height))
	ctx.Record("Time", w.Time)
	ctx.Record("X", mid)
	ctx.Record("Y", y)
	ctx.Record("Displacement", y-w.Baseline(0, height))
}

func (st *waveState) Reconfigure(s sketch.Settings) {
	st.wave.Reconfigure(s.Speed, s.Size)
	st.knobs.sync(s)
}
