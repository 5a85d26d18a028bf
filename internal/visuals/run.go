package visuals

import (
	"context"
	"fmt"

	"github.com/san-kum/vidyut/internal/metrics"
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/render"
	"github.com/san-kum/vidyut/internal/sketch"
)

const (
	DefaultFrames = 300
	DefaultWidth  = 640
	DefaultHeight = 480
)

// RunOptions drive an off-screen run.
type RunOptions struct {
	Settings    sketch.Settings
	Frames      int
	Width       int
	Height      int
	Seed        int64
	Scale       float64
	TrailLength int
	// Input supplies the pointer for each frame. Nil means no pointer.
	Input       func(frame int) sketch.Input
	// Metrics observe every frame. Nil picks metrics.Default(id).
	Metrics     []metrics.Metric
}

// Result is the telemetry of a headless run. Rows hold one value per
// column, the first column being the frame number.
type Result struct {
	ID      string
	Columns []string
	Rows    [][]float64
	Trace   []physics.Vec2
	Metrics map[string]float64
	Canvas  *render.Canvas
}

// Column returns the series recorded under name.
func (r *Result) Column(name string) ([]float64, bool) {
	for i, c := range r.Columns {
		if c == name {
			out := make([]float64, len(r.Rows))
			for j, row := range r.Rows {
				out[j] = row[i]
			}
			return out, true
		}
	}
	return nil, false
}

// Run plays a sketch on a headless Braille canvas for a fixed number of
// frames and collects every frame's readings.
func (r *Registry) Run(ctx context.Context, id string, opts RunOptions) (*Result, error) {
	if opts.Frames <= 0 {
		opts.Frames = DefaultFrames
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	sk, err := r.Get(id, Params{
		Options: sketch.Options{
			Settings: opts.Settings,
			Seed:     opts.Seed,
			Panel:    &sketch.PanelOptions{Hidden: true},
		},
		TrailLength: opts.TrailLength,
	})
	if err != nil {
		return nil, err
	}

	host := render.NewHeadless(opts.Width, opts.Height, opts.Scale)
	inst := sk.Instantiate(host)
	defer inst.Remove()

	ms := opts.Metrics
	if ms == nil {
		ms = metrics.Default(id)
	}
	for _, m := range ms {
		m.Reset()
	}

	res := &Result{ID: id, Canvas: host.Canvas()}
	index := map[string]int{}

	for frame := 0; frame < opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			res.Metrics = metrics.Collect(ms)
			return res, fmt.Errorf("run %s stopped at frame %d: %w", id, frame, err)
		}
		var in sketch.Input
		if opts.Input != nil {
			in = opts.Input(frame)
		}
		inst.Frame(in)

		readings := inst.Context().Readings()
		for _, m := range ms {
			m.Observe(readings)
		}
		if frame == 0 {
			res.Columns = append(res.Columns, "frame")
			for _, rd := range readings {
				index[rd.Name] = len(res.Columns)
				res.Columns = append(res.Columns, rd.Name)
			}
		}

		row := make([]float64, len(res.Columns))
		row[0] = float64(frame)
		var pos physics.Vec2
		var hasX, hasY bool
		for _, rd := range readings {
			if i, ok := index[rd.Name]; ok {
				row[i] = rd.Value
			}
			switch rd.Name {
			case "X":
				pos.X, hasX = rd.Value, true
			case "Y":
				pos.Y, hasY = rd.Value, true
			}
		}
		res.Rows = append(res.Rows, row)
		if hasX && hasY {
			res.Trace = append(res.Trace, pos)
		}
	}
	res.Metrics = metrics.Collect(ms)
	return res, nil
}
