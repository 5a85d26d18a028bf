// Package metrics summarizes per-frame sketch telemetry into scalars.
package metrics

import (
	"math"

	"github.com/san-kum/vidyut/internal/sketch"
)

// Metric folds a stream of frame readings into one value.
type Metric interface {
	Name() string
	Observe(readings []sketch.Reading)
	Value() float64
	Reset()
}

func lookup(readings []sketch.Reading, name string) (float64, bool) {
	for _, r := range readings {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}

// Mean averages one reading over every frame that reported it.
type Mean struct {
	name    string
	column  string
	sum     float64
	samples int
}

func NewMean(name, column string) *Mean {
	return &Mean{name: name, column: column}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(readings []sketch.Reading) {
	if v, ok := lookup(readings, m.column); ok {
		m.sum += v
		m.samples++
	}
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// Peak tracks the largest magnitude of one reading.
type Peak struct {
	name   string
	column string
	peak   float64
}

func NewPeak(name, column string) *Peak {
	return &Peak{name: name, column: column}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(readings []sketch.Reading) {
	if v, ok := lookup(readings, p.column); ok {
		p.peak = math.Max(p.peak, math.Abs(v))
	}
}

func (p *Peak) Value() float64 { return p.peak }
func (p *Peak) Reset()         { p.peak = 0 }

// Last keeps the most recent value of one reading.
type Last struct {
	name   string
	column string
	last   float64
}

func NewLast(name, column string) *Last {
	return &Last{name: name, column: column}
}

func (l *Last) Name() string { return l.name }

func (l *Last) Observe(readings []sketch.Reading) {
	if v, ok := lookup(readings, l.column); ok {
		l.last = v
	}
}

func (l *Last) Value() float64 { return l.last }
func (l *Last) Reset()         { l.last = 0 }

// Default returns the metrics worth reporting for a sketch id.
func Default(id string) []Metric {
	switch id {
	case "bouncing-ball":
		return []Metric{
			NewMean("mean_energy", "Energy"),
			NewLast("bounces", "Bounces"),
			NewActivity("activity", "X"),
		}
	case "wave-patterns":
		return []Metric{
			NewPeak("peak_displacement", "Displacement"),
			NewActivity("activity", "Y"),
		}
	case "particle-system":
		return []Metric{
			NewMean("mean_energy", "Energy"),
			NewLast("respawned", "Respawned"),
		}
	case "pendulum":
		return []Metric{
			NewEnergyDrift(),
			NewPeak("peak_velocity", "Velocity"),
			NewStability("Angle", math.Pi/2),
		}
	}
	return nil
}

// Collect returns name to value for every metric.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
