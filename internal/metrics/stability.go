package metrics

import (
	"math"

	"github.com/san-kum/vidyut/internal/sketch"
)

// Stability is the fraction of frames where a reading stays within
// ±threshold.
type Stability struct {
	name       string
	column     string
	threshold  float64
	violations int
	samples    int
}

func NewStability(column string, threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		column:    column,
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(readings []sketch.Reading) {
	v, ok := lookup(readings, s.column)
	if !ok {
		return
	}
	s.samples++
	if math.Abs(v) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
