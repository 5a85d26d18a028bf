package metrics

import (
	"math"

	"github.com/san-kum/vidyut/internal/sketch"
)

// Activity is the mean absolute frame-to-frame change of a reading.
type Activity struct {
	name    string
	column  string
	prev    float64
	sum     float64
	samples int
}

func NewActivity(name, column string) *Activity {
	return &Activity{name: name, column: column}
}

func (a *Activity) Name() string {
	return a.name
}

func (a *Activity) Observe(readings []sketch.Reading) {
	v, ok := lookup(readings, a.column)
	if !ok {
		return
	}
	if a.samples > 0 {
		a.sum += math.Abs(v - a.prev)
	}
	a.prev = v
	a.samples++
}

func (a *Activity) Value() float64 {
	if a.samples < 2 {
		return 0
	}
	return a.sum / float64(a.samples-1)
}

func (a *Activity) Reset() {
	a.prev = 0
	a.sum = 0
	a.samples = 0
}
