package physics

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// channelRange is a [lo, hi) interval of 0-255 channel values.
type channelRange struct{ lo, hi float64 }

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randomColor(rng *rand.Rand, r, g, b channelRange) colorful.Color {
	return colorful.Color{
		R: randRange(rng, r.lo, r.hi) / 255,
		G: randRange(rng, g.lo, g.hi) / 255,
		B: randRange(rng, b.lo, b.hi) / 255,
	}
}

func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}
