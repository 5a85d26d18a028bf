package physics

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	WaveLayers     = 3
	WaveSampleStep = 5.0
)

// WaveLayer is one additive sine/cosine band. Color and frequency are
// fixed by the layer index.
type WaveLayer struct {
	Color     colorful.Color
	Frequency float64
	Offset    float64
}

// Wave renders layered sine/cosine bands that drift with time.
type Wave struct {
	Amplitude float64
	Speed     float64
	Time      float64
	Layers    []WaveLayer
}

var waveColors = []colorful.Color{
	rgb(0, 255, 255),
	rgb(255, 0, 255),
	rgb(255, 255, 0),
}

func NewWave(speed, size float64) *Wave {
	w := &Wave{}
	w.Reconfigure(speed, size)
	for i := 0; i < WaveLayers; i++ {
		w.Layers = append(w.Layers, WaveLayer{
			Color:     waveColors[i%len(waveColors)],
			Frequency: 0.01 + float64(i)*0.005,
			Offset:    float64(i) * 2,
		})
	}
	return w
}

// Reconfigure updates amplitude and speed without resetting time.
func (w *Wave) Reconfigure(speed, size float64) {
	w.Amplitude = 50 + size*10
	w.Speed = speed * 0.02
}

func (w *Wave) Step() { w.Time += w.Speed }

// Baseline is the resting y of layer i on a canvas of the given height.
func (w *Wave) Baseline(i int, height float64) float64 {
	return height / float64(len(w.Layers)+1) * float64(i+1)
}

// Sample evaluates layer i at x around the baseline y0.
func (w *Wave) Sample(i int, x, y0 float64) float64 {
	l := w.Layers[i]
	o := w.Time + l.Offset
	return y0 +
		math.Sin(x*l.Frequency+o)*w.Amplitude +
		math.Cos(x*l.Frequency*0.5+o*1.5)*(w.Amplitude*0.5)
}

// Polyline samples layer i every WaveSampleStep pixels across width.
func (w *Wave) Polyline(i int, width, height float64) []Vec2 {
	y0 := w.Baseline(i, height)
	pts := make([]Vec2, 0, int(width/WaveSampleStep)+1)
	for x := 0.0; x < width; x += WaveSampleStep {
		pts = append(pts, Vec2{x, w.Sample(i, x, y0)})
	}
	return pts
}
