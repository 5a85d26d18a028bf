package sketch

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Surface is the drawing handle a sketch renders into. Coordinates are in
// logical pixels with the origin at the top-left corner.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	// Background paints the whole surface. An alpha below 1 fades the
	// previous frame instead of erasing it.
	Background(c colorful.Color, alpha float64)
	Point(x, y float64, c colorful.Color, alpha float64)
	Line(x0, y0, x1, y1 float64, c colorful.Color, alpha float64)
	Circle(x, y, d float64, c colorful.Color, alpha float64, fill bool)
	Text(x, y float64, s string, c colorful.Color)
}

// Host supplies window and container geometry and creates surfaces.
type Host interface {
	WindowSize() (w, h int)
	// ContainerSize reports the size of the element hosting the canvas.
	// ok is false when the container cannot be resolved.
	ContainerSize() (w, h int, ok bool)
	NewSurface(w, h int) Surface
}

// RGB builds a color from 0-255 channel values.
func RGB(r, g, b float64) colorful.Color {
	return colorful.Color{R: clamp01(r / 255), G: clamp01(g / 255), B: clamp01(b / 255)}
}

// Gray is RGB(v, v, v).
func Gray(v float64) colorful.Color {
	return RGB(v, v, v)
}

// Polyline joins consecutive points with lines.
func Polyline(s Surface, xs, ys []float64, c colorful.Color, alpha float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 1; i < n; i++ {
		s.Line(xs[i-1], ys[i-1], xs[i], ys[i], c, alpha)
	}
}

// Glow draws a soft halo behind a disc of diameter d.
func Glow(s Surface, x, y, d float64, c colorful.Color) {
	for i, a := range []float64{0.12, 0.25} {
		s.Circle(x, y, d*(1.6-0.3*float64(i)), c, a, true)
	}
}

// MapRange linearly maps v from [a0, a1] to [b0, b1].
func MapRange(v, a0, a1, b0, b1 float64) float64 {
	if a1 == a0 {
		return b0
	}
	return b0 + (v-a0)*(b1-b0)/(a1-a0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
