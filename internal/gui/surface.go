package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface draws a sketch into an off-screen render texture so that a
// translucent background fades the previous frame instead of erasing it.
type Surface struct {
	target rl.RenderTexture2D
	font   rl.Font
	w, h   int
	ready  bool
}

func newSurface(w, h int, font rl.Font) *Surface {
	s := &Surface{font: font}
	s.Resize(w, h)
	return s
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// Resize reallocates the render texture. Content is dropped.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if s.ready && w == s.w && h == s.h {
		return
	}
	s.unload()
	s.target = rl.LoadRenderTexture(int32(w), int32(h))
	s.w, s.h = w, h
	s.ready = true
}

func (s *Surface) unload() {
	if s.ready {
		rl.UnloadRenderTexture(s.target)
		s.ready = false
	}
}

func (s *Surface) Background(c colorful.Color, alpha float64) {
	if alpha >= 1 {
		rl.ClearBackground(toColor(c, 1))
		return
	}
	rl.DrawRectangle(0, 0, int32(s.w), int32(s.h), toColor(c, alpha))
}

func (s *Surface) Point(x, y float64, c colorful.Color, alpha float64) {
	rl.DrawPixelV(rl.NewVector2(float32(x), float32(y)), toColor(c, alpha))
}

func (s *Surface) Line(x0, y0, x1, y1 float64, c colorful.Color, alpha float64) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		1, toColor(c, alpha),
	)
}

// Circle takes a diameter.
func (s *Surface) Circle(x, y, d float64, c colorful.Color, alpha float64, fill bool) {
	r := float32(d / 2)
	if fill {
		rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), r, toColor(c, alpha))
		return
	}
	rl.DrawCircleLines(int32(x), int32(y), r, toColor(c, alpha))
}

func (s *Surface) Text(x, y float64, text string, c colorful.Color) {
	rl.DrawTextEx(s.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, toColor(c, 1))
}

// toColor converts a color and an alpha in [0, 1] to a raylib color.
func toColor(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	a := math.Round(math.Min(math.Max(alpha, 0), 1) * 255)
	return rl.NewColor(r, g, b, uint8(a))
}

// hexColor parses a #rrggbb string, falling back to fallback.
func hexColor(hex string, fallback rl.Color) rl.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return toColor(c, 1)
}
