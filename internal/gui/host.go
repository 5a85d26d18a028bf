package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/vidyut/internal/sketch"
)

const (
	headerHeight  = 48
	footerHeight  = 28
	controlsWidth = 300
	fontSize      = 16
)

// Host places the sketch canvas in the window area left of the controls
// and between the header and the footer.
type Host struct {
	font    rl.Font
	surface *Surface
}

// canvasRect is the canvas area of a w x h window.
func canvasRect(w, h int) rl.Rectangle {
	cw := max(w-controlsWidth, 1)
	ch := max(h-headerHeight-footerHeight, 1)
	return rl.NewRectangle(0, headerHeight, float32(cw), float32(ch))
}

func (h *Host) WindowSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (h *Host) ContainerSize() (int, int, bool) {
	if !rl.IsWindowReady() {
		return 0, 0, false
	}
	r := canvasRect(h.WindowSize())
	return int(r.Width), int(r.Height), true
}

func (h *Host) NewSurface(w, hh int) sketch.Surface {
	if h.surface != nil {
		h.surface.unload()
	}
	h.surface = newSurface(w, hh, h.font)
	return h.surface
}

// Close releases the render texture.
func (h *Host) Close() {
	if h.surface != nil {
		h.surface.unload()
		h.surface = nil
	}
}
