package render

import "github.com/san-kum/vidyut/internal/sketch"

// Host places canvases in a terminal window. Sizes are logical pixels.
// A host without a resolved container makes sketches fall back to the
// window size.
type Host struct {
	WindowW, WindowH       int
	ContainerW, ContainerH int
	Resolved               bool
	Scale                  float64

	last *Canvas
}

// NewHeadless returns a host with no container, for off-screen runs.
func NewHeadless(w, h int, scale float64) *Host {
	return &Host{WindowW: w, WindowH: h, Scale: scale}
}

func (h *Host) WindowSize() (int, int) { return h.WindowW, h.WindowH }

func (h *Host) ContainerSize() (int, int, bool) {
	return h.ContainerW, h.ContainerH, h.Resolved
}

// SetContainer resolves the container to cols x rows terminal cells.
func (h *Host) SetContainer(cols, rows int) {
	h.ContainerW = int(float64(cols*2) * h.scale())
	h.ContainerH = int(float64(rows*4) * h.scale())
	h.Resolved = cols > 0 && rows > 0
}

func (h *Host) NewSurface(w, hh int) sketch.Surface {
	c := NewCanvas(1, 1, h.scale())
	c.Resize(w, hh)
	h.last = c
	return c
}

// Canvas returns the most recently created canvas.
func (h *Host) Canvas() *Canvas { return h.last }

func (h *Host) scale() float64 {
	if h.Scale <= 0 {
		return 1
	}
	return h.Scale
}
