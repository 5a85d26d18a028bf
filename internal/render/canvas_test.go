package render

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/vidyut/internal/sketch"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

func TestCanvas_SizeAndResize(t *testing.T) {
	c := NewCanvas(10, 5, 2)
	if w, h := c.Size(); w != 40 || h != 40 {
		t.Errorf("size = %dx%d, want 40x40", w, h)
	}

	c.Resize(100, 50)
	if c.Cols != 25 || c.Rows != 7 {
		t.Errorf("grid = %dx%d, want 25x7", c.Cols, c.Rows)
	}
}

func TestCanvas_PointAndUnset(t *testing.T) {
	c := NewCanvas(4, 2, 1)

	c.Point(3, 5, white, 1)
	if !c.Dot(3, 5) {
		t.Fatal("expected dot to be set")
	}
	if got := c.Grid[1][1].Rune(); got != rune(brailleBase+0x10) {
		t.Errorf("rune = %U, want %U", got, rune(brailleBase+0x10))
	}

	c.Unset(3, 5)
	if c.Dot(3, 5) {
		t.Error("expected dot to be cleared")
	}

	// out of bounds is ignored
	c.Point(-1, 0, white, 1)
	c.Point(100, 100, white, 1)
	if c.Lit() != 0 {
		t.Errorf("expected no lit cells, got %d", c.Lit())
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(10, 3, 1)
	c.Line(0, 0, 19, 0, white, 1)

	for x := 0.0; x < 20; x++ {
		if !c.Dot(x, 0) {
			t.Fatalf("dot %v not set on horizontal line", x)
		}
	}
	if c.Dot(0, 1) {
		t.Error("line bled into next row")
	}
}

func TestCanvas_FadeErasesOldDots(t *testing.T) {
	c := NewCanvas(4, 4, 1)
	c.Point(1, 1, white, 1)
	c.Text(0, 8, "hi", white)

	c.Background(colorful.Color{}, 0.5)
	if !c.Dot(1, 1) {
		t.Fatal("a single fade should keep the dot")
	}
	if strings.Contains(c.String(), "hi") {
		t.Error("text should not survive a background")
	}

	for i := 0; i < 5; i++ {
		c.Background(colorful.Color{}, 0.5)
	}
	if c.Dot(1, 1) {
		t.Error("repeated fades should erase the dot")
	}

	c.Point(1, 1, white, 1)
	c.Background(colorful.Color{}, 1)
	if c.Lit() != 0 {
		t.Error("opaque background should clear everything")
	}
}

func TestCanvas_CircleFill(t *testing.T) {
	c := NewCanvas(10, 5, 1)
	c.Circle(10, 10, 8, white, 1, true)

	if !c.Dot(10, 10) || !c.Dot(13, 10) {
		t.Error("filled circle should cover its interior")
	}
	if c.Dot(16, 10) {
		t.Error("filled circle leaked past its radius")
	}
}

func TestCanvas_TextAndView(t *testing.T) {
	c := NewCanvas(8, 2, 1)
	c.Text(0, 0, "Angle", white)

	if !strings.HasPrefix(c.String(), "Angle") {
		t.Errorf("unexpected text row: %q", c.String())
	}
	if !strings.Contains(c.View(), "Angle") {
		t.Error("view should contain overlay text")
	}
}

func TestHost_ContainerFallback(t *testing.T) {
	h := NewHeadless(200, 100, 2)
	if _, _, ok := h.ContainerSize(); ok {
		t.Error("headless host must not resolve a container")
	}

	var _ sketch.Host = h
	h.SetContainer(20, 10)
	w, hh, ok := h.ContainerSize()
	if !ok || w != 80 || hh != 80 {
		t.Errorf("container = %dx%d (%v), want 80x80", w, hh, ok)
	}

	s := h.NewSurface(w, hh)
	if h.Canvas() != s {
		t.Error("host should remember its last canvas")
	}
}
