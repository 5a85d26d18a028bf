package export

import (
	"strings"
	"testing"

	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/render"
	"github.com/san-kum/vidyut/internal/sketch"
)

func TestCanvasToSVG(t *testing.T) {
	c := render.NewCanvas(4, 2, 1)
	c.Point(0, 0, sketch.RGB(255, 0, 0), 1)
	c.Point(1, 0, sketch.RGB(255, 0, 0), 1)
	c.Text(0, 4, "A", sketch.Gray(255))

	svg := CanvasToSVG(c, 10)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("expected dots in the cell color")
	}
	if !strings.Contains(svg, ">A</text>") {
		t.Error("expected the text cell")
	}
	if !strings.Contains(svg, `width="80" height="80"`) {
		t.Error("expected 4x2 cells at scale 10 to be 80x80")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	pts := []physics.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}

	svg := TrajectoryToSVG(pts, 100, 50, "#ff3296")

	if !strings.Contains(svg, `stroke="#ff3296"`) {
		t.Error("expected stroke color")
	}
	start := strings.Index(svg, `points="`)
	if start < 0 {
		t.Fatalf("expected a polyline in %s", svg)
	}
	attr := svg[start+len(`points="`):]
	attr = attr[:strings.IndexByte(attr, '"')]
	if n := len(strings.Fields(attr)); n != 3 {
		t.Errorf("expected 3 vertices, got %d in %q", n, attr)
	}
	if !strings.HasPrefix(attr, "8.3,4.2 ") {
		t.Errorf("expected the first vertex inside the margin, got %q", attr)
	}
	if TrajectoryToSVG(pts[:1], 100, 50, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}
}
