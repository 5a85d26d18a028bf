package analysis

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/render"
)

// PhasePortrait pairs two telemetry series, such as angle and angular
// velocity.
type PhasePortrait struct {
	XLabel, YLabel string
	Points         []physics.Vec2
}

// NewPhasePortrait zips xs and ys, truncating to the shorter one.
func NewPhasePortrait(xLabel string, xs []float64, yLabel string, ys []float64) *PhasePortrait {
	n := min(len(xs), len(ys))
	p := &PhasePortrait{XLabel: xLabel, YLabel: yLabel, Points: make([]physics.Vec2, n)}
	for i := 0; i < n; i++ {
		p.Points[i] = physics.Vec2{X: xs[i], Y: ys[i]}
	}
	return p
}

// frame maps portrait coordinates onto a w x h grid with a 10% margin.
// Row 0 is the top.
type frame struct {
	minX, minY         float64
	spanX, spanY       float64
	w, h               float64
	hasXAxis, hasYAxis bool
}

func (pp *PhasePortrait) frame(w, h int) frame {
	lo, hi := pp.Points[0], pp.Points[0]
	for _, p := range pp.Points[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
	}
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	f := frame{
		minX:  lo.X - spanX*0.1,
		minY:  lo.Y - spanY*0.1,
		spanX: spanX * 1.2,
		spanY: spanY * 1.2,
		w:     float64(w - 1),
		h:     float64(h - 1),
	}
	f.hasYAxis = f.minX <= 0 && f.minX+f.spanX >= 0
	f.hasXAxis = f.minY <= 0 && f.minY+f.spanY >= 0
	return f
}

func (f frame) project(p physics.Vec2) (float64, float64) {
	return (p.X - f.minX) / f.spanX * f.w, f.h - (p.Y-f.minY)/f.spanY*f.h
}

// ASCII plots the portrait on a width x height character grid with axes
// where they cross the visible area.
func (pp *PhasePortrait) ASCII(width, height int) string {
	if pp == nil || len(pp.Points) == 0 || width < 2 || height < 2 {
		return ""
	}
	f := pp.frame(width, height)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	if f.hasYAxis {
		col, _ := f.project(physics.Vec2{})
		for row := range grid {
			grid[row][int(col)] = '│'
		}
	}
	if f.hasXAxis {
		_, row := f.project(physics.Vec2{})
		for col := range grid[int(row)] {
			if grid[int(row)][col] == '│' {
				grid[int(row)][col] = '┼'
			} else {
				grid[int(row)][col] = '─'
			}
		}
	}
	for _, p := range pp.Points {
		col, row := f.project(p)
		grid[int(row)][int(col)] = '•'
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

var (
	axisColor  = colorful.Color{R: 0.35, G: 0.35, B: 0.35}
	traceColor = colorful.Color{R: 0.2, G: 1, B: 0.8}
)

// Braille draws the portrait as a connected trajectory on a cols x rows
// Braille canvas, at two by four dots per character. color adds ANSI color.
func (pp *PhasePortrait) Braille(cols, rows int, color bool) string {
	if pp == nil || len(pp.Points) == 0 || cols < 1 || rows < 1 {
		return ""
	}
	c := render.NewCanvas(cols, rows, 1)
	f := pp.frame(cols*2, rows*4)

	origin := physics.Vec2{}
	if f.hasYAxis {
		x, _ := f.project(origin)
		c.Line(x, 0, x, f.h, axisColor, 1)
	}
	if f.hasXAxis {
		_, y := f.project(origin)
		c.Line(0, y, f.w, y, axisColor, 1)
	}

	px, py := f.project(pp.Points[0])
	c.Point(px, py, traceColor, 1)
	for _, p := range pp.Points[1:] {
		x, y := f.project(p)
		c.Line(px, py, x, y, traceColor, 1)
		px, py = x, y
	}

	if color {
		return c.View()
	}
	return c.String()
}
