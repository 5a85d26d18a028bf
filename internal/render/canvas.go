package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]uint8{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBase = 0x2800
	// cells dimmer than this are erased by a fading background
	fadeFloor = 0.12
)

// Cell is one terminal character of the canvas.
type Cell struct {
	Dots      uint8
	Color     colorful.Color
	Intensity float64
	Glyph     rune
}

// Rune is the character the cell renders as.
func (c Cell) Rune() rune {
	if c.Glyph != 0 {
		return c.Glyph
	}
	return rune(brailleBase + int(c.Dots))
}

// Has reports whether the dot at column dx (0-1) and row dy (0-3) of the
// cell is set.
func (c Cell) Has(dx, dy int) bool {
	return c.Dots&pixelMap[dy][dx] != 0
}

// Canvas is a Braille surface. Logical coordinates are divided by Scale to
// reach dot coordinates.
type Canvas struct {
	Cols, Rows int
	Scale      float64
	Grid       [][]Cell
	bg         colorful.Color
}

func NewCanvas(cols, rows int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{Scale: scale}
	c.alloc(cols, rows)
	return c
}

func (c *Canvas) alloc(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.Cols, c.Rows = cols, rows
	c.Grid = make([][]Cell, rows)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, cols)
	}
}

// Size reports the logical size.
func (c *Canvas) Size() (int, int) {
	return int(float64(c.Cols*2) * c.Scale), int(float64(c.Rows*4) * c.Scale)
}

// Resize reallocates the grid to cover w x h logical pixels. Content is
// dropped.
func (c *Canvas) Resize(w, h int) {
	cols := int(math.Ceil(float64(w) / c.Scale / 2))
	rows := int(math.Ceil(float64(h) / c.Scale / 4))
	if cols == c.Cols && rows == c.Rows {
		return
	}
	c.alloc(cols, rows)
}

// Background erases the canvas when alpha >= 1 and otherwise dims every
// cell by alpha. Text overlays never survive a background.
func (c *Canvas) Background(col colorful.Color, alpha float64) {
	c.bg = col
	if alpha >= 1 {
		c.Clear()
		return
	}
	keep := 1 - alpha
	for y := range c.Grid {
		for x := range c.Grid[y] {
			cell := &c.Grid[y][x]
			if cell.Dots == 0 {
				*cell = Cell{}
				continue
			}
			cell.Glyph = 0
			cell.Intensity *= keep
			if cell.Intensity < fadeFloor {
				*cell = Cell{}
			}
		}
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for y := range c.Grid {
		for x := range c.Grid[y] {
			c.Grid[y][x] = Cell{}
		}
	}
}

// Point sets the dot under a logical coordinate.
func (c *Canvas) Point(x, y float64, col colorful.Color, alpha float64) {
	c.setDot(int(math.Floor(x/c.Scale)), int(math.Floor(y/c.Scale)), col, alpha)
}

func (c *Canvas) setDot(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 || alpha <= 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Cols || cy >= c.Rows {
		return
	}
	cell := &c.Grid[cy][cx]
	cell.Dots |= pixelMap[y%4][x%2]
	if alpha >= cell.Intensity {
		cell.Color = col
		cell.Intensity = math.Min(alpha, 1)
	}
}

// Unset clears the dot under a logical coordinate.
func (c *Canvas) Unset(x, y float64) {
	dx, dy := int(math.Floor(x/c.Scale)), int(math.Floor(y/c.Scale))
	if dx < 0 || dy < 0 || dx/2 >= c.Cols || dy/4 >= c.Rows {
		return
	}
	cell := &c.Grid[dy/4][dx/2]
	cell.Dots &^= pixelMap[dy%4][dx%2]
	if cell.Dots == 0 {
		cell.Intensity = 0
	}
}

// Line draws a line using Bresenham's algorithm
func (c *Canvas) Line(x0, y0, x1, y1 float64, col colorful.Color, alpha float64) {
	ax, ay := int(math.Floor(x0/c.Scale)), int(math.Floor(y0/c.Scale))
	bx, by := int(math.Floor(x1/c.Scale)), int(math.Floor(y1/c.Scale))
	dx := absInt(bx - ax)
	dy := absInt(by - ay)
	sx := -1
	if ax < bx {
		sx = 1
	}
	sy := -1
	if ay < by {
		sy = 1
	}
	err := dx - dy

	for {
		c.setDot(ax, ay, col, alpha)
		if ax == bx && ay == by {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ax += sx
		}
		if e2 < dx {
			err += dx
			ay += sy
		}
	}
}

// Circle draws a disc or ring of logical diameter d centered on (x, y).
func (c *Canvas) Circle(x, y, d float64, col colorful.Color, alpha float64, fill bool) {
	r := d / 2 / c.Scale
	cx, cy := x/c.Scale, y/c.Scale
	if r < 1 {
		c.setDot(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
		return
	}
	if fill {
		for dy := -math.Ceil(r); dy <= math.Ceil(r); dy++ {
			for dx := -math.Ceil(r); dx <= math.Ceil(r); dx++ {
				if dx*dx+dy*dy <= r*r {
					c.setDot(int(math.Floor(cx+dx)), int(math.Floor(cy+dy)), col, alpha)
				}
			}
		}
		return
	}
	steps := int(2*math.Pi*r) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.setDot(int(math.Floor(cx+r*math.Cos(a))), int(math.Floor(cy+r*math.Sin(a))), col, alpha)
	}
}

// Text overlays s on the cells starting at the logical coordinate.
func (c *Canvas) Text(x, y float64, s string, col colorful.Color) {
	cx := int(x / c.Scale / 2)
	cy := int(y / c.Scale / 4)
	if cy < 0 || cy >= c.Rows {
		return
	}
	for _, r := range s {
		if cx >= c.Cols {
			break
		}
		if cx >= 0 {
			cell := &c.Grid[cy][cx]
			cell.Glyph = r
			cell.Color = col
			cell.Intensity = 1
		}
		cx++
	}
}

// Dot reports whether the dot under a logical coordinate is set.
func (c *Canvas) Dot(x, y float64) bool {
	dx, dy := int(math.Floor(x/c.Scale)), int(math.Floor(y/c.Scale))
	if dx < 0 || dy < 0 || dx/2 >= c.Cols || dy/4 >= c.Rows {
		return false
	}
	return c.Grid[dy/4][dx/2].Dots&pixelMap[dy%4][dx%2] != 0
}

// Lit counts the cells that currently show anything.
func (c *Canvas) Lit() int {
	n := 0
	for y := range c.Grid {
		for x := range c.Grid[y] {
			if c.Grid[y][x].Dots != 0 || c.Grid[y][x].Glyph != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cell := range row {
			b.WriteRune(cell.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the canvas with per-cell color, blending each cell toward
// the background by its intensity.
func (c *Canvas) View() string {
	var b strings.Builder
	for y, row := range c.Grid {
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			hex := ""
			if cell.Dots != 0 || cell.Glyph != 0 {
				hex = c.bg.BlendRgb(cell.Color, cell.Intensity).Clamped().Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(cell.Rune())
		}
		flush()
		if y < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
