package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/vidyut/internal/physics"
	"github.com/san-kum/vidyut/internal/render"
)

var background = colorful.Color{R: 0.04, G: 0.04, B: 0.04}

func openSVG(w io.Writer, width, height float64) {
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background.Hex())
}

// CanvasToSVG draws every lit Braille dot as a circle of its cell color,
// faded toward the background by the cell intensity. Text cells become
// text nodes. scale is SVG pixels per dot.
func CanvasToSVG(canvas *render.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	var sb strings.Builder
	openSVG(&sb, float64(canvas.Cols)*scale*2, float64(canvas.Rows)*scale*4)
	sb.WriteString("<g>\n")

	r := scale * 0.4
	for row, cells := range canvas.Grid {
		for col, cell := range cells {
			x0, y0 := float64(col)*scale*2, float64(row)*scale*4
			fill := background.BlendRgb(cell.Color, cell.Intensity).Clamped().Hex()

			if cell.Glyph != 0 {
				fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
					x0, y0+scale*3, scale*3.5, fill, html.EscapeString(string(cell.Glyph)))
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !cell.Has(dx, dy) {
						continue
					}
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
						x0+(float64(dx)+0.5)*scale, y0+(float64(dy)+0.5)*scale, r, fill)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG fits a trace into a width x height polyline with a 10%
// margin. Points are in canvas coordinates, so y grows downward.
func TrajectoryToSVG(points []physics.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	span := hi.Sub(lo)
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	lo = lo.Sub(span.Scale(0.1))
	span = span.Scale(1.2)

	var sb strings.Builder
	openSVG(&sb, float64(width), float64(height))
	fmt.Fprintf(&sb, `<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, strokeColor)
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.1f,%.1f",
			(p.X-lo.X)/span.X*float64(width),
			(p.Y-lo.Y)/span.Y*float64(height))
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
