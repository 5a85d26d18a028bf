package shell

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/render"
	"github.com/san-kum/vidyut/internal/sketch"
)

type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseRunning
)

const (
	historyLen   = 60
	minCanvasRow = 4
)

// gameScreen owns the terminal host and the sketch runner of the sketch
// page. A sketch is only mounted once the player first presses START.
type gameScreen struct {
	sketch    catalog.Sketch
	host      *render.Host
	runner    *sketch.Runner
	phase     phase
	loadGen   int
	loadStart time.Time
	input     sketch.Input
	history   []float64
	auto      bool
	cols      int
	rows      int
}

// newGameScreen uses scale for the canvas, or picks one from the terminal
// height when scale is zero.
func newGameScreen(sk catalog.Sketch, scale float64) *gameScreen {
	host := render.NewHeadless(0, 0, scale)
	return &gameScreen{
		sketch: sk,
		host:   host,
		runner: sketch.NewRunner(host),
		auto:   scale <= 0,
	}
}

// autoScale picks a pixel scale so that a terminal of rows cells covers
// roughly the 480 logical pixels the sketches are tuned for.
func autoScale(rows int) float64 {
	if rows <= 0 {
		return 1
	}
	return math.Max(1, 480/float64(rows*4))
}

// layout sizes the container to cols x rows cells, minus the rows taken by
// the on-canvas panel, and resizes any mounted instance.
func (g *gameScreen) layout(cols, rows int) {
	g.cols, g.rows = cols, rows
	if g.auto && !g.mounted() {
		g.host.Scale = autoScale(rows)
	}
	w, h := g.pointer(cols, rows)
	g.host.WindowW, g.host.WindowH = int(w), int(h)

	canvasRows := rows - g.panelHeight()
	if canvasRows < minCanvasRow {
		canvasRows = minCanvasRow
	}
	g.host.SetContainer(cols, canvasRows)
	g.runner.Resize()
}

func (g *gameScreen) panel() *sketch.Panel {
	inst := g.runner.Current()
	if inst == nil || inst.Context().Panel == nil || !inst.Context().Panel.Visible() {
		return nil
	}
	return inst.Context().Panel
}

func (g *gameScreen) panelHeight() int {
	if p := g.panel(); p != nil {
		return lipgloss.Height(p.Render())
	}
	return 0
}

// mount replaces the running instance with sk and relays the layout so
// the panel gets its rows.
func (g *gameScreen) mount(sk sketch.Sketch, playing bool) *sketch.Instance {
	inst := g.runner.Mount(sk)
	g.runner.SetPlaying(playing)
	g.history = g.history[:0]
	g.layout(g.cols, g.rows)
	return inst
}

func (g *gameScreen) unmount() {
	g.runner.Unmount()
	g.history = nil
}

func (g *gameScreen) mounted() bool { return g.runner.Current() != nil }

// frame advances the instance and appends its energy to the sparkline
// history.
func (g *gameScreen) frame() bool {
	if !g.runner.Frame(g.input) {
		return false
	}
	for _, r := range g.readings() {
		if r.Name == "Energy" {
			g.history = append(g.history, r.Value)
			if len(g.history) > historyLen {
				g.history = g.history[1:]
			}
		}
	}
	return true
}

func (g *gameScreen) readings() []sketch.Reading {
	if inst := g.runner.Current(); inst != nil {
		return inst.Context().Readings()
	}
	return nil
}

// pointer maps a cell relative to the game origin to logical pixels.
func (g *gameScreen) pointer(col, row int) (float64, float64) {
	s := g.host.Scale
	if s <= 0 {
		s = 1
	}
	return float64(col*2) * s, float64(row*4) * s
}

// loadProgress is the fraction of delay elapsed since loading began.
func (g *gameScreen) loadProgress(now time.Time, delay time.Duration) float64 {
	if delay <= 0 {
		return 1
	}
	p := float64(now.Sub(g.loadStart)) / float64(delay)
	return math.Min(math.Max(p, 0), 1)
}

func (g *gameScreen) view(st styles, t Theme, now time.Time, delay time.Duration, blink bool) string {
	title := strings.ToUpper(g.sketch.Title)

	switch {
	case g.phase == phaseLoading:
		barW := min(40, max(g.cols-4, 4))
		body := lipgloss.JoinVertical(lipgloss.Center,
			st.title.Render(fmt.Sprintf("LOADING %s...", title)),
			"",
			ProgressBar(g.loadProgress(now, delay), barW, t),
			"",
			blinkText(st, "PLEASE WAIT", blink),
		)
		return g.place(body)

	case g.phase == phaseReady && !g.mounted():
		body := lipgloss.JoinVertical(lipgloss.Center,
			st.title.Render(title+" READY"),
			"",
			blinkText(st, "PRESS START TO PLAY", blink),
		)
		return g.place(body)
	}

	c := g.host.Canvas()
	if c == nil {
		return g.place("")
	}
	canvas := c.View()
	p := g.panel()
	if p == nil {
		return g.place(canvas)
	}
	pos := lipgloss.Left
	if p.Right() {
		pos = lipgloss.Right
	}
	box := lipgloss.PlaceHorizontal(g.cols, pos, p.Render())
	if p.Bottom() {
		return lipgloss.JoinVertical(lipgloss.Left, canvas, box)
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, canvas)
}

func (g *gameScreen) place(body string) string {
	return lipgloss.Place(max(g.cols, 1), max(g.rows, 1), lipgloss.Center, lipgloss.Center, body)
}

func blinkText(st styles, s string, on bool) string {
	if !on {
		return strings.Repeat(" ", lipgloss.Width(s))
	}
	return st.blink.Render(s)
}
