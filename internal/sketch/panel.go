package sketch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

type Theme string

const (
	ThemeRetro Theme = "retro"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Themes lists the panel themes in cycle order.
var Themes = []Theme{ThemeRetro, ThemeDark, ThemeLight}

// PanelOptions configure a control panel. Zero values pick the defaults:
// bottom-left, retro, 24 cells wide, visible, untitled.
type PanelOptions struct {
	Position Position
	Theme    Theme
	Width    int
	Hidden   bool
	Title    string
}

type widget interface {
	elements() []Element
}

// Panel is the themed container parenting the sketch widgets.
type Panel struct {
	element
	opts    PanelOptions
	widgets []widget
	focus   int
}

func NewPanel(opts PanelOptions) *Panel {
	if opts.Position == "" {
		opts.Position = BottomLeft
	}
	if opts.Theme == "" {
		opts.Theme = ThemeRetro
	}
	if opts.Width <= 0 {
		opts.Width = 24
	}
	p := &Panel{element: element{id: "control-panel"}, opts: opts}
	if opts.Hidden {
		p.Hide()
	}
	return p
}

func (p *Panel) add(w widget) { p.widgets = append(p.widgets, w) }

func (p *Panel) Title() string            { return p.opts.Title }
func (p *Panel) Position() Position       { return p.opts.Position }
func (p *Panel) Theme() Theme             { return p.opts.Theme }
func (p *Panel) Width() int               { return p.opts.Width }
func (p *Panel) SetTheme(t Theme)         { p.opts.Theme = t }
func (p *Panel) SetPosition(pos Position) { p.opts.Position = pos }

// CycleTheme advances to the next theme and returns it.
func (p *Panel) CycleTheme() Theme {
	for i, t := range Themes {
		if t == p.opts.Theme {
			p.opts.Theme = Themes[(i+1)%len(Themes)]
			return p.opts.Theme
		}
	}
	p.opts.Theme = ThemeRetro
	return p.opts.Theme
}

// Right reports whether the panel sits on the right edge.
func (p *Panel) Right() bool {
	return p.opts.Position == TopRight || p.opts.Position == BottomRight
}

// Bottom reports whether the panel sits on the bottom edge.
func (p *Panel) Bottom() bool {
	return p.opts.Position == BottomLeft || p.opts.Position == BottomRight
}

// Sliders returns the sliders in creation order.
func (p *Panel) Sliders() []*Slider {
	var out []*Slider
	for _, w := range p.widgets {
		if s, ok := w.(*Slider); ok {
			out = append(out, s)
		}
	}
	return out
}

// Toggles returns the toggles in creation order.
func (p *Panel) Toggles() []*Toggle {
	var out []*Toggle
	for _, w := range p.widgets {
		if t, ok := w.(*Toggle); ok {
			out = append(out, t)
		}
	}
	return out
}

// Focused returns the slider keyboard input goes to, if any.
func (p *Panel) Focused() *Slider {
	sliders := p.Sliders()
	if len(sliders) == 0 {
		return nil
	}
	return sliders[p.focus%len(sliders)]
}

// FocusNext moves keyboard focus to the next slider.
func (p *Panel) FocusNext() {
	if n := len(p.Sliders()); n > 0 {
		p.focus = (p.focus + 1) % n
	}
}

// Nudge steps the focused slider when it is visible.
func (p *Panel) Nudge(n int) {
	if s := p.Focused(); s != nil && s.Track.Visible() && p.Visible() {
		s.Nudge(n)
	}
}

// Press presses the first toggle.
func (p *Panel) Press() {
	if t := p.Toggles(); len(t) > 0 && p.Visible() {
		t[0].Press()
	}
}

// Lines returns the plain text of every visible element.
func (p *Panel) Lines() []string {
	if !p.Visible() {
		return nil
	}
	var lines []string
	if p.opts.Title != "" {
		lines = append(lines, p.opts.Title)
	}
	inner := p.opts.Width - 4
	for _, w := range p.widgets {
		switch w := w.(type) {
		case *Slider:
			if w.Caption.Visible() {
				lines = append(lines, w.Label())
			}
			if w.Track.Visible() {
				lines = append(lines, sliderBar(w.Fraction(), inner))
			}
		case *Toggle:
			if w.Button.Visible() {
				lines = append(lines, "[ "+w.Text()+" ]")
			}
		}
	}
	return lines
}

func sliderBar(frac float64, width int) string {
	if width < 3 {
		width = 3
	}
	cells := width - 2
	knob := int(frac*float64(cells-1) + 0.5)
	if knob < 0 {
		knob = 0
	}
	if knob > cells-1 {
		knob = cells - 1
	}
	return "├" + strings.Repeat("─", knob) + "●" + strings.Repeat("─", cells-1-knob) + "┤"
}

// Render draws the panel with its theme. A hidden panel renders empty.
func (p *Panel) Render() string {
	if !p.Visible() {
		return ""
	}
	th := panelStyles(p.opts.Theme)
	var b strings.Builder
	if p.opts.Title != "" {
		b.WriteString(th.title.Width(p.opts.Width - 4).Render(p.opts.Title))
		b.WriteString("\n\n")
	}
	focused := p.Focused()
	inner := p.opts.Width - 4
	for _, w := range p.widgets {
		switch w := w.(type) {
		case *Slider:
			if w.Caption.Visible() {
				st := th.label
				if w == focused {
					st = th.focus
				}
				b.WriteString(st.Render(w.Label()) + "\n")
			}
			if w.Track.Visible() {
				b.WriteString(th.track.Render(sliderBar(w.Fraction(), inner)) + "\n\n")
			}
		case *Toggle:
			if w.Button.Visible() {
				b.WriteString(th.button.Width(inner).Render(w.Text()) + "\n\n")
			}
		}
	}
	return th.box.Width(p.opts.Width).Render(strings.TrimRight(b.String(), "\n"))
}

type panelTheme struct {
	box, title, label, focus, track, button lipgloss.Style
}

func panelStyles(t Theme) panelTheme {
	switch t {
	case ThemeDark:
		return panelTheme{
			box:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#444444")).Foreground(lipgloss.Color("#eeeeee")).Padding(0, 1),
			title:  lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
			label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
			focus:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
			track:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
			button: lipgloss.NewStyle().Foreground(lipgloss.Color("#eeeeee")).Background(lipgloss.Color("#333333")).Align(lipgloss.Center),
		}
	case ThemeLight:
		return panelTheme{
			box:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#cccccc")).Foreground(lipgloss.Color("#333333")).Background(lipgloss.Color("#f0f0f0")).Padding(0, 1),
			title:  lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
			label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
			focus:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true),
			track:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
			button: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#666666")).Align(lipgloss.Center),
		}
	default:
		return panelTheme{
			box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#00ddff")).Foreground(lipgloss.Color("#ffffff")).Padding(0, 1),
			title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ddff")).Align(lipgloss.Center),
			label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
			focus:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff00")).Bold(true),
			track:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00ddff")),
			button: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff0066")).Align(lipgloss.Center),
		}
	}
}
