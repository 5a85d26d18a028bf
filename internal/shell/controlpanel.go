package shell

import (
	"fmt"
	"strings"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/sketch"
)

const controlPanelWidth = 34

// controlPanel holds the integer speed and size knobs of the shell.
type controlPanel struct {
	speed, size int
	focus       int
}

func newControlPanel(s sketch.Settings) controlPanel {
	s = s.WithDefaults()
	return controlPanel{speed: knob(s.Speed), size: knob(s.Size)}
}

func knob(v float64) int {
	n := int(v + 0.5)
	if n < int(config.MinKnob) {
		return int(config.MinKnob)
	}
	if n > int(config.MaxKnob) {
		return int(config.MaxKnob)
	}
	return n
}

func (c controlPanel) settings() sketch.Settings {
	return sketch.Settings{Speed: float64(c.speed), Size: float64(c.size)}
}

func (c *controlPanel) moveFocus(delta int) {
	c.focus = ((c.focus+delta)%2 + 2) % 2
}

// adjust steps the focused knob and reports whether it changed.
func (c *controlPanel) adjust(delta int) bool {
	v := &c.speed
	if c.focus == 1 {
		v = &c.size
	}
	next := knob(float64(*v + delta))
	if next == *v {
		return false
	}
	*v = next
	return true
}

func (c controlPanel) view(st styles, t Theme, sk catalog.Sketch, readings []sketch.Reading, history []float64, height int) string {
	inner := controlPanelWidth - 4
	var b strings.Builder
	b.WriteString(st.title.Render(strings.ToUpper(sk.Title) + " CONTROLS"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{sk.SpeedLabel, c.speed},
		{sk.SizeLabel, c.size},
	}
	for i, r := range rows {
		ls := st.label
		if i == c.focus {
			ls = st.focus
		}
		b.WriteString(ls.Render(fmt.Sprintf("%s: %d", r.label, r.value)) + "\n")
		b.WriteString(knobBar(r.value, inner) + "\n\n")
	}

	b.WriteString(st.button.Render(buttonStart) + " " + st.accent.Render(buttonReset) + "\n\n")

	if len(readings) > 0 {
		b.WriteString(st.muted.Render("TELEMETRY") + "\n")
		for _, r := range readings {
			b.WriteString(st.label.Render(r.String()) + "\n")
		}
	}
	if g := Sparkline(history, inner-10, 4, ""); g != "" {
		b.WriteString("\n" + st.tagline.Render(g) + "\n")
	}

	b.WriteString("\n" + st.muted.Render("↑/↓ knob  ←/→ adjust"))
	return st.panel.Width(controlPanelWidth - 2).Height(max(height-2, 1)).Render(b.String())
}

func knobBar(v, width int) string {
	cells := width - 2
	if cells < 2 {
		cells = 2
	}
	span := config.MaxKnob - config.MinKnob
	pos := int((float64(v)-config.MinKnob)/span*float64(cells-1) + 0.5)
	return "[" + strings.Repeat("=", pos) + "◆" + strings.Repeat("-", cells-1-pos) + "]"
}
