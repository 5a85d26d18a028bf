package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	title    lipgloss.Style
	tagline  lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	accent   lipgloss.Style
	header   lipgloss.Style
	frame    lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	focus    lipgloss.Style
	muted    lipgloss.Style
	card     lipgloss.Style
	active   lipgloss.Style
	footer   lipgloss.Style
	blink    lipgloss.Style
	badges   map[string]lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		tagline: lipgloss.NewStyle().
			Foreground(t.Secondary),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Secondary).
			Padding(0, 1),
		disabled: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(lipgloss.Color("#222222")).
			Padding(0, 1),
		accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Primary),
		frame: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Secondary),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(t.Text),
		focus: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		active: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(t.Muted),
		blink: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		badges: map[string]lipgloss.Style{
			"Easy":   lipgloss.NewStyle().Foreground(t.Success),
			"Medium": lipgloss.NewStyle().Foreground(t.Warning),
			"Hard":   lipgloss.NewStyle().Foreground(t.Error),
		},
	}
}

// GradientText colors each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	from, err1 := colorful.Hex(string(start))
	to, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	runes := []rune(text)
	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := from.BlendLuv(to, t).Clamped()
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
	}

	return result.String()
}

// ProgressBar renders a block bar filled to percent.
func ProgressBar(percent float64, width int, t Theme) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(t.Secondary).Render(bar)
}

// Sparkline plots the tail of values that fits in width.
func Sparkline(values []float64, width, height int, caption string) string {
	if len(values) < 2 || width < 8 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
