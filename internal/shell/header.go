package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	buttonMenu  = "MENU"
	buttonStart = "START"
	buttonReset = "RESET"
)

// headerButton is a clickable span of the header line.
type headerButton struct {
	name   string
	x0, x1 int
}

// renderHeader lays out MENU, the title, START, RESET and the brand across
// width cells. START is disabled while playing. The returned buttons carry
// their column spans for mouse hits on the first line.
func renderHeader(st styles, t Theme, width int, playing bool) (string, []headerButton) {
	menu := st.button.Render(buttonMenu)
	title := st.title.Render("RETRO CODE EXPLORER")
	start := st.button.Render(buttonStart)
	if playing {
		start = st.disabled.Render(buttonStart)
	}
	reset := st.accent.Render(buttonReset)
	brand := GradientText("VIDYUT", t.Primary, t.Secondary)

	left := menu + "  " + title
	right := start + " " + reset + "  " + brand
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right

	menuW := lipgloss.Width(menu)
	startX := lipgloss.Width(left) + gap
	startW := lipgloss.Width(start)
	resetX := startX + startW + 1
	buttons := []headerButton{
		{buttonMenu, 0, menuW},
		{buttonStart, startX, startX + startW},
		{buttonReset, resetX, resetX + lipgloss.Width(reset)},
	}

	return st.header.Width(width).Render(line), buttons
}

// hitButton returns the button under column x, or "".
func hitButton(buttons []headerButton, x int) string {
	for _, b := range buttons {
		if x >= b.x0 && x < b.x1 {
			return b.name
		}
	}
	return ""
}
