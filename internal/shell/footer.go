package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderFooter(st styles, width, year int) string {
	text := fmt.Sprintf("© %d VIDYUT - INTERACTIVE CODE EXPLORER", year)
	return st.footer.Width(width).Align(lipgloss.Center).Render(text)
}

func renderHomeFooter(st styles, width int) string {
	left := "© 2025 VIDYUT. All rights reserved."
	right := strings.Join([]string{"GITHUB", "DISCORD", "TWITTER"}, "  ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return st.footer.Render(left + strings.Repeat(" ", gap) + right)
}
