package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vidyut/internal/catalog"
)

const (
	cardWidth = 22
	cardGap   = 2
)

var previews = map[string][]string{
	"bouncing-ball":   {"      ●    ", "    ╱      ", "  ·        "},
	"wave-patterns":   {" ∿∿∿∿∿∿∿∿∿ ", " ≈≈≈≈≈≈≈≈≈ ", " ∿∿∿∿∿∿∿∿∿ "},
	"particle-system": {" · ∴ ·  ·  ", "  ·:· ∵ ·  ", " ·  · ∴  · "},
	"pendulum":        {"     ┬     ", "      ╲    ", "       ●   "},
}

// home is the gallery page. offset is the first visible card, cursor the
// highlighted one.
type home struct {
	cursor int
	offset int
}

func (h *home) move(delta, visible int) {
	n := len(catalog.Sketches)
	h.cursor = ((h.cursor+delta)%n + n) % n
	h.clamp(visible)
}

// scroll shifts the visible window without moving past either end.
func (h *home) scroll(delta, visible int) {
	h.offset += delta
	maxOffset := len(catalog.Sketches) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.offset > maxOffset {
		h.offset = maxOffset
	}
	if h.offset < 0 {
		h.offset = 0
	}
	if h.cursor < h.offset {
		h.cursor = h.offset
	}
	if h.cursor >= h.offset+visible {
		h.cursor = h.offset + visible - 1
	}
}

func (h *home) clamp(visible int) {
	if visible < 1 {
		visible = 1
	}
	if h.cursor < h.offset {
		h.offset = h.cursor
	}
	if h.cursor >= h.offset+visible {
		h.offset = h.cursor - visible + 1
	}
}

// visibleCards is how many cards fit across width.
func visibleCards(width int) int {
	n := (width - 2 + cardGap) / (cardWidth + 2 + cardGap)
	if n < 1 {
		n = 1
	}
	if n > len(catalog.Sketches) {
		n = len(catalog.Sketches)
	}
	return n
}

// cardAt maps a column on the gallery row to a sketch index, or -1.
func (h home) cardAt(x, width int) int {
	x -= 1
	if x < 0 {
		return -1
	}
	stride := cardWidth + 2 + cardGap
	i := x / stride
	if x%stride >= cardWidth+2 || i >= visibleCards(width) {
		return -1
	}
	return h.offset + i
}

func (h home) view(st styles, t Theme, width int) (string, int) {
	title := GradientText("V I D Y U T", t.Primary, t.Secondary)
	tagline := st.tagline.Render("RETRO GAMES THAT SPARK PHYSICS LEARNING!")
	nav := st.accent.Render("CONTRIBUTE") + "   " + st.accent.Render("CONTACT")

	top := lipgloss.JoinVertical(lipgloss.Center, "", title, "", tagline, "", nav, "")
	top = lipgloss.PlaceHorizontal(width, lipgloss.Center, top)

	visible := visibleCards(width)
	var cards []string
	for i := h.offset; i < h.offset+visible && i < len(catalog.Sketches); i++ {
		cards = append(cards, h.card(st, catalog.Sketches[i], i == h.cursor))
		if i < h.offset+visible-1 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
	}
	gallery := " " + lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	var scroll string
	if h.offset > 0 {
		scroll += "◀ "
	}
	scroll += st.muted.Render("←/→ or wheel to browse, enter to play")
	if h.offset+visible < len(catalog.Sketches) {
		scroll += " ▶"
	}

	galleryRow := lipgloss.Height(top)
	return lipgloss.JoinVertical(lipgloss.Left, top, gallery, " "+scroll), galleryRow
}

func (h home) card(st styles, sk catalog.Sketch, active bool) string {
	style := st.card
	if active {
		style = st.active
	}
	lines := append([]string{}, previews[sk.ID]...)
	lines = append(lines,
		"",
		st.label.Bold(true).Render(sk.Title),
		st.badges[string(sk.Difficulty)].Render(strings.ToUpper(string(sk.Difficulty))),
	)
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}
