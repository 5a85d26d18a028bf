package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vidyut/internal/catalog"
)

const sideMenuWidth = 30

// sideMenu lists the catalog for switching sketches in place.
type sideMenu struct {
	open   bool
	cursor int
}

func (s *sideMenu) toggle(active string) {
	s.open = !s.open
	if s.open {
		if i := catalog.Index(active); i >= 0 {
			s.cursor = i
		}
	}
}

func (s *sideMenu) move(delta int) {
	n := len(catalog.Sketches)
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// choose closes the menu and returns the highlighted sketch.
func (s *sideMenu) choose() catalog.Sketch {
	s.open = false
	return catalog.Sketches[s.cursor]
}

func (s sideMenu) view(st styles, active string, height int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("SELECT GAME"))
	b.WriteString(strings.Repeat(" ", sideMenuWidth-4-lipgloss.Width("SELECT GAME")-1))
	b.WriteString(st.muted.Render("×"))
	b.WriteString("\n\n")

	for i, sk := range catalog.Sketches {
		marker := "  "
		title := st.label.Render(sk.Title)
		if sk.ID == active {
			title = st.focus.Render(sk.Title)
		}
		if i == s.cursor {
			marker = st.focus.Render("▶ ")
		}
		badge := st.badges[string(sk.Difficulty)].Render(strings.ToUpper(string(sk.Difficulty)))
		b.WriteString(marker + title + "\n")
		b.WriteString("  " + badge + "\n\n")
	}
	b.WriteString(st.muted.Render("↑/↓ move  enter select"))

	return st.panel.Width(sideMenuWidth - 2).Height(max(height-2, 1)).Render(b.String())
}
