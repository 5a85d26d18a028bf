package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/vidyut/internal/catalog"
)

const (
	buttonMenu  = "MENU"
	buttonStart = "START"
	buttonReset = "RESET"
)

type button struct {
	name string
	rect rl.Rectangle
}

// headerButtons lays out the header buttons of a window w pixels wide.
func headerButtons(w int) []button {
	fw := float32(w)
	return []button{
		{buttonMenu, rl.NewRectangle(12, 10, 72, 28)},
		{buttonStart, rl.NewRectangle(fw-280, 10, 80, 28)},
		{buttonReset, rl.NewRectangle(fw-190, 10, 80, 28)},
	}
}

// buttonAt returns the header button under p, or "".
func buttonAt(w int, p rl.Vector2) string {
	for _, b := range headerButtons(w) {
		if rl.CheckCollisionPointRec(p, b.rect) {
			return b.name
		}
	}
	return ""
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawHeader(w int) {
	rl.DrawRectangle(0, 0, int32(w), headerHeight, a.pal.bg)
	rl.DrawLine(0, headerHeight-1, int32(w), headerHeight-1, a.pal.primary)

	for _, b := range headerButtons(w) {
		fill := a.pal.secondary
		switch {
		case b.name == buttonReset:
			fill = a.pal.primary
		case b.name == buttonStart && a.playing:
			fill = a.pal.muted
		}
		rl.DrawRectangleRec(b.rect, fill)
		a.drawText(b.name, int(b.rect.X)+10, int(b.rect.Y)+6, fontSize, a.pal.bg)
	}
	a.drawText("RETRO CODE EXPLORER", 100, 15, 18, a.pal.primary)
	a.drawText("VIDYUT", w-96, 13, 22, a.pal.secondary)
}

func (a *App) drawGame(r rl.Rectangle) {
	rl.DrawRectangleLinesEx(r, 2, a.pal.secondary)
	cx, cy := int(r.X+r.Width/2), int(r.Y+r.Height/2)
	title := strings.ToUpper(a.sketch.Title)
	blink := int(rl.GetTime()*2)%2 == 0

	if a.loading() {
		text := fmt.Sprintf("LOADING %s...", title)
		a.drawText(text, cx-len(text)*5, cy-40, 20, a.pal.primary)

		progress := 1.0
		if span := a.loadingUntil - a.loadStart; span > 0 {
			progress = min(max((rl.GetTime()-a.loadStart)/span, 0), 1)
		}
		bar := rl.NewRectangle(float32(cx-160), float32(cy), 320, 16)
		rl.DrawRectangleLinesEx(bar, 1, a.pal.secondary)
		bar.Width *= float32(progress)
		rl.DrawRectangleRec(bar, a.pal.secondary)
		if blink {
			a.drawText("PLEASE WAIT", cx-55, cy+40, fontSize, a.pal.accent)
		}
		return
	}

	inst := a.runner.Current()
	if inst == nil || a.host.surface == nil {
		text := title + " READY"
		a.drawText(text, cx-len(text)*5, cy-20, 20, a.pal.primary)
		if blink {
			a.drawText("PRESS START TO PLAY", cx-95, cy+20, fontSize, a.pal.accent)
		}
		return
	}

	tex := a.host.surface.target.Texture
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.NewVector2(r.X, r.Y), rl.White)

	if p := inst.Context().Panel; p != nil && p.Visible() {
		a.drawPanel(r, p.Lines(), p.Right(), p.Bottom())
	}
}

// drawPanel draws the on-canvas panel text in the corner it is anchored to.
func (a *App) drawPanel(r rl.Rectangle, lines []string, right, bottom bool) {
	if len(lines) == 0 {
		return
	}
	const lineH, pad, width = 20, 8, 220
	height := float32(len(lines)*lineH + 2*pad)
	box := rl.NewRectangle(r.X+pad, r.Y+pad, width, height)
	if right {
		box.X = r.X + r.Width - width - pad
	}
	if bottom {
		box.Y = r.Y + r.Height - height - pad
	}
	rl.DrawRectangleRec(box, rl.ColorAlpha(a.pal.bg, 0.85))
	rl.DrawRectangleLinesEx(box, 1, a.pal.primary)
	for i, line := range lines {
		col := a.pal.text
		if i == 0 {
			col = a.pal.primary
		}
		a.drawText(line, int(box.X)+pad, int(box.Y)+pad+i*lineH, 14, col)
	}
}

func (a *App) drawControls(w, h int) {
	x := w - controlsWidth + 16
	y := headerHeight + 16
	a.drawText(strings.ToUpper(a.sketch.Title)+" CONTROLS", x, y, 18, a.pal.primary)
	y += 40

	knobs := []struct {
		label string
		value int
	}{
		{a.sketch.SpeedLabel, a.speed},
		{a.sketch.SizeLabel, a.size},
	}
	for i, k := range knobs {
		col := a.pal.text
		if i == a.focus {
			col = a.pal.accent
		}
		a.drawText(fmt.Sprintf("%s: %d", k.label, k.value), x, y, fontSize, col)
		track := rl.NewRectangle(float32(x), float32(y+24), controlsWidth-40, 6)
		rl.DrawRectangleRec(track, a.pal.muted)
		track.Width *= float32(k.value) / 10
		rl.DrawRectangleRec(track, a.pal.secondary)
		y += 56
	}

	a.drawText(a.status(), x, y, fontSize, a.pal.secondary)
	y += 32
	if inst := a.runner.Current(); inst != nil {
		for _, r := range inst.Context().Readings() {
			a.drawText(r.String(), x, y, 14, a.pal.text)
			y += 20
		}
	}
	a.drawTelemetry(x, h-footerHeight-90, controlsWidth-40, 60)
}

func (a *App) drawTelemetry(x, y, width, height int) {
	if len(a.telemetry) < 2 {
		return
	}

	minVal, maxVal := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		minVal, maxVal = min(minVal, v), max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := float32(x) + float32(i)/float32(len(a.telemetry))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(y+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, a.pal.secondary)
	a.drawText(fmt.Sprintf("E: %.2e", a.telemetry[len(a.telemetry)-1]), x, y+height+4, 14, a.pal.muted)
}

func (a *App) drawFooter(w, h int) {
	text := fmt.Sprintf("© %d VIDYUT - INTERACTIVE CODE EXPLORER", a.year)
	a.drawText(text, w/2-len(text)*4, h-footerHeight+6, 14, a.pal.muted)
	a.drawText(a.fps(), 12, h-footerHeight+6, 14, a.pal.muted)
}

func (a *App) drawMenu(h int) {
	const width = 280
	rl.DrawRectangle(0, headerHeight, width, int32(h-headerHeight-footerHeight), rl.ColorAlpha(a.pal.bg, 0.95))
	rl.DrawLine(width, headerHeight, width, int32(h-footerHeight), a.pal.primary)
	a.drawText("SELECT GAME", 20, headerHeight+20, 20, a.pal.primary)

	y := headerHeight + 64
	for i, sk := range catalog.Sketches {
		col := a.pal.text
		prefix := "  "
		if i == a.menuCursor {
			prefix = "> "
			col = a.pal.accent
		}
		if sk.ID == a.sketch.ID {
			col = a.pal.primary
		}
		a.drawText(prefix+sk.Title, 20, y, 18, col)
		a.drawText(strings.ToUpper(string(sk.Difficulty)), 40, y+22, 12, a.pal.muted)
		y += 52
	}
	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT", 20, h-footerHeight-30, 12, a.pal.muted)
}
