package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/vidyut/internal/shell"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		name  string
		c     colorful.Color
		alpha float64
		want  rl.Color
	}{
		{"opaque", colorful.Color{R: 1, G: 0, B: 0}, 1, rl.NewColor(255, 0, 0, 255)},
		{"translucent", colorful.Color{R: 0, G: 0, B: 0}, 20.0 / 255, rl.NewColor(0, 0, 0, 20)},
		{"clamped alpha", colorful.Color{R: 0, G: 1, B: 0}, 3, rl.NewColor(0, 255, 0, 255)},
		{"clamped channel", colorful.Color{R: 1.5, G: -1, B: 0}, 0, rl.NewColor(255, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toColor(tt.c, tt.alpha); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor("#ff32c8", rl.Black); got != rl.NewColor(255, 50, 200, 255) {
		t.Errorf("unexpected color %v", got)
	}
	if got := hexColor("not a color", rl.Gray); got != rl.Gray {
		t.Errorf("expected fallback, got %v", got)
	}
}

func TestPaletteFromTheme(t *testing.T) {
	p := newPalette(shell.ThemeArcade)
	if p.secondary != rl.NewColor(0, 255, 255, 255) {
		t.Errorf("expected cyan secondary, got %v", p.secondary)
	}
}

func TestCanvasRect(t *testing.T) {
	r := canvasRect(1280, 720)
	if r.X != 0 || r.Y != headerHeight {
		t.Errorf("unexpected origin %v", r)
	}
	if r.Width != 1280-controlsWidth || r.Height != 720-headerHeight-footerHeight {
		t.Errorf("unexpected size %v", r)
	}

	tiny := canvasRect(10, 10)
	if tiny.Width < 1 || tiny.Height < 1 {
		t.Errorf("canvas collapsed to %v", tiny)
	}
}

func TestButtonAt(t *testing.T) {
	tests := []struct {
		p    rl.Vector2
		want string
	}{
		{rl.NewVector2(20, 20), buttonMenu},
		{rl.NewVector2(1280-250, 20), buttonStart},
		{rl.NewVector2(1280-150, 20), buttonReset},
		{rl.NewVector2(640, 20), ""},
		{rl.NewVector2(20, 300), ""},
	}
	for _, tt := range tests {
		if got := buttonAt(1280, tt.p); got != tt.want {
			t.Errorf("buttonAt(%v) = %q, expected %q", tt.p, got, tt.want)
		}
	}
}

func TestPointerIn(t *testing.T) {
	r := canvasRect(1280, 720)
	x, y, inside := pointerIn(r, rl.NewVector2(100, headerHeight+50))
	if !inside || x != 100 || y != 50 {
		t.Errorf("expected (100, 50) inside, got (%v, %v) %v", x, y, inside)
	}
	if _, _, inside := pointerIn(r, rl.NewVector2(1270, 300)); inside {
		t.Error("pointer over the controls counted as inside the canvas")
	}
}

func TestClampKnob(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 1: 1, 7: 7, 10: 10, 11: 10} {
		if got := clampKnob(in); got != want {
			t.Errorf("clampKnob(%d) = %d, expected %d", in, got, want)
		}
	}
}

func TestPickFont(t *testing.T) {
	installed := func(paths ...string) func(string) bool {
		return func(p string) bool {
			for _, q := range paths {
				if p == q {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		name   string
		custom string
		exists func(string) bool
		want   string
		ok     bool
	}{
		{"custom wins", "/home/me/font.ttf", installed("/home/me/font.ttf", fontPaths[0]), "/home/me/font.ttf", true},
		{"missing custom falls back", "/nope.ttf", installed(fontPaths[2]), fontPaths[2], true},
		{"first system font", "", installed(fontPaths[3], fontPaths[1]), fontPaths[1], true},
		{"nothing installed", "", installed(), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickFont(tt.custom, tt.exists)
			if got != tt.want || ok != tt.ok {
				t.Errorf("pickFont = (%q, %v), expected (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
