// Package gui is the raylib window front end. It hosts the same sketches
// as the terminal shell on a render texture.
package gui

import (
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/shell"
	"github.com/san-kum/vidyut/internal/sketch"
	"github.com/san-kum/vidyut/internal/visuals"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	historyLen   = 200
	restartDelay = 100 * time.Millisecond
)

// fontPaths are tried in order after the configured font.
var fontPaths = []string{
	"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/System/Library/Fonts/Menlo.ttc",
	"C:\\Windows\\Fonts\\consola.ttf",
}

type palette struct {
	bg, primary, secondary, accent, text, muted rl.Color
}

func newPalette(t shell.Theme) palette {
	return palette{
		bg:        hexColor(string(t.Background), rl.Black),
		primary:   hexColor(string(t.Primary), rl.Magenta),
		secondary: hexColor(string(t.Secondary), rl.SkyBlue),
		accent:    hexColor(string(t.Accent), rl.Yellow),
		text:      hexColor(string(t.Text), rl.White),
		muted:     hexColor(string(t.Muted), rl.Gray),
	}
}

// Options configure a window session. Sketch is the catalog id to open.
type Options struct {
	Sketch   string
	Config   *config.Config
	Registry *visuals.Registry
}

type App struct {
	cfg      *config.Config
	registry *visuals.Registry
	pal      palette
	font     rl.Font
	host     *Host
	runner   *sketch.Runner
	sketch   catalog.Sketch

	speed, size int
	focus       int
	playing     bool
	quit        bool

	loadStart    float64
	loadingUntil float64
	restartAt    float64

	menuOpen   bool
	menuCursor int

	telemetry []float64
	year      int
}

// pickFont returns the first candidate that exists, starting with custom.
func pickFont(custom string, exists func(string) bool) (string, bool) {
	if custom != "" && exists(custom) {
		return custom, true
	}
	for _, p := range fontPaths {
		if exists(p) {
			return p, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// loadFont loads the configured or a system monospace font, or the raylib
// default when none is installed.
func loadFont(custom string) rl.Font {
	path, ok := pickFont(custom, fileExists)
	if !ok {
		if custom != "" {
			log.Printf("font %q not found, using the default font", custom)
		}
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens a window on opts.Sketch and blocks until it is closed.
func Run(opts Options) error {
	sk, err := catalog.Lookup(opts.Sketch)
	if err != nil {
		return err
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Registry == nil {
		opts.Registry = visuals.NewRegistry()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "vidyut")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(max(opts.Config.FPS, 1)))
	rl.SetExitKey(0)

	app := NewApp(sk, opts.Config, opts.Registry)
	defer app.Close()
	app.RunLoop()
	return nil
}

func NewApp(sk catalog.Sketch, cfg *config.Config, registry *visuals.Registry) *App {
	theme, ok := shell.GetTheme(cfg.Theme)
	if !ok {
		log.Printf("unknown theme %q, using %s", cfg.Theme, theme.Name)
	}
	font := loadFont(cfg.Font)
	host := &Host{font: font}
	s := cfg.Settings().WithDefaults()
	a := &App{
		cfg:       cfg,
		registry:  registry,
		pal:       newPalette(theme),
		font:      font,
		host:      host,
		runner:    sketch.NewRunner(host),
		speed:     clampKnob(int(s.Speed + 0.5)),
		size:      clampKnob(int(s.Size + 0.5)),
		telemetry: make([]float64, 0, historyLen),
		year:      time.Now().Year(),
	}
	a.open(sk)
	return a
}

func (a *App) Close() {
	a.runner.Unmount()
	a.host.Close()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// open switches to sk and restarts its loading delay. The sketch mounts on
// the first start.
func (a *App) open(sk catalog.Sketch) {
	a.runner.Unmount()
	a.sketch = sk
	a.playing = false
	a.restartAt = 0
	a.telemetry = a.telemetry[:0]
	a.loadStart = rl.GetTime()
	a.loadingUntil = a.loadStart + a.cfg.LoadingDelay.Seconds()
}

func (a *App) loading() bool { return a.loadingUntil > 0 }

func (a *App) start() {
	a.playing = true
	if a.loading() {
		return
	}
	if a.runner.Current() == nil {
		a.mount()
	}
	a.runner.SetPlaying(true)
}

func (a *App) togglePause() {
	if a.runner.Current() == nil {
		return
	}
	a.playing = !a.playing
	a.runner.SetPlaying(a.playing)
}

func (a *App) reset() {
	a.playing = false
	a.runner.Unmount()
	a.restartAt = rl.GetTime() + restartDelay.Seconds()
}

func (a *App) settings() sketch.Settings {
	return sketch.Settings{Speed: float64(a.speed), Size: float64(a.size), Playing: a.playing}
}

func (a *App) mount() {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sk, err := a.registry.Get(a.sketch.ID, visuals.Params{
		Options: sketch.Options{
			Settings: a.settings(),
			Panel:    a.cfg.Panel(),
			Seed:     seed,
		},
		TrailLength: a.cfg.TrailLength,
	})
	if err != nil {
		log.Printf("mount %s: %v", a.sketch.ID, err)
		return
	}
	a.telemetry = a.telemetry[:0]
	a.runner.Mount(sk)
	a.runner.SetPlaying(a.playing)
}

// adjust steps the focused knob and rebuilds or retunes the sketch.
func (a *App) adjust(delta int) {
	v := &a.speed
	if a.focus == 1 {
		v = &a.size
	}
	next := clampKnob(*v + delta)
	if next == *v {
		return
	}
	*v = next
	inst := a.runner.Current()
	if inst == nil {
		return
	}
	if a.cfg.LiveTuning && visuals.Reconfigure(inst, a.settings()) {
		return
	}
	a.mount()
}

func clampKnob(v int) int {
	return min(max(v, int(config.MinKnob)), int(config.MaxKnob))
}

func (a *App) Update() {
	now := rl.GetTime()
	if rl.IsWindowResized() {
		a.runner.Resize()
	}
	if a.loading() && now >= a.loadingUntil {
		a.loadingUntil = 0
		if a.playing {
			a.start()
		}
	}
	if a.restartAt > 0 && now >= a.restartAt {
		a.restartAt = 0
		a.start()
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.toggleMenu()
	}
	if a.menuOpen {
		a.updateMenu()
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyS), rl.IsKeyPressed(rl.KeyEnter):
		a.start()
	case rl.IsKeyPressed(rl.KeySpace):
		a.togglePause()
	case rl.IsKeyPressed(rl.KeyR):
		a.reset()
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyDown):
		a.focus = 1 - a.focus
	case rl.IsKeyPressed(rl.KeyLeft):
		a.adjust(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		a.adjust(1)
	}
	a.updatePanel()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch buttonAt(rl.GetScreenWidth(), rl.GetMousePosition()) {
		case buttonMenu:
			a.toggleMenu()
		case buttonStart:
			if !a.playing {
				a.start()
			}
		case buttonReset:
			a.reset()
		}
	}
}

func (a *App) toggleMenu() {
	a.menuOpen = !a.menuOpen
	if i := catalog.Index(a.sketch.ID); i >= 0 {
		a.menuCursor = i
	}
}

func (a *App) updateMenu() {
	n := len(catalog.Sketches)
	switch {
	case rl.IsKeyPressed(rl.KeyDown):
		a.menuCursor = (a.menuCursor + 1) % n
	case rl.IsKeyPressed(rl.KeyUp):
		a.menuCursor = (a.menuCursor + n - 1) % n
	case rl.IsKeyPressed(rl.KeyEnter):
		a.menuOpen = false
		if sk := catalog.Sketches[a.menuCursor]; sk.ID != a.sketch.ID {
			a.open(sk)
		}
	case rl.IsKeyPressed(rl.KeyEscape):
		a.menuOpen = false
	}
}

// updatePanel drives the on-canvas panel and mirrors its sliders into the
// knobs.
func (a *App) updatePanel() {
	inst := a.runner.Current()
	if inst == nil || inst.Context().Panel == nil {
		return
	}
	p := inst.Context().Panel
	switch {
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		p.Nudge(-1)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		p.Nudge(1)
	case rl.IsKeyPressed(rl.KeyTab):
		p.FocusNext()
	case rl.IsKeyPressed(rl.KeyC):
		p.Press()
	case rl.IsKeyPressed(rl.KeyT):
		p.CycleTheme()
	}
	s := inst.Context().Settings
	a.speed, a.size = clampKnob(int(s.Speed+0.5)), clampKnob(int(s.Size+0.5))
}

// input samples the pointer relative to the canvas.
func (a *App) input() sketch.Input {
	r := canvasRect(rl.GetScreenWidth(), rl.GetScreenHeight())
	x, y, inside := pointerIn(r, rl.GetMousePosition())
	return sketch.Input{
		MouseX:       x,
		MouseY:       y,
		MousePressed: inside && rl.IsMouseButtonDown(rl.MouseLeftButton),
	}
}

func pointerIn(r rl.Rectangle, p rl.Vector2) (float64, float64, bool) {
	return float64(p.X - r.X), float64(p.Y - r.Y), rl.CheckCollisionPointRec(p, r)
}

// frame advances the sketch inside its render texture and records the
// energy history.
func (a *App) frame() {
	if a.runner.Current() == nil || a.host.surface == nil {
		return
	}
	rl.BeginTextureMode(a.host.surface.target)
	ran := a.runner.Frame(a.input())
	rl.EndTextureMode()
	if !ran {
		return
	}
	for _, r := range a.runner.Current().Context().Readings() {
		if r.Name == "Energy" {
			a.telemetry = append(a.telemetry, r.Value)
			if len(a.telemetry) > historyLen {
				a.telemetry = a.telemetry[1:]
			}
		}
	}
}

func (a *App) Draw() {
	a.frame()

	rl.BeginDrawing()
	rl.ClearBackground(a.pal.bg)

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.drawHeader(w)
	a.drawGame(canvasRect(w, h))
	a.drawControls(w, h)
	a.drawFooter(w, h)
	if a.menuOpen {
		a.drawMenu(h)
	}

	rl.EndDrawing()
}

func (a *App) status() string {
	if a.playing {
		return "RUNNING"
	}
	return "PAUSED"
}

func (a *App) fps() string { return fmt.Sprintf("%d FPS", rl.GetFPS()) }
