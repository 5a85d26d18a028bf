// Package shell is the terminal front end: the home gallery and the sketch
// page with its header, game screen, control panel and side menu.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/sketch"
	"github.com/san-kum/vidyut/internal/visuals"
)

const (
	headerHeight = 2
	footerHeight = 1
	cardHeight   = 8
	restartDelay = 100 * time.Millisecond
	debugEnv     = "VIDYUT_DEBUG"
	debugLogFile = "vidyut-debug.log"
)

type screen int

const (
	screenHome screen = iota
	screenSketch
)

type frameMsg time.Time

type loadedMsg struct{ gen int }

type restartMsg struct{ gen int }

// Options configure the shell. Path is the initial route.
type Options struct {
	Path     string
	Config   *config.Config
	Registry *visuals.Registry
	Now      func() time.Time
}

// Model is the bubbletea model of the whole shell.
type Model struct {
	cfg      *config.Config
	registry *visuals.Registry
	now      func() time.Time

	theme  Theme
	styles styles
	width  int
	height int
	year   int
	ticks  int

	screen   screen
	home     home
	current  catalog.Sketch
	menu     sideMenu
	controls controlPanel
	game     *gameScreen
	playing  bool

	loadGen    int
	restartGen int
	pending    tea.Cmd
}

// New builds the shell at opts.Path. An unknown sketch path lands on the
// home page.
func New(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Registry == nil {
		opts.Registry = visuals.NewRegistry()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	theme, ok := GetTheme(opts.Config.Theme)
	if !ok {
		log.Printf("unknown theme %q, using %s", opts.Config.Theme, theme.Name)
	}
	m := Model{
		cfg:      opts.Config,
		registry: opts.Registry,
		now:      opts.Now,
		theme:    theme,
		styles:   newStyles(theme),
		year:     opts.Now().Year(),
		controls: newControlPanel(opts.Config.Settings()),
	}

	sk, found, redirect := catalog.Route(opts.Path)
	if redirect {
		log.Printf("no sketch at %q, redirecting to %s", opts.Path, catalog.Root)
	}
	if found {
		var cmd tea.Cmd
		m, cmd = m.openSketch(sk)
		m.pending = cmd
	}
	return m
}

// Run opens the shell on the alternate screen until the user quits.
func Run(opts Options) error {
	if os.Getenv(debugEnv) != "" {
		f, err := tea.LogToFile(debugLogFile, "vidyut")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if m, ok := final.(Model); ok && m.game != nil {
		m.game.unmount()
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.pending)
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case frameMsg:
		m.ticks++
		if m.screen == screenSketch && m.game != nil {
			m.game.frame()
		}
		return m, m.tick()

	case loadedMsg:
		if m.game == nil || msg.gen != m.loadGen || m.game.phase != phaseLoading {
			return m, nil
		}
		return m.loaded(), nil

	case restartMsg:
		if m.game == nil || msg.gen != m.restartGen {
			return m, nil
		}
		return m.start(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.game != nil {
			m.game.unmount()
		}
		return m, tea.Quit
	case "T":
		m.theme = m.theme.next()
		m.styles = newStyles(m.theme)
		return m, nil
	}

	if m.screen == screenHome {
		return m.homeKey(msg)
	}
	if m.menu.open {
		return m.menuKey(msg)
	}
	return m.sketchKey(msg)
}

func (m Model) homeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := visibleCards(m.width)
	switch msg.String() {
	case "left", "h":
		m.home.move(-1, visible)
	case "right", "l":
		m.home.move(1, visible)
	case "enter", " ":
		return m.openSketch(catalog.Sketches[m.home.cursor])
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.menu.move(-1)
	case "down", "j":
		m.menu.move(1)
	case "enter":
		sk := m.menu.choose()
		m.relayout()
		if sk.ID != m.current.ID {
			return m.openSketch(sk)
		}
	case "esc", "m":
		m.menu.open = false
		m.relayout()
	}
	return m, nil
}

func (m Model) sketchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.goHome(), nil
	case "m":
		m.menu.toggle(m.current.ID)
		m.relayout()
	case "s", "enter":
		return m.start(), nil
	case " ":
		return m.togglePause(), nil
	case "r":
		return m.reset()
	case "up", "k":
		m.controls.moveFocus(-1)
	case "down", "j":
		m.controls.moveFocus(1)
	case "left", "h":
		if m.controls.adjust(-1) {
			m.applyKnobs()
		}
	case "right", "l":
		if m.controls.adjust(1) {
			m.applyKnobs()
		}
	case "[", "]", "tab", "c", "t":
		m.panelKey(msg.String())
	}
	return m, nil
}

// panelKey drives the on-canvas panel of the mounted sketch.
func (m *Model) panelKey(key string) {
	if m.game == nil {
		return
	}
	p := m.game.panel()
	if p == nil {
		return
	}
	switch key {
	case "[":
		p.Nudge(-1)
	case "]":
		p.Nudge(1)
	case "tab":
		p.FocusNext()
	case "c":
		p.Press()
		m.relayout()
	case "t":
		p.CycleTheme()
	}
	if inst := m.game.runner.Current(); inst != nil {
		s := inst.Context().Settings
		m.controls.speed, m.controls.size = knob(s.Speed), knob(s.Size)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.screen == screenHome {
		return m.homeMouse(msg)
	}

	if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		_, buttons := renderHeader(m.styles, m.theme, m.width, m.playing)
		switch hitButton(buttons, msg.X) {
		case buttonMenu:
			m.menu.toggle(m.current.ID)
			m.relayout()
		case buttonStart:
			return m.start(), nil
		case buttonReset:
			return m.reset()
		}
		return m, nil
	}

	if m.game == nil {
		return m, nil
	}
	x0, y0 := m.gameOrigin()
	col, row := msg.X-x0, msg.Y-y0
	inside := col >= 0 && row >= 0 && col < m.game.cols && row < m.game.rows
	if inside {
		m.game.input.MouseX, m.game.input.MouseY = m.game.pointer(col, row)
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.game.input.MousePressed = true
		}
	case tea.MouseActionRelease:
		m.game.input.MousePressed = false
	}
	return m, nil
}

func (m Model) homeMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	visible := visibleCards(m.width)
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.home.scroll(-1, visible)
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.home.scroll(1, visible)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		_, row := m.home.view(m.styles, m.theme, m.width)
		if msg.Y < row || msg.Y >= row+cardHeight {
			return m, nil
		}
		if i := m.home.cardAt(msg.X, m.width); i >= 0 && i < len(catalog.Sketches) {
			return m.openSketch(catalog.Sketches[i])
		}
	}
	return m, nil
}

// openSketch navigates to the sketch page and starts its loading screen.
func (m Model) openSketch(sk catalog.Sketch) (Model, tea.Cmd) {
	if m.game != nil {
		m.game.unmount()
	}
	m.screen = screenSketch
	m.current = sk
	m.menu.open = false
	m.playing = false
	m.controls = newControlPanel(m.cfg.Settings())
	m.home.cursor = catalog.Index(sk.ID)
	m.home.clamp(visibleCards(m.width))

	m.game = newGameScreen(sk, m.cfg.PixelScale)
	m.game.loadStart = m.now()
	m.relayout()

	m.loadGen++
	delay := m.cfg.LoadingDelay
	if delay <= 0 {
		m.game.phase = phaseReady
		return m, nil
	}
	m.game.phase = phaseLoading
	gen := m.loadGen
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return loadedMsg{gen: gen} })
}

// loaded ends the loading screen. A START pressed while loading mounts the
// sketch right away.
func (m Model) loaded() Model {
	m.game.phase = phaseReady
	if m.playing {
		m.mount()
		m.game.phase = phaseRunning
	}
	return m
}

func (m Model) goHome() Model {
	if m.game != nil {
		m.game.unmount()
	}
	m.game = nil
	m.playing = false
	m.menu.open = false
	m.screen = screenHome
	m.loadGen++
	m.restartGen++
	return m
}

// start sets playing. The first start mounts the sketch; later ones only
// resume the frame loop.
func (m Model) start() Model {
	if m.game == nil {
		return m
	}
	m.playing = true
	if m.game.phase == phaseLoading {
		return m
	}
	if !m.game.mounted() {
		m.mount()
	}
	m.game.phase = phaseRunning
	m.game.runner.SetPlaying(true)
	return m
}

func (m Model) togglePause() Model {
	if m.game == nil || !m.game.mounted() {
		return m
	}
	m.playing = !m.playing
	m.game.runner.SetPlaying(m.playing)
	return m
}

// reset pauses now and, after restartDelay, rebuilds the sketch and plays.
func (m Model) reset() (Model, tea.Cmd) {
	if m.game == nil {
		return m, nil
	}
	m.playing = false
	m.game.runner.SetPlaying(false)
	if m.game.mounted() {
		m.game.unmount()
		m.game.phase = phaseReady
	}
	m.restartGen++
	gen := m.restartGen
	return m, tea.Tick(restartDelay, func(time.Time) tea.Msg { return restartMsg{gen: gen} })
}

// applyKnobs hands the control panel values to the mounted sketch, live
// when enabled and supported, otherwise by rebuilding it.
func (m *Model) applyKnobs() {
	if m.game == nil || !m.game.mounted() {
		return
	}
	if m.cfg.LiveTuning && visuals.Reconfigure(m.game.runner.Current(), m.controls.settings()) {
		return
	}
	m.mount()
}

// mount builds the current sketch with the control panel settings and
// mounts it on the game screen.
func (m *Model) mount() {
	settings := m.controls.settings()
	settings.Playing = m.playing
	seed := m.cfg.Seed
	if seed == 0 {
		seed = m.now().UnixNano()
	}
	sk, err := m.registry.Get(m.current.ID, visuals.Params{
		Options: sketch.Options{
			Settings: settings,
			Panel:    m.cfg.Panel(),
			Seed:     seed,
		},
		TrailLength: m.cfg.TrailLength,
	})
	if err != nil {
		log.Printf("mount %s: %v", m.current.ID, err)
		return
	}
	m.game.mount(sk, m.playing)
	log.Printf("mounted %s speed=%.0f size=%.0f seed=%d", m.current.ID, settings.Speed, settings.Size, seed)
}

func (m Model) menuWidth() int {
	if m.menu.open {
		return sideMenuWidth
	}
	return 0
}

// gameArea is the cell size of the canvas region inside its frame.
func (m Model) gameArea() (int, int) {
	cols := m.width - m.menuWidth() - controlPanelWidth - 2
	rows := m.height - headerHeight - footerHeight - 2
	return max(cols, 1), max(rows, 1)
}

// gameOrigin is the screen cell of the canvas top-left corner.
func (m Model) gameOrigin() (int, int) {
	x, y := m.menuWidth()+1, headerHeight+1
	if p := m.game.panel(); p != nil && !p.Bottom() {
		y += m.game.panelHeight()
	}
	return x, y
}

func (m *Model) relayout() {
	if m.game == nil || m.width == 0 {
		return
	}
	m.game.layout(m.gameArea())
}

func (m Model) blinkOn() bool {
	half := max(m.cfg.FPS/2, 1)
	return (m.ticks/half)%2 == 0
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.screen == screenHome {
		return m.viewHome()
	}
	return m.viewSketch()
}

func (m Model) viewHome() string {
	body, _ := m.home.view(m.styles, m.theme, m.width)
	footer := renderHomeFooter(m.styles, m.width)
	gap := m.height - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + footer
}

func (m Model) viewSketch() string {
	header, _ := renderHeader(m.styles, m.theme, m.width, m.playing)
	bodyH := m.height - headerHeight - footerHeight

	var cols []string
	if m.menu.open {
		cols = append(cols, m.menu.view(m.styles, m.current.ID, bodyH))
	}
	game := ""
	if m.game != nil {
		game = m.game.view(m.styles, m.theme, m.now(), m.cfg.LoadingDelay, m.blinkOn())
	}
	cw, ch := m.gameArea()
	frame := m.styles.frame.Width(cw).Height(ch).MaxHeight(ch + 2).Render(game)
	cols = append(cols, frame)

	var readings []sketch.Reading
	var history []float64
	if m.game != nil {
		readings, history = m.game.readings(), m.game.history
	}
	cols = append(cols, m.controls.view(m.styles, m.theme, m.current, readings, history, bodyH))

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, renderFooter(m.styles, m.width, m.year))
}
