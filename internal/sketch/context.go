package sketch

import (
	"math/rand"
	"strconv"
)

const (
	DefaultSpeed = 5.0
	DefaultSize  = 5.0
)

// Settings are the UI-facing knobs passed from the shell to a
// visualization. They are read once at setup.
type Settings struct {
	Speed   float64 `yaml:"speed" json:"speed"`
	Size    float64 `yaml:"size" json:"size"`
	Playing bool    `yaml:"-" json:"playing"`
}

// WithDefaults fills unset knobs with the defaults.
func (s Settings) WithDefaults() Settings {
	if s.Speed == 0 {
		s.Speed = DefaultSpeed
	}
	if s.Size == 0 {
		s.Size = DefaultSize
	}
	return s
}

// Input is the pointer state sampled for a single frame.
type Input struct {
	MouseX, MouseY float64
	MousePressed   bool
}

// Reading is a named telemetry value produced during a frame.
type Reading struct {
	Name      string
	Value     float64
	Precision int
	Display   bool
}

func (r Reading) String() string {
	return r.Name + ": " + strconv.FormatFloat(r.Value, 'f', r.Precision, 64)
}

// Context is the per-instance bag handed to setup, draw and resize.
type Context struct {
	Surface  Surface
	Panel    *Panel
	Settings Settings
	Width    int
	Height   int
	Input    Input
	Frame    int
	Rand     *rand.Rand

	controls map[string]any
	readings []Reading
}

func newContext(settings Settings, seed int64) *Context {
	return &Context{
		Settings: settings.WithDefaults(),
		Rand:     rand.New(rand.NewSource(seed)),
		controls: make(map[string]any),
	}
}

// Report records a telemetry value that is also shown on the canvas.
func (c *Context) Report(name string, value float64, precision int) {
	c.readings = append(c.readings, Reading{Name: name, Value: value, Precision: precision, Display: true})
}

// Record records a telemetry value without displaying it.
func (c *Context) Record(name string, value float64) {
	c.readings = append(c.readings, Reading{Name: name, Value: value, Precision: 4})
}

// Readings returns the telemetry of the last drawn frame.
func (c *Context) Readings() []Reading {
	return c.readings
}

// DrawReadings prints the displayed readings top-down starting at (x, y).
func (c *Context) DrawReadings(x, y, lineHeight float64) {
	if c.Surface == nil {
		return
	}
	white := Gray(255)
	for _, r := range c.readings {
		if !r.Display {
			continue
		}
		c.Surface.Text(x, y, r.String(), white)
		y += lineHeight
	}
}

// Register stores a named control on the context, replacing any previous
// value under the same name.
func Register[T any](c *Context, name string, v T) {
	c.controls[name] = v
}

// Control fetches a named control. A missing name or a value of a
// different type both report ok == false.
func Control[T any](c *Context, name string) (T, bool) {
	v, ok := c.controls[name].(T)
	return v, ok
}
