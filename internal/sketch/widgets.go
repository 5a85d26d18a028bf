package sketch

import (
	"regexp"
	"strconv"
	"strings"
)

// Element is a showable piece of the control panel.
type Element interface {
	ID() string
	Show()
	Hide()
	Visible() bool
}

type element struct {
	id     string
	hidden bool
}

func (e *element) ID() string     { return e.id }
func (e *element) Show()          { e.hidden = false }
func (e *element) Hide()          { e.hidden = true }
func (e *element) Visible() bool  { return !e.hidden }
func (e *element) setID(s string) { e.id = s }

// FormatFunc renders a slider value for its label.
type FormatFunc func(v float64) string

// Fixed returns a FormatFunc with the given number of decimals.
func Fixed(decimals int) FormatFunc {
	return func(v float64) string { return strconv.FormatFloat(v, 'f', decimals, 64) }
}

var whitespace = regexp.MustCompile(`\s+`)

// Slider is a labelled, bounded numeric control.
type Slider struct {
	Track   *element
	Caption *element

	label    string
	min, max float64
	step     float64
	value    float64
	text     string
	format   FormatFunc
	onChange func(float64)
}

// NewSlider builds a slider and parents it to panel when panel is non-nil.
// A nil format shows one decimal.
func NewSlider(panel *Panel, label string, min, max, value, step float64, format FormatFunc, onChange func(float64)) *Slider {
	if format == nil {
		format = Fixed(1)
	}
	s := &Slider{
		Track:    &element{},
		Caption:  &element{},
		label:    label,
		min:      min,
		max:      max,
		step:     step,
		format:   format,
		onChange: onChange,
	}
	slug := strings.ToLower(whitespace.ReplaceAllString(label, "-"))
	s.Caption.setID("label-" + slug)
	s.Track.setID("slider-" + slug)
	s.value = s.constrain(value)
	s.relabel()
	if panel != nil {
		panel.add(s)
	}
	return s
}

func (s *Slider) Value() float64 { return s.value }

// Label returns the caption text, e.g. "GRAVITY: 0.65".
func (s *Slider) Label() string { return s.text }

func (s *Slider) Min() float64  { return s.min }
func (s *Slider) Max() float64  { return s.max }
func (s *Slider) Step() float64 { return s.step }

// SetValue moves the slider programmatically. The change callback is not
// invoked.
func (s *Slider) SetValue(v float64) {
	s.value = s.constrain(v)
	s.relabel()
}

// Input applies a user interaction: the value and caption update, then the
// change callback fires.
func (s *Slider) Input(v float64) {
	s.SetValue(v)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Nudge moves the slider by n steps as if the user dragged it.
func (s *Slider) Nudge(n int) {
	step := s.step
	if step <= 0 {
		step = (s.max - s.min) / 100
	}
	s.Input(s.value + float64(n)*step)
}

// Fraction reports the value position within [min, max].
func (s *Slider) Fraction() float64 {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Slider) elements() []Element { return []Element{s.Caption, s.Track} }

func (s *Slider) relabel() {
	s.text = s.label + ": " + s.format(s.value)
}

func (s *Slider) constrain(v float64) float64 {
	if s.step > 0 {
		n := (v - s.min) / s.step
		// round half away from zero, tolerant of float noise in step sums
		if n >= 0 {
			n = float64(int64(n + 0.5 + 1e-9))
		} else {
			n = float64(int64(n - 0.5 - 1e-9))
		}
		v = s.min + n*s.step
	}
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	return v
}

const (
	DefaultToggleOn  = "HIDE CONTROLS"
	DefaultToggleOff = "SHOW CONTROLS"
)

// Toggle is a button that flips a boolean and shows or hides its targets.
type Toggle struct {
	Button *element

	textOn, textOff string
	state           bool
	targets         []Element
}

// NewToggle builds a toggle and parents it to panel when panel is non-nil.
// Empty texts fall back to the show/hide controls captions.
func NewToggle(panel *Panel, textOn, textOff string, initial bool, targets ...Element) *Toggle {
	if textOn == "" {
		textOn = DefaultToggleOn
	}
	if textOff == "" {
		textOff = DefaultToggleOff
	}
	t := &Toggle{
		Button:  &element{id: "toggle-" + strings.ToLower(whitespace.ReplaceAllString(textOn, "-"))},
		textOn:  textOn,
		textOff: textOff,
		state:   initial,
		targets: targets,
	}
	if panel != nil {
		panel.add(t)
	}
	return t
}

// Press flips the state and syncs every target's visibility with it.
func (t *Toggle) Press() {
	t.state = !t.state
	for _, target := range t.targets {
		if t.state {
			target.Show()
		} else {
			target.Hide()
		}
	}
}

func (t *Toggle) State() bool { return t.state }

// Text is the current button caption.
func (t *Toggle) Text() string {
	if t.state {
		return t.textOn
	}
	return t.textOff
}

func (t *Toggle) elements() []Element { return []Element{t.Button} }
