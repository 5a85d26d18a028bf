// Package catalog lists the sketches the shell can open and maps
// /sketch/{id} paths onto them.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Root is the path every unknown route is sent back to.
const Root = "/"

const sketchPrefix = "/sketch/"

var ErrUnknownSketch = errors.New("unknown sketch")

// Sketch describes one gallery entry.
type Sketch struct {
	ID          string
	Title       string
	Difficulty  Difficulty
	Description string
	SpeedLabel  string
	SizeLabel   string
}

// Sketches is the gallery, in display order.
var Sketches = []Sketch{
	{
		ID:          "bouncing-ball",
		Title:       "Bouncing Ball",
		Difficulty:  Easy,
		Description: "A ball ricochets off the walls and changes color on every hit.",
		SpeedLabel:  "SPEED",
		SizeLabel:   "BALL SIZE",
	},
	{
		ID:          "wave-patterns",
		Title:       "Wave Patterns",
		Difficulty:  Medium,
		Description: "Three layered sine waves drifting out of phase.",
		SpeedLabel:  "WAVE SPEED",
		SizeLabel:   "AMPLITUDE",
	},
	{
		ID:          "particle-system",
		Title:       "Particle System",
		Difficulty:  Medium,
		Description: "Short-lived particles that link up when close. Hold the mouse to attract them.",
		SpeedLabel:  "PARTICLE SPEED",
		SizeLabel:   "PARTICLE COUNT",
	},
	{
		ID:          "pendulum",
		Title:       "Pendulum Physics",
		Difficulty:  Hard,
		Description: "A damped pendulum you can grab and release.",
		SpeedLabel:  "GRAVITY",
		SizeLabel:   "LENGTH",
	},
}

// Lookup finds a sketch by id.
func Lookup(id string) (Sketch, error) {
	for _, s := range Sketches {
		if s.ID == id {
			return s, nil
		}
	}
	return Sketch{}, fmt.Errorf("%w: %s", ErrUnknownSketch, id)
}

// IDs returns the sketch ids in display order.
func IDs() []string {
	ids := make([]string, len(Sketches))
	for i, s := range Sketches {
		ids[i] = s.ID
	}
	return ids
}

// Index returns the display position of id, or -1.
func Index(id string) int {
	for i, s := range Sketches {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Path is the route of a sketch page.
func Path(id string) string { return sketchPrefix + id }

// Route resolves a path. The root path yields ok and no sketch. A sketch
// path with a known id yields that sketch. Anything else yields redirect,
// meaning the caller should navigate to Root.
func Route(path string) (s Sketch, found bool, redirect bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return Sketch{}, false, false
	}
	id, ok := strings.CutPrefix(path, sketchPrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return Sketch{}, false, true
	}
	s, err := Lookup(id)
	if err != nil {
		return Sketch{}, false, true
	}
	return s, true, false
}
