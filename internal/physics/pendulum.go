package physics

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	PendulumDamping = 0.995
	PendulumStart   = math.Pi / 4
)

// Pendulum is a damped simple pendulum hanging from Origin. Angle is
// measured from the downward vertical.
type Pendulum struct {
	Origin   Vec2
	Length   float64
	Angle    float64
	Velocity float64
	Gravity  float64
	Damping  float64
	BobSize  float64
	Color    colorful.Color
}

func NewPendulum(speed, size, w, h float64) *Pendulum {
	p := &Pendulum{
		Angle:   PendulumStart,
		Damping: PendulumDamping,
		Color:   rgb(255, 50, 150),
	}
	p.Resize(w, h)
	p.Reconfigure(speed, size)
	return p
}

// Reconfigure maps the speed and size knobs onto gravity, length and bob.
func (p *Pendulum) Reconfigure(speed, size float64) {
	p.Gravity = 0.4 + speed*0.05
	p.Length = 100 + size*10
	p.BobSize = 20 + size*2
}

// Resize re-anchors the pivot at the top center of the box.
func (p *Pendulum) Resize(w, h float64) {
	p.Origin = Vec2{w / 2, h / 4}
}

// Step advances one frame with semi-implicit Euler and damping.
func (p *Pendulum) Step() {
	acc := -p.Gravity / p.Length * math.Sin(p.Angle)
	p.Velocity += acc
	p.Velocity *= p.Damping
	p.Angle += p.Velocity
}

// Bob is the bob position in canvas coordinates.
func (p *Pendulum) Bob() Vec2 {
	return Vec2{
		p.Origin.X + p.Length*math.Sin(p.Angle),
		p.Origin.Y + p.Length*math.Cos(p.Angle),
	}
}

// DragTo swings the bob toward target and stops it.
func (p *Pendulum) DragTo(target Vec2) {
	d := target.Sub(p.Origin)
	p.Angle = math.Atan2(d.X, d.Y)
	p.Velocity = 0
}

// SetLength changes the rod length; the bob scales with it.
func (p *Pendulum) SetLength(l float64) {
	if l <= 0 {
		return
	}
	p.Length = l
	p.BobSize = l * 0.15
}

func (p *Pendulum) SetGravity(g float64) { p.Gravity = g }

// Energy is kinetic plus potential energy per unit mass, with the pivot
// height as zero potential.
func (p *Pendulum) Energy() float64 {
	v := p.Length * p.Velocity
	return 0.5*v*v - p.Gravity*p.Length*math.Cos(p.Angle)
}
