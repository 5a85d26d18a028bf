package physics

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ballRed   = channelRange{100, 255}
	ballGreen = channelRange{50, 200}
	ballBlue  = channelRange{100, 255}
)

// Ball bounces inside a rectangle and changes color on every bounce.
type Ball struct {
	Pos     Vec2
	Vel     Vec2
	Size    float64
	Color   colorful.Color
	Bounces int

	rng *rand.Rand
}

// NewBall derives the ball from the speed and size knobs.
func NewBall(speed, size float64, rng *rand.Rand) *Ball {
	v := ballSpeed(speed)
	return &Ball{
		Pos:   Vec2{100, 100},
		Vel:   Vec2{v, v},
		Size:  ballDiameter(size),
		Color: rgb(255, 50, 200),
		rng:   rng,
	}
}

func ballSpeed(speed float64) float64   { return 2 + speed/2 }
func ballDiameter(size float64) float64 { return 20 + size*5 }

// Step moves the ball one frame inside a w x h box. A ball touching a wall
// while moving into it has that velocity component reflected, is pulled
// back inside and gets a new color.
func (b *Ball) Step(w, h float64) bool {
	b.Pos = b.Pos.Add(b.Vel)
	r := b.Size / 2
	bounced := false

	if (b.Pos.X <= r && b.Vel.X < 0) || (b.Pos.X >= w-r && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
		b.Pos.X = clamp(b.Pos.X, r, w-r)
		bounced = true
	}
	if (b.Pos.Y <= r && b.Vel.Y < 0) || (b.Pos.Y >= h-r && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = clamp(b.Pos.Y, r, h-r)
		bounced = true
	}
	if bounced {
		b.Bounces++
		b.recolor()
	}
	return bounced
}

func (b *Ball) recolor() {
	prev := b.Color
	for b.Color == prev {
		b.Color = randomColor(b.rng, ballRed, ballGreen, ballBlue)
	}
}

// Reconfigure applies new knobs while keeping position and heading.
func (b *Ball) Reconfigure(speed, size float64) {
	v := ballSpeed(speed)
	b.Vel = Vec2{sign(b.Vel.X) * v, sign(b.Vel.Y) * v}
	b.Size = ballDiameter(size)
}

// Energy is the kinetic energy per unit mass.
func (b *Ball) Energy() float64 {
	return 0.5 * (b.Vel.X*b.Vel.X + b.Vel.Y*b.Vel.Y)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
