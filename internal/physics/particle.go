package physics

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	ParticleMaxLife  = 200.0
	ParticleLinkDist = 50.0
)

var particleChannel = channelRange{100, 255}

// Particle is a point mass with a finite life.
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Acc   Vec2
	Size  float64
	Life  float64
	Color colorful.Color
}

// ApplyForce accumulates into the acceleration until the next Update.
func (p *Particle) ApplyForce(f Vec2) { p.Acc = p.Acc.Add(f) }

// Update integrates one frame and consumes one unit of life.
func (p *Particle) Update() {
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel)
	p.Acc = Vec2{}
	p.Life--
}

// Wrap teleports the particle to the opposite edge when it leaves the box.
func (p *Particle) Wrap(w, h float64) {
	switch {
	case p.Pos.X < 0:
		p.Pos.X = w
	case p.Pos.X > w:
		p.Pos.X = 0
	}
	switch {
	case p.Pos.Y < 0:
		p.Pos.Y = h
	case p.Pos.Y > h:
		p.Pos.Y = 0
	}
}

func (p *Particle) Dead() bool { return p.Life <= 0 }

// Alpha fades with remaining life, in [0, 1].
func (p *Particle) Alpha() float64 { return clamp(p.Life/ParticleMaxLife, 0, 1) }

// Link joins two particles closer than ParticleLinkDist.
type Link struct {
	A, B  int
	Alpha float64
}

// ParticleSystem is a fixed-size pool; dead particles are replaced in
// place so indices stay stable.
type ParticleSystem struct {
	Particles []Particle
	Width     float64
	Height    float64
	MaxSpeed  float64
	BaseSize  float64
	Respawned int

	rng *rand.Rand
}

func NewParticleSystem(speed, size, w, h float64, rng *rand.Rand) *ParticleSystem {
	ps := &ParticleSystem{Width: w, Height: h, rng: rng}
	ps.setKnobs(speed, size)
	n := particleCount(size)
	ps.Particles = make([]Particle, n)
	for i := range ps.Particles {
		ps.Particles[i] = ps.spawn()
	}
	return ps
}

func particleCount(size float64) int { return int(50 + size*10) }

func (ps *ParticleSystem) setKnobs(speed, size float64) {
	ps.MaxSpeed = 0.5 + speed*0.2
	ps.BaseSize = 4 + size*0.5
}

func (ps *ParticleSystem) spawn() Particle {
	return Particle{
		Pos: Vec2{randRange(ps.rng, 0, ps.Width), randRange(ps.rng, 0, ps.Height)},
		Vel: Vec2{
			randRange(ps.rng, -ps.MaxSpeed, ps.MaxSpeed),
			randRange(ps.rng, -ps.MaxSpeed, ps.MaxSpeed),
		},
		Size:  ps.BaseSize * randRange(ps.rng, 0.5, 1.5),
		Life:  randRange(ps.rng, 100, ParticleMaxLife),
		Color: randomColor(ps.rng, particleChannel, particleChannel, particleChannel),
	}
}

// Attraction is the pull toward a pointer at distance d.
func Attraction(d float64) float64 { return (50 / (d + 10)) * 0.5 }

// Step advances every particle. When pressed is true and the pointer lies
// strictly inside the box, each particle is pulled toward it.
func (ps *ParticleSystem) Step(pointer Vec2, pressed bool) {
	attract := pressed &&
		pointer.X > 0 && pointer.X < ps.Width &&
		pointer.Y > 0 && pointer.Y < ps.Height

	for i := range ps.Particles {
		p := &ps.Particles[i]
		if attract {
			d := pointer.Dist(p.Pos)
			p.ApplyForce(pointer.Sub(p.Pos).Normalize().Scale(Attraction(d)))
		}
		p.Update()
		p.Wrap(ps.Width, ps.Height)
		if p.Dead() {
			ps.Particles[i] = ps.spawn()
			ps.Respawned++
		}
	}
}

// Links lists particle pairs within ParticleLinkDist; alpha fades from
// 100/255 at zero distance to 0 at the limit.
func (ps *ParticleSystem) Links() []Link {
	var links []Link
	for i := range ps.Particles {
		for j := i + 1; j < len(ps.Particles); j++ {
			d := ps.Particles[i].Pos.Dist(ps.Particles[j].Pos)
			if d < ParticleLinkDist {
				a := (1 - d/ParticleLinkDist) * 100 / 255
				links = append(links, Link{A: i, B: j, Alpha: a})
			}
		}
	}
	return links
}

func (ps *ParticleSystem) Resize(w, h float64) {
	ps.Width, ps.Height = w, h
}

// Reconfigure applies new knobs. The pool grows or shrinks to the new
// count; surviving particles keep their state.
func (ps *ParticleSystem) Reconfigure(speed, size float64) {
	ps.setKnobs(speed, size)
	n := particleCount(size)
	if n < len(ps.Particles) {
		ps.Particles = ps.Particles[:n]
		return
	}
	for len(ps.Particles) < n {
		ps.Particles = append(ps.Particles, ps.spawn())
	}
}

// Energy is the mean kinetic energy per particle.
func (ps *ParticleSystem) Energy() float64 {
	if len(ps.Particles) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.Particles {
		sum += 0.5 * (p.Vel.X*p.Vel.X + p.Vel.Y*p.Vel.Y)
	}
	return sum / float64(len(ps.Particles))
}
