// Package physics holds the per-frame state machines behind the VIDYUT
// visualizations.
//
// Every model advances by one animation frame per Step call; units are
// logical pixels and frames rather than SI units:
//
//   - [Ball]: wall-bouncing disc that recolors on every bounce
//   - [Wave]: additive sine/cosine layers
//   - [ParticleSystem]: wrapping particles with pointer attraction
//   - [Pendulum]: damped nonlinear pendulum with drag interaction
//
// Randomness always comes from an explicitly seeded *rand.Rand so that a
// run is reproducible from its seed.
package physics
