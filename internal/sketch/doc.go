// Package sketch provides the lifecycle and control layer shared by every
// VIDYUT visualization.
//
// A visualization is described by a setup and a draw callback plus an
// optional resize callback. [New] composes them into a [Sketch] which a
// [Host] instantiates on a [Surface]:
//
//   - [Sketch]: setup/draw/resize triple with its [Options]
//   - [Instance]: one running copy of a sketch, owning its [Context]
//   - [Runner]: keeps at most one instance alive, tearing down the old one
//   - [Panel], [Slider], [Toggle]: on-canvas control widgets
//   - [Trail]: bounded FIFO used for fading motion trails
//
// # Play / Pause
//
// Pausing only stops frame invocation; the instance and its physics state
// survive until the runner mounts a replacement.
//
//	inst := runner.Mount(sk)
//	inst.NoLoop() // pause
//	inst.Loop()   // resume
package sketch
