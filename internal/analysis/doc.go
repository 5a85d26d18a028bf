// Package analysis inspects recorded telemetry series.
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of a series
//   - [ZeroCrossings]: sign changes, used to time oscillations
//   - [NewPhasePortrait]: 2D phase space trajectory, drawn in Braille or plain characters
//
// A pendulum run swings at a frequency that can be read back:
//
//	angle, _ := res.Column("Angle")
//	f, _ := analysis.DominantFrequency(angle, fps)
package analysis
