// Package render implements sketch surfaces for the terminal.
//
// [Canvas] packs a logical pixel grid into Unicode Braille cells (2x4 dots
// per cell). Each cell keeps a color and an intensity so translucent
// backgrounds fade earlier frames into motion trails.
package render
