package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("series too short")

// PowerSpectrum returns the magnitude of the positive-frequency bins of
// the mean-removed series.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	centered := make([]float64, len(data))
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency of a series
// sampled at sampleRate, in cycles per time unit.
func DominantFrequency(data []float64, sampleRate float64) (float64, error) {
	if len(data) < 4 {
		return 0, ErrTooShort
	}
	ps := PowerSpectrum(data)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) * sampleRate / float64(len(data)), nil
}

// ZeroCrossings returns the indices i where data changes sign between i-1
// and i.
func ZeroCrossings(data []float64) []int {
	var idx []int
	for i := 1; i < len(data); i++ {
		if (data[i-1] < 0 && data[i] >= 0) || (data[i-1] >= 0 && data[i] < 0) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Period estimates the oscillation period in samples from zero crossings.
func Period(data []float64) (float64, error) {
	zc := ZeroCrossings(data)
	if len(zc) < 3 {
		return 0, ErrTooShort
	}
	span := float64(zc[len(zc)-1] - zc[0])
	return 2 * span / float64(len(zc)-1), nil
}
