package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func sine(n int, cycles float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(n))
	}
	return out
}

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		cycles float64
		rate   float64
		want   float64
	}{
		{"8 cycles in 256", 256, 8, 256, 8},
		{"non power of two", 300, 5, 60, 1},
		{"offset ignored", 128, 4, 128, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := sine(tt.n, tt.cycles)
			if tt.name == "offset ignored" {
				for i := range data {
					data[i] += 10
				}
			}
			got, err := DominantFrequency(data, tt.rate)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDominantFrequencyTooShort(t *testing.T) {
	if _, err := DominantFrequency([]float64{1, 2}, 60); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	ps := PowerSpectrum(sine(64, 2))
	if len(ps) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("expected no DC after centering, got %f", ps[0])
	}
}

func TestZeroCrossingsAndPeriod(t *testing.T) {
	data := sine(400, 4)
	data[0] = 0.001

	zc := ZeroCrossings(data)
	if len(zc) < 7 {
		t.Fatalf("expected at least 7 crossings, got %d", len(zc))
	}

	p, err := Period(data)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p-100) > 2 {
		t.Errorf("expected period near 100 samples, got %f", p)
	}
}

func TestPhasePortraitASCII(t *testing.T) {
	xs := sine(100, 1)
	ys := sine(100, 2)
	pp := NewPhasePortrait("angle", xs, "velocity", ys[:50])

	if len(pp.Points) != 50 {
		t.Fatalf("expected 50 points, got %d", len(pp.Points))
	}
	out := pp.ASCII(40, 10)
	if len(out) == 0 {
		t.Fatal("expected a plot")
	}
	lines := 0
	for _, c := range out {
		if c == '\n' {
			lines++
		}
	}
	if lines != 10 {
		t.Errorf("expected 10 lines, got %d", lines)
	}
	if (&PhasePortrait{}).ASCII(40, 10) != "" {
		t.Error("expected empty plot for no points")
	}
}

func TestPhasePortraitBraille(t *testing.T) {
	xs := sine(200, 1)
	ys := sine(200, 2)
	pp := NewPhasePortrait("angle", xs, "velocity", ys)

	out := pp.Braille(30, 8, false)
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}
	lit := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n != 30 {
			t.Errorf("row has %d cells, want 30", n)
		}
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	// a closed curve through the middle touches well over one row's worth of cells
	if lit < 30 {
		t.Errorf("only %d lit cells", lit)
	}
	if (&PhasePortrait{}).Braille(30, 8, false) != "" {
		t.Error("expected empty plot for no points")
	}
}

func TestPhasePortraitFlat(t *testing.T) {
	pp := NewPhasePortrait("x", []float64{2, 2, 2}, "y", []float64{5, 5, 5})
	out := pp.ASCII(10, 5)
	if !strings.ContainsRune(out, '•') {
		t.Errorf("flat series should still plot a point:\n%s", out)
	}
}
