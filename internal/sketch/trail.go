package sketch

const DefaultTrailLength = 50

// Trail is a fixed-capacity FIFO of recent points. The front of Points is
// the oldest entry.
type Trail[T any] struct {
	points []T
	max    int
}

func NewTrail[T any](maxLength int) *Trail[T] {
	if maxLength <= 0 {
		maxLength = DefaultTrailLength
	}
	return &Trail[T]{points: make([]T, 0, maxLength+1), max: maxLength}
}

// Add appends p and evicts the oldest entry once over capacity.
func (t *Trail[T]) Add(p T) {
	t.points = append(t.points, p)
	if len(t.points) > t.max {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
}

// Points returns the live sequence, oldest first.
func (t *Trail[T]) Points() []T { return t.points }

func (t *Trail[T]) Clear()   { t.points = t.points[:0] }
func (t *Trail[T]) Len() int { return len(t.points) }
func (t *Trail[T]) Cap() int { return t.max }

// TrailAlpha maps position i of n to an opacity in [lo, hi).
func TrailAlpha(i, n int, lo, hi float64) float64 {
	if n <= 0 {
		return hi
	}
	return MapRange(float64(i), 0, float64(n), lo, hi)
}
