package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var ErrNoTrials = errors.New("no trial produced the metric")

// Evaluate runs one trial with the given knob values and returns its metrics.
type Evaluate func(ctx context.Context, params map[string]float64) (map[string]float64, error)

// Trial is one point of the grid and the metric it scored.
type Trial struct {
	Params map[string]float64
	Value  float64
}

// GridSearch walks every combination of knob values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	maximize   bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Maximize makes Search keep the highest value instead of the lowest.
func (g *GridSearch) Maximize() *GridSearch {
	g.maximize = true
	return g
}

// Size is the number of trials a search will run.
func (g *GridSearch) Size() int {
	if len(g.ranges) == 0 {
		return 0
	}
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search evaluates the whole grid and returns the best trial along with
// every trial that reported metricName, in grid order. A failing trial
// aborts the search.
func (g *GridSearch) Search(ctx context.Context, eval Evaluate, metricName string) (Trial, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Trial{}, nil, fmt.Errorf("grid has %d names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := Trial{Value: math.Inf(1)}
	if g.maximize {
		best.Value = math.Inf(-1)
	}
	var trials []Trial

	if err := g.searchRecursive(ctx, 0, map[string]float64{}, eval, metricName, &best, &trials); err != nil {
		return Trial{}, trials, err
	}
	if best.Params == nil {
		return Trial{}, trials, fmt.Errorf("%w: %s", ErrNoTrials, metricName)
	}
	return best, trials, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	eval Evaluate,
	metricName string,
	best *Trial,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		ms, err := eval(ctx, current)
		if err != nil {
			return err
		}

		val, ok := ms[metricName]
		if !ok || math.IsNaN(val) {
			return nil
		}
		*trials = append(*trials, Trial{Params: current, Value: val})
		if g.better(val, best.Value) || best.Params == nil {
			*best = Trial{Params: current, Value: val}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, eval, metricName, best, trials); err != nil {
			return err
		}
	}
	return nil
}

func (g *GridSearch) better(val, best float64) bool {
	if g.maximize {
		return val > best
	}
	return val < best
}

// Steps returns n evenly spaced values from lo to hi inclusive.
func Steps(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
