package visuals

import (
	"context"
	"fmt"
	"sync"
)

// Ensemble repeats one headless run over consecutive seeds.
type Ensemble struct {
	registry  *Registry
	numRuns   int
	seedStart int64
}

func NewEnsemble(r *Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{registry: r, numRuns: numRuns, seedStart: seedStart}
}

// Run plays the runs concurrently. Run i uses seed seedStart+i and its own
// default metrics; opts.Metrics and opts.Seed are ignored. opts.Input must
// be safe for concurrent use.
func (e *Ensemble) Run(ctx context.Context, id string, opts RunOptions) ([]*Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("ensemble needs at least 1 run, got %d", e.numRuns)
	}
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			optsCopy := opts
			optsCopy.Seed = e.seedStart + int64(idx)
			optsCopy.Metrics = nil

			results[idx], errs[idx] = e.registry.Run(ctx, id, optsCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanMetrics averages each metric over the results that report it.
func MeanMetrics(results []*Result) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range results {
		for name, v := range r.Metrics {
			sums[name] += v
			counts[name]++
		}
	}
	for name := range sums {
		sums[name] /= float64(counts[name])
	}
	return sums
}
