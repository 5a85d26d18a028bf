package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/san-kum/vidyut/internal/automation"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/metrics"
	"github.com/san-kum/vidyut/internal/optim"
	"github.com/san-kum/vidyut/internal/sketch"
	"github.com/san-kum/vidyut/internal/storage"
	"github.com/san-kum/vidyut/internal/visuals"
	"github.com/spf13/cobra"
)

func sweepSketch(cmd *cobra.Command, args []string) error {
	cfg, sk, err := sketchArg(cmd, args)
	if err != nil {
		return err
	}
	if gridSteps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", gridSteps)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	name := metric
	if name == "" {
		ms := metrics.Default(sk.ID)
		if len(ms) == 0 {
			return fmt.Errorf("%s reports no metrics", sk.ID)
		}
		name = ms[0].Name()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := visuals.NewRegistry()
	knobs := optim.Steps(config.MinKnob, config.MaxKnob, gridSteps)
	grid := optim.NewGridSearch([]string{"speed", "size"}, [][]float64{knobs, knobs})
	if maximize {
		grid.Maximize()
	}

	fmt.Printf("sweeping %s over %d trials of %d frames...\n", sk.ID, grid.Size(), cfg.Frames)
	start := time.Now()

	// every trial shares the seed so only the knobs differ
	eval := func(ctx context.Context, p map[string]float64) (map[string]float64, error) {
		res, err := registry.Run(ctx, sk.ID, visuals.RunOptions{
			Settings:    sketch.Settings{Speed: p["speed"], Size: p["size"]},
			Frames:      cfg.Frames,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Seed:        cfg.Seed,
			Scale:       cfg.PixelScale,
			TrailLength: cfg.TrailLength,
		})
		if err != nil {
			return nil, err
		}
		return res.Metrics, nil
	}

	best, trials, err := grid.Search(ctx, eval, name)
	if err != nil {
		return err
	}

	sort.SliceStable(trials, func(i, j int) bool {
		if maximize {
			return trials[i].Value > trials[j].Value
		}
		return trials[i].Value < trials[j].Value
	})
	if len(trials) > 10 {
		trials = trials[:10]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SPEED\tSIZE\t%s\n", name)
	for _, tr := range trials {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.6f\n", tr.Params["speed"], tr.Params["size"], tr.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest: speed=%.2f size=%.2f %s=%.6f (%v)\n",
		best.Params["speed"], best.Params["size"], name, best.Value, time.Since(start))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	base := visuals.RunOptions{
		Frames:      cfg.Frames,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Seed:        cfg.Seed,
		Scale:       cfg.PixelScale,
		TrailLength: cfg.TrailLength,
	}
	results, runErr := automation.RunScenario(ctx, scenario, visuals.NewRegistry(), base, os.Stdout)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for i, sr := range results {
		fmt.Printf("step %d %s:", i+1, sr.Result.ID)
		for _, k := range sortedKeys(sr.Result.Metrics) {
			fmt.Printf(" %s=%.4f", k, sr.Result.Metrics[k])
		}
		fmt.Println()

		if !save && !sr.Step.Save {
			continue
		}
		settings := sketch.Settings{Speed: sr.Step.Speed, Size: sr.Step.Size}.WithDefaults()
		runSeed := cfg.Seed
		if sr.Step.Seed != 0 {
			runSeed = sr.Step.Seed
		}
		runID, err := st.Save(storage.RunMetadata{
			Sketch:  sr.Result.ID,
			Seed:    runSeed,
			Speed:   settings.Speed,
			Size:    settings.Size,
			Frames:  len(sr.Result.Rows),
			FPS:     cfg.FPS,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Metrics: sr.Result.Metrics,
		}, storage.Telemetry{Columns: sr.Result.Columns, Rows: sr.Result.Rows})
		if err != nil {
			return err
		}
		fmt.Printf("  run id: %s\n", runID)
	}
	return runErr
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
