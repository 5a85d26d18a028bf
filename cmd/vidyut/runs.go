package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/vidyut/internal/analysis"
	"github.com/san-kum/vidyut/internal/export"
	"github.com/san-kum/vidyut/internal/storage"
	"github.com/san-kum/vidyut/internal/visuals"
	"github.com/spf13/cobra"
)

var errNoData = errors.New("no data")

// analysisColumn is the series analyze looks at when --column is unset.
var analysisColumn = map[string]string{
	"bouncing-ball":   "X",
	"wave-patterns":   "Displacement",
	"particle-system": "Energy",
	"pendulum":        "Angle",
}

func runSketch(cmd *cobra.Command, args []string) error {
	cfg, sk, err := sketchArg(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if numRuns < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", numRuns)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := visuals.RunOptions{
		Settings:    cfg.Settings(),
		Frames:      cfg.Frames,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Seed:        cfg.Seed,
		Scale:       cfg.PixelScale,
		TrailLength: cfg.TrailLength,
	}

	fmt.Printf("running %s for %d frames...\n", sk.ID, cfg.Frames)
	start := time.Now()

	registry := visuals.NewRegistry()
	var results []*visuals.Result
	if numRuns == 1 {
		res, err := registry.Run(ctx, sk.ID, opts)
		if err != nil {
			return err
		}
		results = []*visuals.Result{res}
	} else {
		results, err = visuals.NewEnsemble(registry, numRuns, cfg.Seed).Run(ctx, sk.ID, opts)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	for i, res := range results {
		runID, err := st.Save(storage.RunMetadata{
			Sketch:  sk.ID,
			Seed:    cfg.Seed + int64(i),
			Speed:   cfg.Speed,
			Size:    cfg.Size,
			Frames:  len(res.Rows),
			FPS:     cfg.FPS,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Metrics: res.Metrics,
		}, storage.Telemetry{Columns: res.Columns, Rows: res.Rows})
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Printf("completed %d run(s) in %v\n", len(results), elapsed)
	fmt.Printf("frames: %d\n", cfg.Frames)
	fmt.Println("\nmetrics:")
	for name, val := range visuals.MeanMetrics(results) {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKETCH\tTIME\tFRAMES\tSPEED\tSIZE\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.0f\t%d\n",
			run.ID,
			run.Sketch,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Speed,
			run.Size,
			run.Seed,
		)
	}
	return w.Flush()
}

// loadRun returns the metadata and telemetry of a stored run.
func loadRun(runID string) (*storage.RunMetadata, storage.Telemetry, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, storage.Telemetry{}, err
	}
	tel, err := st.LoadTelemetry(runID)
	if err != nil {
		return nil, storage.Telemetry{}, err
	}
	if len(tel.Rows) == 0 {
		return nil, storage.Telemetry{}, fmt.Errorf("run %s: %w", runID, errNoData)
	}
	return meta, tel, nil
}

func series(tel storage.Telemetry, name string) ([]float64, error) {
	data, ok := tel.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q (have %s)", name, strings.Join(tel.Columns, ", "))
	}
	return data, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, tel, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("sketch: %s\n", meta.Sketch)
	fmt.Printf("frames: %d\n\n", len(tel.Rows))

	columns := tel.Columns
	if column != "" {
		columns = []string{column}
	}
	const maxPlots = 6
	plotted := 0
	for _, name := range columns {
		if name == "frame" || plotted == maxPlots {
			continue
		}
		data, err := series(tel, name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs frame"),
		)
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, tel, err := loadRun(args[0])
	if err != nil {
		return err
	}

	name := column
	if name == "" {
		name = analysisColumn[meta.Sketch]
	}
	data, err := series(tel, name)
	if err != nil {
		return err
	}

	rate := float64(meta.FPS)
	if rate <= 0 {
		rate = 1
	}
	freq, err := analysis.DominantFrequency(data, rate)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("sketch: %s, column: %s\n\n", meta.Sketch, name)

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	ps := analysis.PowerSpectrum(padded)
	fmt.Println(asciigraph.Plot(ps[:max(len(ps)/4, 2)],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+name+")"),
	))
	fmt.Println()

	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	if p, err := analysis.Period(data); err == nil {
		fmt.Printf("zero-crossing period: %.1f frames (%.3f s)\n", p, p/rate)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, tel, err := loadRun(args[0])
	if err != nil {
		return err
	}
	xs, err := series(tel, xColumn)
	if err != nil {
		return err
	}
	ys, err := series(tel, yColumn)
	if err != nil {
		return err
	}

	fmt.Printf("phase portrait: %s\n", meta.ID)
	fmt.Printf("sketch: %s\n", meta.Sketch)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", xColumn, yColumn)
	pp := analysis.NewPhasePortrait(xColumn, xs, yColumn, ys)
	if ascii {
		fmt.Println(pp.ASCII(70, 20))
	} else {
		fmt.Println(pp.Braille(70, 20, true))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, tel, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if output != "" {
		return storage.ExportCSV(output, tel)
	}
	return storage.WriteCSV(os.Stdout, tel)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, tel, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if output != "" {
		return storage.ExportJSON(output, *meta, tel)
	}
	return storage.WriteJSON(os.Stdout, *meta, tel)
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, sk, err := sketchArg(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	res, err := visuals.NewRegistry().Run(cmd.Context(), sk.ID, visuals.RunOptions{
		Settings:    cfg.Settings(),
		Frames:      frames,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Seed:        cfg.Seed,
		Scale:       cfg.PixelScale,
		TrailLength: cfg.TrailLength,
	})
	if err != nil {
		return err
	}

	var svg string
	if trail {
		if len(res.Trace) == 0 {
			return fmt.Errorf("%s traces no path: %w", sk.ID, errNoData)
		}
		svg = export.TrajectoryToSVG(res.Trace, cfg.Width, cfg.Height, "#ff32c8")
	} else {
		svg = export.CanvasToSVG(res.Canvas, svgScale)
	}

	if output == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
