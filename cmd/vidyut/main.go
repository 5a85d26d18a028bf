package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/vidyut/internal/catalog"
	"github.com/san-kum/vidyut/internal/config"
	"github.com/san-kum/vidyut/internal/gui"
	"github.com/san-kum/vidyut/internal/shell"
	"github.com/san-kum/vidyut/internal/sketch"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	seed       int64
	speed      float64
	size       float64
	frames     int
	fps        int
	preset     string
	liveTuning bool
	output     string
	column     string
	xColumn    string
	yColumn    string
	trail      bool
	svgScale   float64
	numRuns    int
	metric     string
	maximize   bool
	gridSteps  int
	save       bool
	ascii      bool
)

// main registers the commands and exits 1 when one of them fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "vidyut",
		Short:         "retro physics gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return shell.Run(shell.Options{Path: catalog.Root, Config: cfg})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vidyut", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")

	playCmd := &cobra.Command{
		Use:   "play [sketch]",
		Short: "open the terminal gallery on a sketch",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playSketch,
	}
	knobFlags(playCmd)
	playCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	playCmd.Flags().BoolVar(&liveTuning, "live", false, "retune the running sketch instead of rebuilding it")

	guiCmd := &cobra.Command{
		Use:   "gui [sketch]",
		Short: "open a sketch in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  guiSketch,
	}
	knobFlags(guiCmd)
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	guiCmd.Flags().BoolVar(&liveTuning, "live", false, "retune the running sketch instead of rebuilding it")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list sketches",
		RunE:  listSketches,
	}

	runCmd := &cobra.Command{
		Use:   "run [sketch]",
		Short: "run a sketch off-screen and store its telemetry",
		Args:  cobra.ExactArgs(1),
		RunE:  runSketch,
	}
	knobFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to run")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second of the stored timeline")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "number of runs over consecutive seeds")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run telemetry",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "plot only this column")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&column, "column", "", "column to analyze (default per sketch)")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait of two columns",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&xColumn, "x", "X", "column for the x axis")
	phaseCmd.Flags().StringVar(&yColumn, "y", "Y", "column for the y axis")
	phaseCmd.Flags().BoolVar(&ascii, "ascii", false, "plot with plain characters instead of colored braille")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run telemetry to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and telemetry to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [sketch]",
		Short: "render a sketch off-screen to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	knobFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&frames, "frames", 120, "frames to run before the snapshot")
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().BoolVar(&trail, "trail", false, "draw the traced path instead of the canvas")
	snapshotCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg pixels per braille dot")

	presetsCmd := &cobra.Command{
		Use:   "presets [sketch]",
		Short: "list available presets for a sketch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.Lookup(args[0]); err != nil {
				return err
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for sketch: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				c := config.GetPreset(args[0], p)
				fmt.Printf("  %-8s speed=%.0f size=%.0f\n", p, c.Speed, c.Size)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [sketch]",
		Short: "search the speed and size grid for the best metric",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSketch,
	}
	sweepCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames per trial")
	sweepCmd.Flags().StringVar(&metric, "metric", "", "metric to optimize (default first metric of the sketch)")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "keep the highest value instead of the lowest")
	sweepCmd.Flags().IntVar(&gridSteps, "steps", 5, "knob values per axis")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of sketches from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&save, "save", false, "store every step, not only those marked save")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "vidyut.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, guiCmd, listCmd, runCmd, runsCmd, plotCmd, analyzeCmd, phaseCmd,
		exportCSVCmd, exportJSONCmd, snapshotCmd, sweepCmd, scenarioCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func knobFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&speed, "speed", sketch.DefaultSpeed, "speed knob (1-10)")
	cmd.Flags().Float64Var(&size, "size", sketch.DefaultSize, "size knob (1-10)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig layers the config file, the preset and the flags that were
// set explicitly, then validates the result. id may be empty.
func loadConfig(cmd *cobra.Command, id string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if id != "" {
		cfg.Sketch = id
	}

	if preset != "" {
		if err := cfg.ApplyPreset(cfg.Sketch, preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets(cfg.Sketch))
		}
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("live") {
		cfg.LiveTuning = liveTuning
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sketchArg returns the sketch named by args, or the configured one.
func sketchArg(cmd *cobra.Command, args []string) (*config.Config, catalog.Sketch, error) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	cfg, err := loadConfig(cmd, id)
	if err != nil {
		return nil, catalog.Sketch{}, err
	}
	sk, err := catalog.Lookup(cfg.Sketch)
	if err != nil {
		return nil, catalog.Sketch{}, fmt.Errorf("%w (available: %v)", err, catalog.IDs())
	}
	return cfg, sk, nil
}

func playSketch(cmd *cobra.Command, args []string) error {
	cfg, sk, err := sketchArg(cmd, args)
	if err != nil {
		return err
	}
	return shell.Run(shell.Options{Path: catalog.Path(sk.ID), Config: cfg})
}

func guiSketch(cmd *cobra.Command, args []string) error {
	cfg, sk, err := sketchArg(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(gui.Options{Sketch: sk.ID, Config: cfg})
}

func listSketches(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tKNOBS\tPATH")
	for _, sk := range catalog.Sketches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s / %s\t%s\n",
			sk.ID, sk.Title, sk.Difficulty, sk.SpeedLabel, sk.SizeLabel, catalog.Path(sk.ID))
	}
	return w.Flush()
}
