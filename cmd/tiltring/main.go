package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rollka/tiltring/internal/analysis"
	"github.com/rollka/tiltring/internal/config"
	"github.com/rollka/tiltring/internal/metrics"
	"github.com/rollka/tiltring/internal/output"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/sensor"
	"github.com/rollka/tiltring/internal/sim"
	"github.com/rollka/tiltring/internal/storage"
	"github.com/rollka/tiltring/internal/track"
	"github.com/rollka/tiltring/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	// Track overrides
	tickRate     int
	friction     float64
	diameter     float64
	gravityScale float64
	// Source overrides
	sourceKind string
	tiltX      float64
	tiltY      float64
	seed       int64
	amplitude  float64
	step       float64
	scriptPath string
	// Run shape
	duration float64
	startPos float64
	display  bool
	record   bool
	// Sweep range
	sweepFrom float64
	sweepTo   float64
	sweepRuns int
	// Export targets
	outPath string
	svgPath string
)

// main is the entry point for the tiltring CLI; it registers commands and flags, defaults to the live view when no subcommand is given, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "tiltring",
		Short: "marble on a circular track, steered by tilt",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log runner internals")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset track constants")
	runCmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "ticks per second")
	runCmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "per-tick speed loss fraction")
	runCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "track diameter (m)")
	runCmd.Flags().Float64Var(&gravityScale, "gravity-scale", config.DefaultGravityScale, "gravity multiplier")
	runCmd.Flags().StringVar(&sourceKind, "source", "wander", "tilt source (static|wander|script|imu)")
	runCmd.Flags().Float64Var(&tiltX, "tilt-x", 0, "static tilt x (m/s², sensor frame)")
	runCmd.Flags().Float64Var(&tiltY, "tilt-y", 0, "static tilt y (m/s², sensor frame)")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "wander seed")
	runCmd.Flags().Float64Var(&amplitude, "amplitude", 6.0, "wander tilt amplitude (m/s²)")
	runCmd.Flags().Float64Var(&step, "step", 0.01, "wander noise step per tick")
	runCmd.Flags().StringVar(&scriptPath, "script", "", "tilt script path (yaml)")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration (s)")
	runCmd.Flags().Float64Var(&startPos, "start", 0, "initial marble position (degrees)")
	runCmd.Flags().BoolVar(&display, "display", false, "show the strip in the terminal, paced to the wall clock")
	runCmd.Flags().BoolVar(&record, "record", false, "save the run into the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive ring view with keyboard tilt",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset track constants")
	liveCmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "ticks per second")
	liveCmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "per-tick speed loss fraction")
	liveCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "track diameter (m)")
	liveCmd.Flags().Float64Var(&gravityScale, "gravity-scale", config.DefaultGravityScale, "gravity multiplier")
	liveCmd.Flags().Float64Var(&startPos, "start", 0, "initial marble position (degrees)")

	deviceCmd := &cobra.Command{
		Use:   "device",
		Short: "drive the led ring from the imu until interrupted",
		RunE:  runDevice,
	}
	deviceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	deviceCmd.Flags().StringVar(&preset, "preset", "", "use preset track constants")
	deviceCmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "ticks per second")
	deviceCmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "per-tick speed loss fraction")
	deviceCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "track diameter (m)")
	deviceCmd.Flags().Float64Var(&gravityScale, "gravity-scale", config.DefaultGravityScale, "gravity multiplier")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and speed of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "trace statistics, dwell table and dominant frequency",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), read for the ring layout")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset track constants")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and trace as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "write an svg snapshot of the final frame")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a friction sweep and compare metrics",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset track constants")
	sweepCmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "ticks per second")
	sweepCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration per variant (s)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.001, "lowest friction")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.15, "highest friction")
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "number of variants")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "base wander seed, incremented per variant")
	sweepCmd.Flags().Float64Var(&amplitude, "amplitude", 6.0, "wander tilt amplitude (m/s²)")
	sweepCmd.Flags().Float64Var(&step, "step", 0.01, "wander noise step per tick")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list track presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tDIAMETER\tFRICTION\tGRAVITY")
			for _, name := range config.PresetNames() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.3fm\t%.4f\t%.2f\n", name, p.Diameter, p.Friction, p.GravityScale)
			}
			return w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure pipeline throughput",
		RunE:  benchPipeline,
	}

	rootCmd.AddCommand(runCmd, liveCmd, deviceCmd, listCmd, plotCmd, analyzeCmd, exportCmd, sweepCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and changed CLI flags over the
// defaults, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.PresetNames(), ", "))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("tick-rate") {
		cfg.TickRate = tickRate
	}
	if cmd.Flags().Changed("friction") {
		cfg.Track.Friction = friction
	}
	if cmd.Flags().Changed("diameter") {
		cfg.Track.Diameter = diameter
	}
	if cmd.Flags().Changed("gravity-scale") {
		cfg.Track.GravityScale = gravityScale
	}
	if cmd.Flags().Changed("source") {
		cfg.Source.Kind = sourceKind
	}
	if cmd.Flags().Changed("tilt-x") {
		cfg.Source.Static.X = tiltX
	}
	if cmd.Flags().Changed("tilt-y") {
		cfg.Source.Static.Y = tiltY
	}
	if cmd.Flags().Changed("seed") {
		cfg.Source.Wander.Seed = seed
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Source.Wander.Amplitude = amplitude
	}
	if cmd.Flags().Changed("step") {
		cfg.Source.Wander.Step = step
	}
	if cmd.Flags().Changed("script") {
		cfg.Source.Script = scriptPath
	}
	if dataDir != "" {
		cfg.Storage.Dir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func geometryFrom(cfg *config.Config) track.Geometry {
	return track.Geometry{
		Diameter:     cfg.Track.Diameter,
		Friction:     cfg.Track.Friction,
		GravityScale: cfg.Track.GravityScale,
	}
}

// buildSource assembles the configured tilt source and wraps it in the
// configured axis remap, so scripts and synthetic sources replay through
// the same mounting correction as the real sensor.
func buildSource(cfg *config.Config) (sensor.Source, error) {
	var src sensor.Source
	switch cfg.Source.Kind {
	case "static":
		src = sensor.Static{X: cfg.Source.Static.X, Y: cfg.Source.Static.Y}
	case "wander":
		src = sensor.NewWander(cfg.Source.Wander.Seed, cfg.Source.Wander.Amplitude, cfg.Source.Wander.Step)
	case "script":
		script, err := sensor.LoadScript(cfg.Source.Script)
		if err != nil {
			return nil, err
		}
		src, err = script.Play(cfg.TickRate)
		if err != nil {
			return nil, err
		}
	case "imu":
		imu, err := sensor.NewMPU9250(sensor.MPU9250Config{
			SPIDev:     cfg.Source.IMU.SPIDev,
			CSPin:      cfg.Source.IMU.CSPin,
			CountsPerG: cfg.Source.IMU.CountsPerG,
		})
		if err != nil {
			return nil, err
		}
		src = imu
	default:
		return nil, fmt.Errorf("unknown source: %s", cfg.Source.Kind)
	}

	m, err := sensor.ParseAxisMap(cfg.Source.AxisX, cfg.Source.AxisY)
	if err != nil {
		return nil, err
	}
	return sensor.WithAxisMap(src, m), nil
}

func buildDevice(cfg *config.Config) (output.Device, error) {
	switch cfg.Output.Device {
	case "null":
		return output.Null{}, nil
	case "terminal":
		return output.NewTerminal(os.Stdout), nil
	case "apa102":
		return output.NewAPA102(output.APA102Config{
			SPIDev:    cfg.Output.SPIDev,
			NumPixels: len(cfg.Layout),
			Exposure:  cfg.Output.Exposure,
		})
	}
	return nil, fmt.Errorf("unknown output device: %s", cfg.Output.Device)
}

func defaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewPeakSpeed(),
		metrics.NewTravel(),
		metrics.NewNetLaps(),
		metrics.NewRestFraction(),
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func storageDir() string {
	if dataDir != "" {
		return dataDir
	}
	return config.DefaultConfig().Storage.Dir
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if display {
		cfg.Output.Device = "terminal"
	}

	physics, err := track.New(geometryFrom(cfg))
	if err != nil {
		return err
	}
	layout, err := render.NewLayout(cfg.Layout)
	if err != nil {
		return err
	}
	source, err := buildSource(cfg)
	if err != nil {
		return err
	}
	defer source.Close()
	device, err := buildDevice(cfg)
	if err != nil {
		return err
	}
	defer device.Close()

	runner := sim.New(physics, render.NewRenderer(layout), source, device, newLogger())
	for _, m := range defaultMetrics() {
		runner.AddMetric(m)
	}

	var recorder *storage.TraceRecorder
	if record {
		recorder = storage.NewTraceRecorder()
		runner.AddObserver(recorder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("running %s tilt for %.1fs at %d hz...\n", cfg.Source.Kind, duration, cfg.TickRate)
	start := time.Now()

	result, err := runner.Run(ctx, track.Marble{Position: startPos}, sim.Config{
		TickRate:      cfg.TickRate,
		Duration:      duration,
		RealTime:      display,
		SnapshotEvery: cfg.SnapshotEvery,
	})
	elapsed := time.Since(start)

	interrupted := err != nil && errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	// Restore the terminal before printing the summary.
	device.Close()

	if interrupted {
		fmt.Println("interrupted")
	}
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("ticks: %d\n", result.Ticks)
	fmt.Printf("final position: %.2f deg, speed: %.4f m/s\n", result.Final.Position, result.Final.Speed)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if record {
		st := storage.New(cfg.Storage.Dir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Source.Kind, cfg.TickRate, physics.Geometry(), cfg.Fingerprint(), result, recorder.Rows())
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	physics, err := track.New(geometryFrom(cfg))
	if err != nil {
		return err
	}
	layout, err := render.NewLayout(cfg.Layout)
	if err != nil {
		return err
	}

	m := viz.NewModel(physics, render.NewRenderer(layout), cfg.TickRate, track.Marble{Position: startPos})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runDevice(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Source.Kind = "imu"
	cfg.Output.Device = "apa102"

	physics, err := track.New(geometryFrom(cfg))
	if err != nil {
		return err
	}
	layout, err := render.NewLayout(cfg.Layout)
	if err != nil {
		return err
	}
	source, err := buildSource(cfg)
	if err != nil {
		return err
	}
	defer source.Close()
	device, err := buildDevice(cfg)
	if err != nil {
		return err
	}
	defer device.Close()

	runner := sim.New(physics, render.NewRenderer(layout), source, device, newLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("driving %d pixels on %s from imu %s at %d hz (ctrl-c to stop)\n",
		len(cfg.Layout), cfg.Output.SPIDev, cfg.Source.IMU.SPIDev, cfg.TickRate)

	_, err = runner.Run(ctx, track.Marble{}, sim.Config{
		TickRate:      cfg.TickRate,
		RealTime:      true,
		SnapshotEvery: cfg.SnapshotEvery,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("stopped")
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(storageDir())
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tCREATED\tTICKS\tDURATION\tFRICTION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fs\t%.4f\n",
			run.ID,
			run.Source,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Duration,
			run.Friction,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(storageDir())
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("samples: %d\n\n", len(trace))

	graph := asciigraph.Plot(analysis.Positions(trace),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("position (degrees)"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(analysis.Speeds(trace),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("speed (m/s)"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	layout, err := render.NewLayout(cfg.Layout)
	if err != nil {
		return err
	}

	st := storage.New(storageDir())
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data")
	}

	sum := analysis.Summarize(trace)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("samples: %d (%.2fs at %d hz)\n\n", sum.Ticks, sum.Duration, meta.TickRate)

	fmt.Println("speed:")
	fmt.Printf("  mean: %+.4f m/s\n", sum.MeanSpeed)
	fmt.Printf("  mean magnitude: %.4f m/s\n", sum.MeanAbsSpeed)
	fmt.Printf("  std: %.4f m/s\n", sum.StdSpeed)
	fmt.Printf("  peak magnitude: %.4f m/s\n", sum.MaxAbsSpeed)
	fmt.Println("position:")
	fmt.Printf("  circular mean: %.1f deg\n", sum.MeanPosition)
	fmt.Printf("  travel: %.1f deg\n", sum.TravelDeg)
	fmt.Printf("  net laps: %+.2f\n", sum.NetLaps)
	fmt.Println()

	dwell := analysis.DwellFractions(trace, layout)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ELEMENT\tANGLE\tDWELL")
	for i, frac := range dwell {
		fmt.Fprintf(w, "%d\t%.0f\t%.1f%%\n", i, layout[i], frac*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	freq := analysis.DominantFrequency(analysis.Speeds(trace), float64(meta.TickRate))
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(storageDir())
	wrote := false

	if svgPath != "" {
		trace, err := st.LoadTrace(runID)
		if err != nil {
			return err
		}
		if len(trace) == 0 {
			return fmt.Errorf("no trace to snapshot")
		}
		layout, err := render.NewLayout(config.DefaultLayout())
		if err != nil {
			return err
		}
		final := trace[len(trace)-1].Position
		frame := render.NewRenderer(layout).Render(final)
		if err := os.WriteFile(svgPath, []byte(viz.RingSVG(layout, frame, final)), 0644); err != nil {
			return err
		}
		fmt.Printf("svg snapshot written to %s\n", svgPath)
		wrote = true
	}

	if outPath != "" {
		if err := st.ExportJSONFile(runID, outPath); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outPath)
		wrote = true
	}

	if wrote {
		return nil
	}
	return st.ExportJSON(runID, os.Stdout)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if sweepRuns < 2 {
		return fmt.Errorf("need at least 2 variants, got %d", sweepRuns)
	}
	if sweepTo <= sweepFrom {
		return fmt.Errorf("friction range is empty: %f to %f", sweepFrom, sweepTo)
	}

	layout, err := render.NewLayout(cfg.Layout)
	if err != nil {
		return err
	}

	specs := make([]sim.SweepSpec, sweepRuns)
	for i := range specs {
		f := sweepFrom + float64(i)*(sweepTo-sweepFrom)/float64(sweepRuns-1)
		specs[i] = sim.SweepSpec{
			Label: fmt.Sprintf("friction=%.4g", f),
			Geometry: track.Geometry{
				Diameter:     cfg.Track.Diameter,
				Friction:     f,
				GravityScale: cfg.Track.GravityScale,
			},
			Seed: cfg.Source.Wander.Seed + int64(i),
		}
	}

	opts := sim.SweepOptions{
		Layout:    layout,
		Amplitude: cfg.Source.Wander.Amplitude,
		Step:      cfg.Source.Wander.Step,
		Config:    sim.Config{TickRate: cfg.TickRate, Duration: duration},
		Metrics:   defaultMetrics,
		Logger:    newLogger(),
	}

	fmt.Printf("sweeping friction %.4g to %.4g across %d variants (%.1fs each)...\n", sweepFrom, sweepTo, sweepRuns, duration)
	start := time.Now()

	results, err := sim.Sweep(context.Background(), specs, opts)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	names := make([]string, 0)
	for _, m := range defaultMetrics() {
		names = append(names, m.Name())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "VARIANT\tTICKS")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(n))
	}
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d", r.Label, r.Result.Ticks)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", r.Result.Metrics[n])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

func benchPipeline(cmd *cobra.Command, args []string) error {
	physics, err := track.New(track.Geometry{
		Diameter:     config.DefaultDiameter,
		Friction:     config.DefaultFriction,
		GravityScale: config.DefaultGravityScale,
	})
	if err != nil {
		return err
	}
	layout, err := render.NewLayout(config.DefaultLayout())
	if err != nil {
		return err
	}

	rates := []int{60, 240, 1000}
	durations := []float64{10.0, 60.0, 300.0}

	fmt.Println("benchmarking pipeline against null output")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RATE\tSIM TIME\tTICKS\tTIME\tTICKS/SEC")

	for _, rate := range rates {
		for _, dur := range durations {
			source := sensor.NewWander(42, 6.0, 0.01)
			runner := sim.New(physics, render.NewRenderer(layout), source, output.Null{}, nil)

			start := time.Now()
			result, err := runner.Run(context.Background(), track.Marble{}, sim.Config{
				TickRate: rate,
				Duration: dur,
			})
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%d hz\t%.0fs\t%d\t%v\t%.0f\n",
				rate, dur, result.Ticks, elapsed, float64(result.Ticks)/elapsed.Seconds())
		}
	}

	return w.Flush()
}
