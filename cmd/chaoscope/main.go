package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/seralo/chaoscope/internal/config"
	"github.com/seralo/chaoscope/internal/metrics"
	"github.com/seralo/chaoscope/internal/pendulum"
	"github.com/seralo/chaoscope/internal/snapshot"
	"github.com/seralo/chaoscope/internal/viz"
	"github.com/seralo/chaoscope/internal/web"
)

var (
	configFile string
	preset     string

	lengthA float64
	massA   float64
	lengthB float64
	massB   float64

	count    int
	delta    float64
	random   bool
	seed     int64
	dt       float64
	steps    int
	duration float64
	workers  int

	snapshotPath string
	svgPath      string
	listenAddr   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoscope",
		Short: "double pendulum chaos ensemble simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the ensemble headless and snapshot the final state",
		RunE:  runHeadless,
	}
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the ensemble with a live terminal view",
		RunE:  runLive,
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream ensemble frames to browsers over a websocket",
		RunE:  runServe,
	}
	inspectCmd := &cobra.Command{
		Use:   "inspect [snapshot.json]",
		Short: "summarize a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectSnapshot,
	}
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure stepping throughput across worker counts",
		RunE:  benchStepping,
	}
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, liveCmd, serveCmd, benchCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
		cmd.Flags().Float64Var(&lengthA, "length-a", config.DefaultLengthA, "arm A rod length")
		cmd.Flags().Float64Var(&massA, "mass-a", config.DefaultMassA, "arm A bob mass")
		cmd.Flags().Float64Var(&lengthB, "length-b", config.DefaultLengthB, "arm B rod length")
		cmd.Flags().Float64Var(&massB, "mass-b", config.DefaultMassB, "arm B bob mass")
		cmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of trajectories")
		cmd.Flags().Float64Var(&delta, "delta", config.DefaultDelta, "per-copy arm B angle perturbation")
		cmd.Flags().BoolVar(&random, "random", false, "randomize every trajectory instead of perturbing one baseline")
		cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = current time)")
		cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "integration timestep")
		cmd.Flags().IntVar(&steps, "steps", config.DefaultStepsPerTick, "sub-steps per frame")
		cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cores)")
	}
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "simulated duration")
	runCmd.Flags().StringVar(&snapshotPath, "out", config.DefaultSnapshotPath, "snapshot output path")
	liveCmd.Flags().StringVar(&snapshotPath, "out", config.DefaultSnapshotPath, "snapshot output path")
	liveCmd.Flags().StringVar(&svgPath, "svg", "frame.svg", "SVG export path for the E key")
	serveCmd.Flags().StringVar(&listenAddr, "listen", config.DefaultListenAddr, "listen address")

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, inspectCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges, in priority order: explicit flags, config file or
// preset, and defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	default:
		cfg = config.DefaultConfig()
	}

	override := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	override("length-a", func() { cfg.PendulumA.Length = lengthA })
	override("mass-a", func() { cfg.PendulumA.Mass = massA })
	override("length-b", func() { cfg.PendulumB.Length = lengthB })
	override("mass-b", func() { cfg.PendulumB.Mass = massB })
	override("count", func() { cfg.Count = count })
	override("delta", func() { cfg.Delta = delta })
	override("random", func() { cfg.Random = random })
	override("seed", func() { cfg.Seed = seed })
	override("dt", func() { cfg.Dt = dt })
	override("steps", func() { cfg.StepsPerTick = steps })
	override("workers", func() { cfg.Workers = workers })
	override("time", func() { cfg.Duration = duration })
	override("out", func() { cfg.SnapshotPath = snapshotPath })
	override("listen", func() { cfg.ListenAddr = listenAddr })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildPopulation(cfg *config.Config) (*pendulum.Population, error) {
	pa, err := pendulum.NewParams(cfg.PendulumA.Length, cfg.PendulumA.Mass)
	if err != nil {
		return nil, fmt.Errorf("pendulum A: %w", err)
	}
	pb, err := pendulum.NewParams(cfg.PendulumB.Length, cfg.PendulumB.Mass)
	if err != nil {
		return nil, fmt.Errorf("pendulum B: %w", err)
	}

	var trajs []pendulum.Trajectory
	if cfg.Random {
		s := cfg.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		trajs = pendulum.RandomTrajectories(rand.New(rand.NewSource(s)), cfg.Count)
	} else {
		trajs = pendulum.PerturbedTrajectories(cfg.BaseTrajectory(), cfg.Count, cfg.Delta)
	}

	pop, err := pendulum.NewPopulation(pa, pb, trajs)
	if err != nil {
		return nil, err
	}
	pop.SetWorkers(cfg.Workers)
	return pop, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pop, err := buildPopulation(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	batch := cfg.Dt * float64(cfg.StepsPerTick)
	simTime := 0.0
	spreadHistory := make([]float64, 0, 512)
	start := time.Now()

loop:
	for simTime < cfg.Duration {
		select {
		case <-ctx.Done():
			fmt.Println("interrupted, snapshotting")
			break loop
		default:
		}

		batchStart := time.Now()
		pop.StepAllN(cfg.Dt, cfg.StepsPerTick)
		simTime += batch

		if s, serr := metrics.PopulationSpread(pop); serr == nil {
			spreadHistory = append(spreadHistory, s.Mean)
		}

		if len(spreadHistory)%60 == 0 {
			fmt.Printf("sim: %8.3fs  batch: %8.3fms  wall: %8.3fs\n",
				simTime,
				float64(time.Since(batchStart).Microseconds())/1000.0,
				time.Since(start).Seconds())
		}
	}

	if len(spreadHistory) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(spreadHistory,
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("Mean spread")))
		fmt.Println()
	}

	if err := snapshot.Save(cfg.SnapshotPath, pop); err != nil {
		return err
	}
	fmt.Printf("snapshot written to %s\n", cfg.SnapshotPath)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pop, err := buildPopulation(cfg)
	if err != nil {
		return err
	}

	if err := viz.Run(pop, cfg.Dt, cfg.StepsPerTick, svgPath); err != nil {
		return err
	}

	if err := snapshot.Save(cfg.SnapshotPath, pop); err != nil {
		return err
	}
	fmt.Printf("snapshot written to %s\n", cfg.SnapshotPath)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pop, err := buildPopulation(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("serving on %s\n", cfg.ListenAddr)
	return web.NewServer(pop, cfg.Dt, cfg.StepsPerTick).ListenAndServe(ctx, cfg.ListenAddr)
}

func inspectSnapshot(cmd *cobra.Command, args []string) error {
	doc, err := snapshot.Read(args[0])
	if err != nil {
		return err
	}
	pop, err := doc.Population()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "arm A\tlength %.4g\tmass %.4g\n", doc.PendulumA.Length, doc.PendulumA.Mass)
	fmt.Fprintf(w, "arm B\tlength %.4g\tmass %.4g\n", doc.PendulumB.Length, doc.PendulumB.Mass)
	fmt.Fprintf(w, "trajectories\t%d\n", len(doc.States))

	if s, err := metrics.PopulationSpread(pop); err == nil {
		fmt.Fprintf(w, "spread\tmean %.6f\tmax %.6f\n", s.Mean, s.Max)
	}
	energy := metrics.Energy(pop.Trajectories()[0], pop.PendulumA(), pop.PendulumB())
	fmt.Fprintf(w, "energy[0]\t%.4f\n", energy)
	return w.Flush()
}

func benchStepping(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "workers\tsteps/s\telapsed")

	for _, n := range []int{1, 2, 4, 8, 0} {
		pop, err := buildPopulation(cfg)
		if err != nil {
			return err
		}
		pop.SetWorkers(n)

		const batches = 20
		start := time.Now()
		for i := 0; i < batches; i++ {
			pop.StepAllN(cfg.Dt, cfg.StepsPerTick)
		}
		elapsed := time.Since(start)

		total := float64(batches*cfg.StepsPerTick) * float64(cfg.Count)
		label := fmt.Sprintf("%d", n)
		if n == 0 {
			label = "all"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%s\n", label, total/elapsed.Seconds(), elapsed)
	}
	return w.Flush()
}
