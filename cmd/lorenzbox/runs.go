package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenzbox/internal/analysis"
	"github.com/san-kum/lorenzbox/internal/automation"
	"github.com/san-kum/lorenzbox/internal/dynamo"
	"github.com/san-kum/lorenzbox/internal/export"
	"github.com/san-kum/lorenzbox/internal/integrators"
	"github.com/san-kum/lorenzbox/internal/metrics"
	"github.com/san-kum/lorenzbox/internal/physics"
	"github.com/san-kum/lorenzbox/internal/storage"
	"github.com/san-kum/lorenzbox/internal/tui"
	"github.com/spf13/cobra"
)

// stabilityRadius is comfortably outside the classic attractor.
const stabilityRadius = 100

var (
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

var traceColor = colorful.Hsv(190, 0.8, 0.95)

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sweepParam, "param", "rho", "parameter to sweep (sigma, rho, beta)")
	cmd.Flags().Float64Var(&sweepMin, "min", 1, "sweep start")
	cmd.Flags().Float64Var(&sweepMax, "max", 100, "sweep end")
	cmd.Flags().IntVar(&sweepSteps, "steps", 80, "parameter values")
}

func recordRun(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	scene, err := newSceneFrom(p)
	if err != nil {
		return err
	}
	speed := metrics.NewMeanSpeed()
	stab := metrics.NewStability(stabilityRadius)
	scene.AddMetric(speed)
	scene.AddMetric(stab)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	rec, err := st.Record(p, every)
	if err != nil {
		return err
	}
	scene.AddObserver(rec)

	ctx, stop := interruptible()
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "recording %d frames of %d particles...\n", frames, scene.Len())
	start := time.Now()
	result, runErr := scene.Run(ctx, frames)
	if err := rec.Close(result); err != nil {
		return err
	}
	// a run cut short is still worth keeping
	var simErr *dynamo.SimulationError
	if runErr != nil && !errors.Is(runErr, dynamo.ErrContextCanceled) && !errors.As(runErr, &simErr) {
		return runErr
	}

	fmt.Fprintf(out, "completed in %v\n", since(start))
	fmt.Fprintf(out, "run id: %s\n", rec.ID())
	fmt.Fprintf(out, "frames: %d (diverged particles: %d)\n", result.Frames, result.Diverged)
	if runErr != nil {
		fmt.Fprintf(out, "stopped early: %v\n", runErr)
	}
	fmt.Fprintln(out, "\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Fprintf(out, "  %s: %.6f\n", name, val)
	}
	fmt.Fprintf(out, "  max_extent: %.3f\n", stab.MaxExtent())
	return nil
}

func loadTrajectory(runID string) (*storage.RunMetadata, []storage.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, err
	}
	traj := storage.Trajectory(samples, particle)
	if len(traj) < 2 {
		return nil, nil, fmt.Errorf("run %s: not enough samples for particle %d", runID, particle)
	}
	return meta, traj, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadTrajectory(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "particle: %d\n", particle)
	fmt.Fprintf(out, "samples: %d\n\n", len(traj))

	xs := make([]float64, len(traj))
	ys := make([]float64, len(traj))
	zs := make([]float64, len(traj))
	for i, s := range traj {
		xs[i], ys[i], zs[i] = s.X, s.Y, s.Z
	}
	for _, series := range []struct {
		caption string
		data    []float64
	}{{"x", xs}, {"y", ys}, {"z", zs}} {
		fmt.Fprintln(out, asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption+" vs frame"),
		))
		fmt.Fprintln(out)
	}

	if svgPath != "" {
		pts := make([]export.Point, len(traj))
		for i, s := range traj {
			pts[i] = export.Point{X: s.X, Y: s.Z}
		}
		if err := os.WriteFile(svgPath, []byte(export.TrajectoryToSVG(pts, 800, 800, traceColor)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", svgPath)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadTrajectory(args[0])
	if err != nil {
		return err
	}

	zs := make([]float64, len(traj))
	for i, s := range traj {
		zs[i] = s.Z
	}
	sampleDt := meta.Params.Timestep * float64(max(meta.Every, 1))
	bins := analysis.Spectrum(zs, sampleDt)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "analysis: %s (particle %d)\n\n", meta.ID, particle)
	if plot := analysis.Powers(bins); len(plot) > 8 {
		fmt.Fprintln(out, asciigraph.Plot(plot[:len(plot)/4],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (z)"),
		))
		fmt.Fprintln(out)
	}
	if peak, ok := analysis.Dominant(bins); ok && peak.Freq > 0 {
		fmt.Fprintf(out, "dominant frequency: %.3f per time unit\n", peak.Freq)
		fmt.Fprintf(out, "period: %.3f time units\n", 1/peak.Freq)
	}

	sys := physics.NewLorenzWith(meta.Params.Sigma, meta.Params.Rho, meta.Params.Beta)
	integ, err := integrators.Get(meta.Params.Integrator)
	if err != nil {
		return err
	}
	x0 := dynamo.State{traj[0].X, traj[0].Y, traj[0].Z}
	lambda, err := analysis.LyapunovExponent(sys, integ, x0, meta.Params.Timestep, 5, 50, 1e-8)
	if err != nil {
		return fmt.Errorf("lyapunov: %w", err)
	}
	regime := "regular"
	if lambda > 0.01 {
		regime = "chaotic"
	}
	fmt.Fprintf(out, "largest lyapunov exponent: %.4f (%s)\n", lambda, regime)

	if portraitPath != "" {
		portrait, err := analysis.PhasePortrait(sys, integ, x0, 0, 2, meta.Params.Timestep, 40)
		if len(portrait) < 2 {
			return fmt.Errorf("phase portrait: %d points (%v)", len(portrait), err)
		}
		pts := make([]export.Point, len(portrait))
		for i, pp := range portrait {
			pts[i] = export.Point{X: pp.X, Y: pp.Y}
		}
		if err := os.WriteFile(portraitPath, []byte(export.TrajectoryToSVG(pts, 800, 800, traceColor)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d points)\n", portraitPath, len(pts))
	}
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	scene, err := newSceneFrom(p)
	if err != nil {
		return err
	}
	painter := tui.NewPainter(scene.Params, 100, 40)
	scene.AddObserver(painter)

	ctx, stop := interruptible()
	defer stop()
	if _, err := scene.Run(ctx, max(snapFrames, 1)); err != nil {
		return err
	}
	svg := export.CanvasToSVG(painter.Canvas(), 3, traceColor)
	if err := os.WriteFile(snapPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d dots)\n", snapPath, painter.Canvas().Count())
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	sys := physics.NewLorenzWith(p.Sigma, p.Rho, p.Beta)
	integ, err := integrators.Get(p.Integrator)
	if err != nil {
		return err
	}
	data, err := analysis.BifurcationDiagram(sys, integ, sys.DefaultState(), analysis.Sweep{
		Param:      sweepParam,
		Min:        sweepMin,
		Max:        sweepMax,
		Steps:      sweepSteps,
		StateIndex: 2,
		Dt:         p.Timestep,
		Transient:  20,
		Record:     20,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "z maxima for %s in [%g, %g]\n\n", sweepParam, sweepMin, sweepMax)
	fmt.Fprintln(out, analysis.BifurcationCanvas(data, 80, 24).String())
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	ctx, stop := interruptible()
	defer stop()

	out := cmd.OutOrStdout()
	results, err := automation.RunScenario(ctx, scenario, storage.New(dataDir), out)
	for _, r := range results {
		fmt.Fprintf(out, "  %-16s %s  %d frames\n", r.Step, r.RunID, r.Result.Frames)
	}
	return err
}
