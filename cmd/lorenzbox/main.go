package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/gui"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/storage"
	"github.com/san-kum/lorenzbox/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// gui
	pane      string
	withAudio bool
	winWidth  int32
	winHeight int32
	// tui
	frameRate int
	gifPath   string
	// record
	frames int
	every  int
	// plot and analyze
	particle     int
	svgPath      string
	portraitPath string
	// snapshot
	snapFrames int
	snapPath   string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lorenzbox: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lorenzbox",
		Short:        "lorenz attractor particle boxes",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", storage.DefaultDir, "data directory")
	addParamFlags(rootCmd)
	addGUIFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addGUIFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	tuiCmd.Flags().StringVar(&gifPath, "gif", "lorenzbox.gif", "where g saves a recording")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless and store particle positions",
		Args:  cobra.NoArgs,
		RunE:  recordRun,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 1000, "frames to simulate")
	recordCmd.Flags().IntVar(&every, "every", 1, "store every n-th frame")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one particle of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particle, "particle", 0, "particle index")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the x-z trajectory as svg")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum and lyapunov estimate of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&particle, "particle", 0, "particle index")
	analyzeCmd.Flags().StringVar(&portraitPath, "svg", "", "also write an x-z phase portrait integrated from the run's first sample")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a headless frame to svg",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 200, "frames to simulate first")
	snapshotCmd.Flags().StringVar(&snapPath, "out", "lorenzbox.svg", "output file")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "bifurcation diagram of z maxima over a parameter",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	addSweepFlags(sweepCmd)

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "record every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %s view, %d particles, dt %g\n", name, p.View, p.ParticleCount, p.Timestep)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved parameters as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(guiCmd, tuiCmd, recordCmd, listCmd, plotCmd, analyzeCmd, snapshotCmd, sweepCmd, scriptCmd, presetsCmd, configCmd)
	return rootCmd
}

func addGUIFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pane, "pane", gui.PaneWidgets, "control panel (widgets, raygui)")
	cmd.Flags().BoolVar(&withAudio, "audio", false, "sonify particle speed")
	cmd.Flags().Int32Var(&winWidth, "width", 1280, "window width")
	cmd.Flags().Int32Var(&winHeight, "height", 900, "window height")
}

func newScene(cmd *cobra.Command) (*sim.Scene, error) {
	p, err := resolveParams(cmd)
	if err != nil {
		return nil, err
	}
	return newSceneFrom(p)
}

func newSceneFrom(p *config.Params) (*sim.Scene, error) {
	scene, err := sim.New(p)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return scene, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	if err := gui.CheckPane(pane); err != nil {
		return err
	}
	scene, err := newScene(cmd)
	if err != nil {
		return err
	}
	return gui.Run(scene, gui.Options{Pane: pane, Audio: withAudio, Width: winWidth, Height: winHeight})
}

func runTUI(cmd *cobra.Command, args []string) error {
	scene, err := newScene(cmd)
	if err != nil {
		return err
	}
	return tui.Run(scene, tui.Options{FPS: frameRate, GIFPath: gifPath})
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tEVERY\tPARTICLES\tDT\tINTEG\tDIVERGED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.4f\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Every,
			run.Particles,
			run.Params.Timestep,
			run.Params.Integrator,
			run.Diverged,
		)
	}
	return w.Flush()
}

// interruptible returns a context cancelled by ctrl-c.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func since(start time.Time) time.Duration { return time.Since(start).Round(time.Millisecond) }
