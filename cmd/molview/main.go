package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/export"
	"github.com/san-kum/molview/internal/gui"
	"github.com/san-kum/molview/internal/metrics"
	"github.com/san-kum/molview/internal/raster"
	"github.com/san-kum/molview/internal/scene"
	"github.com/san-kum/molview/internal/viewer"
	"github.com/san-kum/molview/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	tuiFPS int

	headlessTicks int
	headlessFPS   int

	snapTicks    int
	snapWidth    int
	snapHeight   int
	snapOut      string
	snapNoShadow bool
	snapLabel    bool

	gifFrames   int
	gifEvery    int
	gifWidth    int
	gifHeight   int
	gifOut      string
	gifNoShadow bool
	gifLabel    bool

	svgTicks int
	svgCols  int
	svgRows  int
	svgOut   string

	sceneTicks int

	scenarioWidth  int
	scenarioHeight int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. With no subcommand it opens
// the desktop viewer.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "molview",
		Short:        "methane molecule viewer",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".molview", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log viewer diagnostics to stderr")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop viewer",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the viewer in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&tuiFPS, "fps", 0, "frame rate (default from config)")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "tick the viewer without a display",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().IntVar(&headlessTicks, "ticks", 600, "ticks to run (0 = until interrupted)")
	headlessCmd.Flags().IntVar(&headlessFPS, "fps", 0, "tick rate (default from config)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame offscreen to PNG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapTicks, "ticks", 0, "ticks to advance before the frame")
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 640, "image width")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 360, "image height")
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "molview.png", "output file")
	snapshotCmd.Flags().BoolVar(&snapNoShadow, "no-shadows", false, "disable shadows")
	snapshotCmd.Flags().BoolVar(&snapLabel, "label", true, "stamp the tick on the image")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "render an animated GIF offscreen",
		RunE:  runGIF,
	}
	gifCmd.Flags().IntVar(&gifFrames, "frames", 120, "frames to capture")
	gifCmd.Flags().IntVar(&gifEvery, "every", 5, "ticks between frames")
	gifCmd.Flags().IntVar(&gifWidth, "width", 320, "image width")
	gifCmd.Flags().IntVar(&gifHeight, "height", 240, "image height")
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "molview.gif", "output file")
	gifCmd.Flags().BoolVar(&gifNoShadow, "no-shadows", false, "disable shadows")
	gifCmd.Flags().BoolVar(&gifLabel, "label", true, "stamp the tick on each frame")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write the terminal frame as SVG",
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&svgTicks, "ticks", 0, "ticks to advance before the frame")
	svgCmd.Flags().IntVar(&svgCols, "cols", 80, "canvas columns")
	svgCmd.Flags().IntVar(&svgRows, "rows", 24, "canvas rows")
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "molview.svg", "output file")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless and store the molecule's motion",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&recordTicks, "ticks", 1200, "ticks to record")
	recordCmd.Flags().IntVar(&recordEvery, "every", 1, "sample every n ticks")
	recordCmd.Flags().IntVar(&recordFPS, "fps", 0, "pace ticks at this rate (0 = as fast as possible)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [recording_id]",
		Short: "plot recorded columns",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&plotColumns, "columns", []string{"rot_x", "h1_x", "h1_y", "h1_z"}, "columns to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [recording_id]",
		Short: "spin rate and rotation period of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&analyzeColumn, "column", "h1_y", "column to analyse")

	exportCmd := &cobra.Command{
		Use:   "export [recording_id]",
		Short: "export a recording as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	traceCmd := &cobra.Command{
		Use:   "trace [recording_id]",
		Short: "plot one column against another",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRun,
	}
	traceCmd.Flags().StringVar(&traceX, "x", "h1_x", "column for the x axis")
	traceCmd.Flags().StringVar(&traceY, "y", "h1_z", "column for the y axis")
	traceCmd.Flags().StringVar(&traceSVG, "svg", "", "also write the trace as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPIN\tDISTANCE\tFOV\tSHADOWS\tDAMPING")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.4f\t%.0f\t%.0f\t%v\t%v\n",
					name, c.Spin, c.Camera.Distance, c.Camera.FOV, c.Shadows, c.Camera.Damping)
			}
			return w.Flush()
		},
	}

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "dump the scene graph as YAML",
		RunE:  dumpScene,
	}
	sceneCmd.Flags().IntVar(&sceneTicks, "ticks", 0, "ticks to advance before dumping")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted YAML scenario offscreen",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().IntVar(&scenarioWidth, "width", 640, "snapshot width")
	scenarioCmd.Flags().IntVar(&scenarioHeight, "height", 360, "snapshot height")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare rotation periods across spin rates",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.005, "lowest spin")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.05, "highest spin")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 4, "number of spin values")
	sweepCmd.Flags().IntVar(&sweepTicks, "ticks", 2520, "ticks per run")

	rootCmd.AddCommand(guiCmd, tuiCmd, headlessCmd, snapshotCmd, gifCmd, svgCmd, recordCmd,
		listCmd, plotCmd, analyzeCmd, exportCmd, traceCmd, presetsCmd, sceneCmd,
		scenarioCmd, sweepCmd)
	return rootCmd
}

// loadConfig resolves the preset, then the config file over it. Command
// flags are applied by each command afterwards.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.MustPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	return cfg, nil
}

func logger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "molview: ", log.LstdFlags|log.Lmicroseconds)
}

func newViewer(cfg *config.Config, surface viewer.Surface, w, h int) (*viewer.Viewer, error) {
	v, err := viewer.New(cfg, surface, w, h)
	if err != nil {
		return nil, err
	}
	v.SetLogger(logger())
	return v, nil
}

// advance runs n ticks. All but the last draw to a throwaway surface, so
// offscreen renderers only pay for the frame that is kept. With n <= 0 the
// current state is drawn without ticking.
func advance(v *viewer.Viewer, n int) {
	if n <= 0 {
		v.Surface.Render(v.Scene, v.Camera)
		return
	}
	out := v.Surface
	v.Surface = &viewer.Headless{}
	v.Step(n - 1)
	v.Surface = out
	v.Tick()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return gui.Run(cfg, logger())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Window.FPS = tuiFPS
	}

	surface := viz.NewWireSurface(160, 96)
	v, err := newViewer(cfg, surface, 160, 96)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(v, surface, cfg.Window.FPS, cfg.Theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rate := cfg.Window.FPS
	if cmd.Flags().Changed("fps") {
		rate = headlessFPS
	}

	v, err := newViewer(cfg, &viewer.Headless{}, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ms := metrics.Standard()
	for _, m := range ms {
		v.AddSampler(m)
	}

	start := time.Now()
	err = v.RunHeadless(ctx, rate, uint64(max(headlessTicks, 0)))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	r := v.Molecule.Rotation
	fmt.Printf("ticks: %d in %v\n", v.Ticks(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("rotation: x=%.4f y=%.4f z=%.4f\n", r.X, r.Y, r.Z)
	printMetrics(metrics.Collect(ms))
	return nil
}

func offscreen(cfg *config.Config, w, h int, noShadows bool) (*raster.Renderer, *viewer.Viewer, error) {
	if noShadows {
		cfg.Shadows = false
	}
	r := raster.New(w, h)
	v, err := newViewer(cfg, r, w, h)
	if err != nil {
		return nil, nil, err
	}
	return r, v, nil
}

func stamp(r *raster.Renderer, v *viewer.Viewer, on bool) {
	if on {
		raster.Label(r.Frame(), fmt.Sprintf("tick %d", v.Ticks()), color.White)
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, v, err := offscreen(cfg, snapWidth, snapHeight, snapNoShadow)
	if err != nil {
		return err
	}
	advance(v, snapTicks)
	stamp(r, v, snapLabel)

	f, err := os.Create(snapOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := r.EncodePNG(f); err != nil {
		return err
	}
	fmt.Printf("wrote %dx%d frame at tick %d to %s\n", snapWidth, snapHeight, v.Ticks(), snapOut)
	return nil
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if gifFrames <= 0 || gifEvery <= 0 {
		return fmt.Errorf("frames and every must be positive")
	}
	r, v, err := offscreen(cfg, gifWidth, gifHeight, gifNoShadow)
	if err != nil {
		return err
	}

	// GIF delays are in hundredths of a second.
	rec := raster.NewGIFRecorder(max(gifEvery*100/cfg.Window.FPS, 2))

	start := time.Now()
	for i := 0; i < gifFrames; i++ {
		advance(v, gifEvery)
		stamp(r, v, gifLabel)
		rec.Add(r.Frame())
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames (%d ticks) to %s in %v\n", rec.Len(), v.Ticks(), gifOut, time.Since(start).Round(time.Millisecond))
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, h := svgCols*2, svgRows*4
	surface := viz.NewWireSurface(w, h)
	v, err := newViewer(cfg, surface, w, h)
	if err != nil {
		return err
	}
	advance(v, svgTicks)

	theme := viz.Themes[viz.ThemeIndex(cfg.Theme)]
	svg := export.CanvasToSVG(surface.Canvas(), 4, string(theme.Canvas))

	f, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.Write(f, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %dx%d canvas to %s\n", svgCols, svgRows, svgOut)
	return nil
}

func dumpScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := newViewer(cfg, &viewer.Headless{}, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	v.Step(sceneTicks)

	data, err := scene.MarshalYAML(v.Scene)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
