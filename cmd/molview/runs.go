package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/molview/internal/analysis"
	"github.com/san-kum/molview/internal/export"
	"github.com/san-kum/molview/internal/metrics"
	"github.com/san-kum/molview/internal/storage"
	"github.com/san-kum/molview/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	recordTicks int
	recordEvery int
	recordFPS   int

	plotColumns   []string
	analyzeColumn string
	exportOut     string
	traceX        string
	traceY        string
	traceSVG      string
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if recordTicks <= 0 || recordEvery <= 0 {
		return fmt.Errorf("ticks and every must be positive")
	}

	v, err := newViewer(cfg, &viewer.Headless{}, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	rec := viewer.NewRecorder(uint64(recordEvery))
	v.AddSampler(rec)
	ms := metrics.Standard()
	for _, m := range ms {
		v.AddSampler(m)
	}

	if recordFPS > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		// An interrupted recording keeps what was sampled so far.
		if err := v.RunHeadless(ctx, recordFPS, uint64(recordTicks)); err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		v.Step(recordTicks)
	}

	r := v.Molecule.Rotation
	values := metrics.Collect(ms)
	values["final_rot_x"] = r.X
	values["final_rot_y"] = r.Y
	values["final_rot_z"] = r.Z

	st := storage.New(dataDir)
	id, err := st.Save(storage.RecordingMetadata{
		Ticks:   v.Ticks(),
		Every:   uint64(recordEvery),
		FPS:     cfg.Window.FPS,
		Spin:    v.Spin,
		Preset:  preset,
		Config:  cfg,
		Metrics: values,
	}, rec.Samples)
	if err != nil {
		return err
	}

	fmt.Printf("recording: %s\n", id)
	fmt.Printf("ticks: %d, samples: %d\n", v.Ticks(), len(rec.Samples))
	printMetrics(values)
	return nil
}

func printMetrics(values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-18s %.6f\n", name, values[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tEVERY\tSPIN\tPRESET")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Every,
			run.Spin,
			name,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("recording: " + meta.ID))
	fmt.Printf("samples: %d (every %d ticks)\n\n", len(table.Rows), meta.Every)

	for _, name := range plotColumns {
		data, err := table.Column(name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(name+" vs tick"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	data, err := table.Column(analyzeColumn)
	if err != nil {
		return err
	}
	ticks, err := table.Column("tick")
	if err != nil {
		return err
	}
	rot, err := table.Column("rot_x")
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("analysis: " + meta.ID))

	s := analysis.Summarize(data)
	fmt.Printf("%s: min %.3f  max %.3f  mean %.3f  std %.3f  (n=%d)\n\n",
		analyzeColumn, s.Min, s.Max, s.Mean, s.Std, s.N)

	rate, err := analysis.FitRate(ticks, rot)
	if err != nil {
		return err
	}
	fmt.Printf("spin: %.6f rad/tick (configured %.6f)\n", rate, meta.Spin)

	ps, err := analysis.PowerSpectrum(data)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(ps[1:],
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("power spectrum ("+analyzeColumn+")"),
	)
	fmt.Println(graph)
	fmt.Println()

	peak, err := analysis.DominantPeriod(data, float64(meta.Every))
	if err != nil {
		return err
	}
	if peak.Bin == 0 {
		fmt.Println("no periodic component")
		return nil
	}
	fmt.Printf("dominant period: %.1f ticks (bin %d)\n", peak.Period, peak.Bin)
	if meta.Spin > 0 {
		fmt.Printf("expected period: %.1f ticks\n", 2*math.Pi/meta.Spin)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if exportOut == "" {
		return st.ExportJSON(os.Stdout, args[0])
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := st.ExportJSON(f, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %s to %s\n", args[0], exportOut)
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	table, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	xs, err := table.Column(traceX)
	if err != nil {
		return err
	}
	ys, err := table.Column(traceY)
	if err != nil {
		return err
	}

	p := analysis.NewPortrait(traceX, xs, traceY, ys)
	fmt.Println(titleStyle.Render(traceY + " vs " + traceX))
	fmt.Println(p.ASCII(70, 30))

	if traceSVG == "" {
		return nil
	}
	f, err := os.Create(traceSVG)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.Write(f, export.TrajectoryToSVG(p, 600, 600, "#00ffff"))
}
