package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/molview/internal/automation"
	"github.com/san-kum/molview/internal/raster"
	"github.com/spf13/cobra"
)

var (
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	sweepTicks int
)

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	// The scenario's preset applies unless one was given on the command line.
	if preset == "" && sc.Preset != "" {
		preset = sc.Preset
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r := raster.New(scenarioWidth, scenarioHeight)
	v, err := newViewer(cfg, r, scenarioWidth, scenarioHeight)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Name != "" {
		fmt.Println(titleStyle.Render("scenario: " + sc.Name))
	}
	results, err := automation.RunScenario(ctx, sc, v, logger())
	for _, res := range results {
		line := fmt.Sprintf("step %d: tick %d  rot %.4f  camera (%.1f, %.1f, %.1f)",
			res.Step, res.Ticks, res.Rotation.X, res.Camera[0], res.Camera[1], res.Camera[2])
		if res.Snapshot != "" {
			line += "  -> " + res.Snapshot
		}
		fmt.Println(line)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.SpinSweep{
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
		Ticks: sweepTicks,
		Base:  cfg,
	})
	if err != nil {
		return err
	}

	return printSweep(results)
}

func printSweep(results []automation.SweepResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPIN\tPERIOD\tEXPECTED\tERROR\tCLEARANCE\tDRIFT")
	for _, r := range results {
		errPct := "-"
		if r.Expected > 0 && r.Period > 0 {
			errPct = fmt.Sprintf("%.1f%%", 100*(r.Period-r.Expected)/r.Expected)
		}
		fmt.Fprintf(w, "%.4f\t%.1f\t%.1f\t%s\t%.2f\t%.2g\n",
			r.Spin, r.Period, r.Expected, errPct,
			r.Metrics["ground_clearance"], r.Metrics["bond_drift"])
	}
	return w.Flush()
}
