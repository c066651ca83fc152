package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func subcommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	cmd, _, err := root.Find([]string{name})
	if err != nil || cmd.Name() != name {
		t.Fatalf("no %s command: %v", name, err)
	}
	return cmd
}

func TestRenderFlagsArePerCommand(t *testing.T) {
	root := newRootCmd()
	snap := subcommand(t, root, "snapshot")
	gif := subcommand(t, root, "gif")

	if err := snap.Flags().Parse([]string{"--no-shadows", "--label=false"}); err != nil {
		t.Fatal(err)
	}
	if !snapNoShadow || snapLabel {
		t.Errorf("snapshot flags not applied: no-shadows=%v label=%v", snapNoShadow, snapLabel)
	}
	if gifNoShadow || !gifLabel {
		t.Errorf("gif flags changed by snapshot: no-shadows=%v label=%v", gifNoShadow, gifLabel)
	}
	if v := gif.Flags().Lookup("label").Value.String(); v != "true" {
		t.Errorf("gif --label = %s", v)
	}
}

func TestScenarioSizeIndependentOfSnapshot(t *testing.T) {
	root := newRootCmd()
	snap := subcommand(t, root, "snapshot")
	scenario := subcommand(t, root, "scenario")

	if err := scenario.Flags().Parse([]string{"--width", "200", "--height", "100"}); err != nil {
		t.Fatal(err)
	}
	if scenarioWidth != 200 || scenarioHeight != 100 {
		t.Errorf("scenario size = %dx%d", scenarioWidth, scenarioHeight)
	}
	if snapWidth != 640 || snapHeight != 360 {
		t.Errorf("snapshot size changed to %dx%d", snapWidth, snapHeight)
	}
	if v := snap.Flags().Lookup("width").Value.String(); v != "640" {
		t.Errorf("snapshot --width = %s", v)
	}
}
