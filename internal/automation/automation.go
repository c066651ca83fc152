// Package automation drives a viewer from scripted YAML scenarios and runs
// spin sweeps across several viewers in parallel.
package automation

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/scene"
	"github.com/san-kum/molview/internal/viewer"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of camera moves and ticks.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is applied in field order: view changes, then ticks, then the
// snapshot.
type ScenarioStep struct {
	ResetView bool     `yaml:"reset_view"`
	Spin      *float64 `yaml:"spin"`
	Paused    *bool    `yaml:"paused"`
	Resize    []int    `yaml:"resize"`
	Orbit     Orbit    `yaml:"orbit"`
	Ticks     int      `yaml:"ticks"`
	Snapshot  string   `yaml:"snapshot"`
}

// Orbit is camera input queued before a step's ticks. Angles are radians,
// dolly is in wheel steps.
type Orbit struct {
	Left  float64 `yaml:"left"`
	Up    float64 `yaml:"up"`
	Dolly float64 `yaml:"dolly"`
}

type StepResult struct {
	Step     int
	Ticks    uint64
	Rotation scene.Euler
	Camera   mgl64.Vec3
	Snapshot string
}

// PNGEncoder is a surface that can write its last frame.
type PNGEncoder interface {
	EncodePNG(w io.Writer) error
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}

	return &scenario, nil
}

// RunScenario executes the steps on v. Snapshot steps need a surface that
// implements PNGEncoder.
func RunScenario(ctx context.Context, sc *Scenario, v *viewer.Viewer, logger *log.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	results := make([]StepResult, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		logger.Printf("step %d/%d: %d ticks", i+1, len(sc.Steps), step.Ticks)

		if err := apply(v, step); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		for n := 0; n < step.Ticks; n++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			v.Tick()
		}

		res := StepResult{
			Step:     i + 1,
			Ticks:    v.Ticks(),
			Rotation: v.Molecule.Rotation,
			Camera:   v.Camera.Position,
		}

		if step.Snapshot != "" {
			if step.Ticks == 0 {
				v.Surface.Render(v.Scene, v.Camera)
			}
			if err := snapshot(v.Surface, step.Snapshot); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			res.Snapshot = step.Snapshot
		}

		results = append(results, res)
	}

	return results, nil
}

func apply(v *viewer.Viewer, step ScenarioStep) error {
	if step.ResetView {
		v.ResetView()
	}
	if step.Spin != nil {
		v.Spin = *step.Spin
	}
	if step.Paused != nil {
		v.Paused = *step.Paused
	}
	if len(step.Resize) > 0 {
		if len(step.Resize) != 2 {
			return fmt.Errorf("resize wants [width, height], got %v", step.Resize)
		}
		if err := v.Resize(step.Resize[0], step.Resize[1]); err != nil {
			return err
		}
	}
	if step.Orbit.Left != 0 {
		v.Controls.RotateLeft(step.Orbit.Left)
	}
	if step.Orbit.Up != 0 {
		v.Controls.RotateUp(step.Orbit.Up)
	}
	if step.Orbit.Dolly != 0 {
		v.Controls.Dolly(step.Orbit.Dolly)
	}
	return nil
}

func snapshot(surface viewer.Surface, path string) error {
	enc, ok := surface.(PNGEncoder)
	if !ok {
		return fmt.Errorf("surface %T cannot write snapshots", surface)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
