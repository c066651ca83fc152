package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/scene"
)

// Sampler observes the viewer after each tick.
type Sampler interface {
	OnTick(tick uint64, v *Viewer)
}

// Sample is the molecule state after one tick.
type Sample struct {
	Tick     uint64
	Rotation scene.Euler
	Atoms    []mgl64.Vec3
}

// Recorder collects a Sample every Every ticks.
type Recorder struct {
	Every   uint64
	Samples []Sample
}

func NewRecorder(every uint64) *Recorder {
	if every == 0 {
		every = 1
	}
	return &Recorder{Every: every}
}

func (r *Recorder) OnTick(tick uint64, v *Viewer) {
	if tick%r.Every != 0 {
		return
	}
	r.Samples = append(r.Samples, Sample{
		Tick:     tick,
		Rotation: v.Molecule.Rotation,
		Atoms:    molecule.PeripheralCenters(v.Molecule),
	})
}
