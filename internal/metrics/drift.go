package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/viewer"
)

// BondDrift is the largest change, over the run, in any peripheral atom's
// distance from the molecule centre. The molecule is rigid so it stays near
// zero however long the spin runs.
type BondDrift struct {
	name     string
	initial  []float64
	maxDrift float64
}

func NewBondDrift() *BondDrift { return &BondDrift{name: "bond_drift"} }

func (b *BondDrift) Name() string { return b.name }

func (b *BondDrift) OnTick(tick uint64, v *viewer.Viewer) {
	centre := v.Molecule.WorldMatrix().Col(3).Vec3()
	atoms := molecule.PeripheralCenters(v.Molecule)

	if b.initial == nil {
		b.initial = make([]float64, len(atoms))
		for i, a := range atoms {
			b.initial[i] = dist(a, centre)
		}
		return
	}

	for i, a := range atoms {
		if i >= len(b.initial) {
			break
		}
		b.maxDrift = math.Max(b.maxDrift, math.Abs(dist(a, centre)-b.initial[i]))
	}
}

func (b *BondDrift) Value() float64 { return b.maxDrift }

func (b *BondDrift) Reset() {
	b.initial = nil
	b.maxDrift = 0
}

func dist(a, b mgl64.Vec3) float64 { return a.Sub(b).Len() }
