package metrics

import (
	"math"

	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/viewer"
)

// Clearance is the smallest gap seen between the surface of a peripheral
// atom and the ground plane. A negative value means an atom dipped into the
// floor.
type Clearance struct {
	name    string
	min     float64
	samples int
}

func NewClearance() *Clearance {
	return &Clearance{name: "ground_clearance", min: math.Inf(1)}
}

func (c *Clearance) Name() string { return c.name }

func (c *Clearance) OnTick(tick uint64, v *viewer.Viewer) {
	floor := v.Ground.WorldMatrix().Col(3).Y()
	for _, a := range molecule.PeripheralCenters(v.Molecule) {
		c.min = math.Min(c.min, a.Y()-molecule.PeripheralRadius-floor)
	}
	c.samples++
}

func (c *Clearance) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.min
}

func (c *Clearance) Reset() {
	c.min = math.Inf(1)
	c.samples = 0
}
