package viewer

import (
	"context"
	"fmt"
	"time"
)

// RunHeadless ticks v at hz until ctx is done or ticks frames have run. Zero
// ticks runs until cancelled.
func (v *Viewer) RunHeadless(ctx context.Context, hz int, ticks uint64) error {
	if hz <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, hz)
	}

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			v.Tick()
			n++
			if ticks > 0 && n >= ticks {
				return nil
			}
		}
	}
}

// Step runs n ticks back to back without pacing.
func (v *Viewer) Step(n int) {
	for i := 0; i < n; i++ {
		v.Tick()
	}
}
