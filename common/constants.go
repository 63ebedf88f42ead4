package common

import "time"

const (
	// BaseWidth and BaseHeight are the logical viewport size.
	BaseWidth  = 800
	BaseHeight = 600

	// TickMillis is the fixed simulation step.
	TickMillis   = 16
	TickDuration = TickMillis * time.Millisecond
)

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
