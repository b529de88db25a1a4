package motion

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyCNC/pkg/core/math"
	"github.com/itohio/EasyCNC/pkg/core/math/vec"
)

// limitSentinel stands in for an unconstrained axis projection. A direction
// with a zero component never saturates that axis.
const limitSentinel float32 = 1e9

// projectLimit returns the largest magnitude achievable along the unit
// direction d given per-axis caps: min(|lx/d.x|, |ly/d.y|).
func projectLimit(d vec.Vector2D, lx, ly float32) float32 {
	mx := limitSentinel
	my := limitSentinel
	if !math.IsZero(d.X()) {
		mx = math32.Abs(lx / d.X())
	}
	if !math.IsZero(d.Y()) {
		my = math32.Abs(ly / d.Y())
	}
	return math32.Min(mx, my)
}

// SpeedAlong returns the maximum speed along the unit direction d.
func (l Limits) SpeedAlong(d vec.Vector2D) float32 {
	return projectLimit(d, l.MaxSpeedX, l.MaxSpeedY)
}

// AccelAlong returns the maximum acceleration along the unit direction d.
func (l Limits) AccelAlong(d vec.Vector2D) float32 {
	return projectLimit(d, l.AccelX, l.AccelY)
}
