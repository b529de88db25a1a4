package motion

import (
	"errors"

	"github.com/itohio/EasyCNC/pkg/core/math/vec"
)

var (
	// ErrInvalidPath indicates the path is empty, has non-positive speeds,
	// or degenerates to zero total length.
	ErrInvalidPath = errors.New("motion: invalid path")
	// ErrInvalidLimits indicates the machine limits are inconsistent.
	ErrInvalidLimits = errors.New("motion: invalid limits")
)

// Waypoint is a commanded corner of the toolpath. Speed is the desired cruise
// speed of the segment arriving at this waypoint.
type Waypoint struct {
	Position vec.Vector2D
	Speed    float32
}

// Limits holds the per-axis machine limits and junction tuning. All values
// are strictly positive except MinJunctionSpeed, which may be zero.
type Limits struct {
	MaxSpeedX float32
	MaxSpeedY float32
	AccelX    float32
	AccelY    float32

	MinJunctionSpeed  float32
	JunctionDeviation float32

	CuttingSpeed float32
	TravelSpeed  float32
}

// SpeedPoint is one constant-acceleration leg of the profile.
type SpeedPoint struct {
	Start     vec.Vector2D
	Target    vec.Vector2D
	Direction vec.Vector2D // unit vector from Start to Target

	Speed float32 // entry speed
	Accel float32 // signed along Direction; zero while cruising
	Time  float32 // cumulative seconds since profile start when Target is reached
}

// Profile is the planned velocity profile. It is immutable after Plan returns
// and may be read concurrently. DegradedAt lists the waypoint indices where
// the requested speeds could not be met and had to be re-propagated.
type Profile struct {
	Points     []SpeedPoint
	DegradedAt []int
}

func validateLimits(l Limits) error {
	if l.MaxSpeedX <= 0 || l.MaxSpeedY <= 0 || l.AccelX <= 0 || l.AccelY <= 0 {
		return ErrInvalidLimits
	}
	if l.MinJunctionSpeed < 0 || l.JunctionDeviation <= 0 {
		return ErrInvalidLimits
	}
	if l.CuttingSpeed <= 0 || l.TravelSpeed <= 0 {
		return ErrInvalidLimits
	}
	return nil
}

func validatePath(path []Waypoint) error {
	if len(path) == 0 {
		return ErrInvalidPath
	}
	for _, wp := range path {
		if wp.Speed <= 0 {
			return ErrInvalidPath
		}
	}
	return nil
}
