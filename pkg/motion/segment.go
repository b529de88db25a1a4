package motion

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyCNC/pkg/core/math"
	"github.com/itohio/EasyCNC/pkg/core/math/vec"
)

// leg is one constant-acceleration stretch of a segment before it is turned
// into a SpeedPoint.
type leg struct {
	length float32
	v0, v1 float32
	accel  float32
}

// planSegment expands the segment arriving at junction j into 1-3 speed
// points: a full trapezoid when the cruise speed is reachable, a truncated
// triangle otherwise. pos and v0 are the entry position and speed, t the
// running cumulative time. Zero-length segments are dropped.
func planSegment(pts []SpeedPoint, pos vec.Vector2D, v0 float32, j junction, t float32) ([]SpeedPoint, float32) {
	d := j.distIn
	if math.IsZero(d) {
		return pts, t
	}
	u := j.dirIn
	a := j.accelIn
	vc := j.maxSegment
	vf := j.final

	dAccel := math32.Max(0, (vc*vc-v0*v0)/(2*a))
	dDecel := math32.Max(0, (vc*vc-vf*vf)/(2*a))

	var legs [3]leg
	count := 0
	if dAccel+dDecel < d {
		legs[0] = leg{dAccel, v0, vc, a}
		legs[1] = leg{d - dAccel - dDecel, vc, vc, 0}
		legs[2] = leg{dDecel, vc, vf, -a}
		count = 3
	} else {
		vPeak := math32.Sqrt(a*d + (v0*v0+vf*vf)/2)
		dp := (vPeak*vPeak - v0*v0) / (2 * a)
		if dp >= 0 && dp <= d {
			legs[0] = leg{dp, v0, vPeak, a}
			legs[1] = leg{d - dp, vPeak, vf, -a}
			count = 2
		} else {
			// The peak falls outside the segment: motion is monotone.
			accel := a
			if v0 > vf {
				accel = -a
			}
			legs[0] = leg{d, v0, vf, accel}
			count = 1
		}
	}

	last := len(pts)
	for _, lg := range legs[:count] {
		if math.IsZero(lg.length) {
			continue
		}
		t += 2 * lg.length / (lg.v0 + lg.v1)
		target := pos.Add(u.MulC(lg.length))
		pts = append(pts, SpeedPoint{
			Start:     pos,
			Target:    target,
			Direction: u,
			Speed:     lg.v0,
			Accel:     lg.accel,
			Time:      t,
		})
		pos = target
	}
	if len(pts) > last {
		// Land exactly on the waypoint regardless of accumulated rounding.
		pts[len(pts)-1].Target = j.position
	}
	return pts, t
}
