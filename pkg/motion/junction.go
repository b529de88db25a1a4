package motion

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/itohio/EasyCNC/pkg/core/math"
	"github.com/itohio/EasyCNC/pkg/core/math/vec"
)

// junctionCosEps bounds the corner angle classification: a corner whose
// cos(theta) is within this distance of +1 is a full reversal, within it of
// -1 the legs are collinear.
const junctionCosEps float32 = 1e-6

// junction carries the planned state at one waypoint: the geometry of the
// segment arriving at it, the corner speed cap, the cruise cap of the
// arriving segment and the feasible speed at the waypoint itself.
type junction struct {
	position vec.Vector2D
	dirIn    vec.Vector2D
	distIn   float32
	accelIn  float32

	maxJunction float32
	maxSegment  float32
	final       float32
}

// cornerCap computes the speed at which the corner between unit directions
// u1 (incoming) and u2 (outgoing) may be passed without exceeding the
// centripetal acceleration implied by the junction deviation.
func (l Limits) cornerCap(u1, u2 vec.Vector2D) float32 {
	if math.IsZero(u1.Magnitude()) || math.IsZero(u2.Magnitude()) {
		// A degenerate leg imposes no turn.
		return limitSentinel
	}

	cosTheta := math.Clamp(-u1.Dot(u2), -1, 1)
	switch {
	case cosTheta > 1-junctionCosEps:
		// Full reversal: the tool must come (nearly) to rest.
		return l.MinJunctionSpeed
	case cosTheta < -1+junctionCosEps:
		// Collinear legs: no centripetal constraint.
		return limitSentinel
	}

	aj := l.AccelAlong(u2.Sub(u1).Normal())
	sinHalf := math32.Sqrt(0.5 * (1 - cosTheta))
	vj := math32.Sqrt(aj * l.JunctionDeviation * sinHalf / (1 - sinHalf))
	return math32.Max(l.MinJunctionSpeed, vj)
}

// deltaSpeed is the speed change achievable from entry speed v over distance
// d at constant acceleration a.
func deltaSpeed(v, a, d float32) float32 {
	return math32.Abs(math32.Sqrt(v*v+2*a*d) - v)
}

// solveJunctions runs the per-corner cap computation, the backward
// feasibility pass and the forward re-propagation fix-up. The returned
// junctions are in traversal order; the second result lists waypoint indices
// whose requested speed could not be met in a single backward pass.
func solveJunctions(path []Waypoint, l Limits, start vec.Vector2D) ([]junction, []int) {
	n := len(path)
	junctions := make([]junction, n)

	prev := start
	for i, wp := range path {
		delta := wp.Position.Sub(prev)
		dist := delta.Magnitude()
		dir := delta.Normal()

		junctions[i] = junction{
			position:   wp.Position,
			dirIn:      dir,
			distIn:     dist,
			accelIn:    l.AccelAlong(dir),
			maxSegment: math32.Min(wp.Speed, l.SpeedAlong(dir)),
		}
		prev = wp.Position
	}

	for i := range junctions {
		if i == n-1 {
			// The tool stops at the end of the path.
			junctions[i].maxJunction = 0
			continue
		}
		vj := l.cornerCap(junctions[i].dirIn, junctions[i+1].dirIn)
		if math.IsZero(vj) {
			vj = 0
		}
		junctions[i].maxJunction = vj
	}

	// Backward pass: propagate the stopping constraint from the final
	// waypoint toward the start.
	degraded := map[int]struct{}{}
	junctions[n-1].final = 0
	for i := n - 2; i >= 0; i-- {
		out := &junctions[i+1]
		desired := math32.Min(junctions[i].maxJunction, junctions[i].maxSegment)
		desired = math32.Min(desired, out.maxSegment)

		need := math32.Abs(desired - out.final)
		if math.ApproxGE(deltaSpeed(desired, out.accelIn, out.distIn), need) {
			junctions[i].final = desired
			continue
		}
		if desired >= out.final {
			// Deceleration-limited corner: lower the entry speed so braking
			// over the segment lands exactly on the successor speed.
			entry := out.final + deltaSpeed(out.final, out.accelIn, out.distIn)
			junctions[i].final = math32.Min(desired, entry)
			continue
		}
		// Even flat-out acceleration cannot reach the successor speed. Keep
		// the entry speed and re-propagate the successor down in the forward
		// fix-up below.
		junctions[i].final = desired
		degraded[i] = struct{}{}
	}

	// Forward fix-up: cap every waypoint speed to what is reachable from the
	// previous one (starting at rest), so acceleration-limited stretches stay
	// consistent after the single backward pass.
	speed := float32(0)
	for i := range junctions {
		reachable := math32.Sqrt(speed*speed + 2*junctions[i].accelIn*junctions[i].distIn)
		if junctions[i].final > reachable && !math.ApproxGE(reachable, junctions[i].final) {
			junctions[i].final = reachable
		}
		speed = junctions[i].final
	}

	if len(degraded) == 0 {
		return junctions, nil
	}
	indices := make([]int, 0, len(degraded))
	for i := range degraded {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return junctions, indices
}
