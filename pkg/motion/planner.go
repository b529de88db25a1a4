package motion

import (
	"fmt"
	"sort"

	"github.com/itohio/EasyCNC/pkg/core/math"
	"github.com/itohio/EasyCNC/pkg/core/math/vec"
	. "github.com/itohio/EasyCNC/pkg/logger"
)

// Plan converts an ordered toolpath into a time-parameterized velocity
// profile that respects the per-axis limits. The tool starts at rest at
// start, visits every waypoint in order and comes to rest at the last one.
// Plan is pure: identical inputs produce identical profiles and the result
// may be read concurrently.
func Plan(path []Waypoint, limits Limits, start vec.Vector2D) (Profile, error) {
	if err := validateLimits(limits); err != nil {
		return Profile{}, err
	}
	if err := validatePath(path); err != nil {
		return Profile{}, err
	}

	deduped, origIdx := dedupe(path, start)
	if len(deduped) == 0 {
		return Profile{}, fmt.Errorf("%w: zero total length", ErrInvalidPath)
	}

	junctions, degraded := solveJunctions(deduped, limits, start)

	pts := make([]SpeedPoint, 0, 3*len(junctions))
	pos := start
	speed := float32(0)
	t := float32(0)
	for _, j := range junctions {
		pts, t = planSegment(pts, pos, speed, j, t)
		pos = j.position
		speed = j.final
	}

	for i, d := range degraded {
		degraded[i] = origIdx[d]
	}
	if len(degraded) > 0 {
		Log.Warn().Ints("waypoints", degraded).Msg("profile degraded: requested speeds unreachable")
	}

	return Profile{Points: pts, DegradedAt: degraded}, nil
}

// dedupe removes waypoints that coincide with their predecessor (or with the
// start position). The second result maps the kept waypoints back to their
// input indices.
func dedupe(path []Waypoint, start vec.Vector2D) ([]Waypoint, []int) {
	out := make([]Waypoint, 0, len(path))
	idx := make([]int, 0, len(path))
	prev := start
	for i, wp := range path {
		if math.IsZero(wp.Position.Distance(prev)) {
			continue
		}
		out = append(out, wp)
		idx = append(idx, i)
		prev = wp.Position
	}
	return out, idx
}

// TotalTime returns the duration of the whole profile in seconds.
func (p Profile) TotalTime() float32 {
	if len(p.Points) == 0 {
		return 0
	}
	return p.Points[len(p.Points)-1].Time
}

// TotalDistance returns the length of the planned path.
func (p Profile) TotalDistance() float32 {
	var sum float32
	for _, sp := range p.Points {
		sum += sp.Start.Distance(sp.Target)
	}
	return sum
}

// PositionAt samples the tool position t seconds after the profile starts.
// Times beyond the end return the final target; negative times return the
// starting position.
func (p Profile) PositionAt(t float32) vec.Vector2D {
	if len(p.Points) == 0 {
		return vec.Vector2D{}
	}
	if t <= 0 {
		return p.Points[0].Start
	}
	i := sort.Search(len(p.Points), func(i int) bool {
		return p.Points[i].Time > t
	})
	if i == len(p.Points) {
		return p.Points[len(p.Points)-1].Target
	}
	prev := float32(0)
	if i > 0 {
		prev = p.Points[i-1].Time
	}
	dt := t - prev
	s := p.Points[i].Speed*dt + 0.5*p.Points[i].Accel*dt*dt
	return p.Points[i].Start.Add(p.Points[i].Direction.MulC(s))
}
