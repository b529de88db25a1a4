package motion

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/itohio/EasyCNC/pkg/core/math/vec"
)

func TestProjectLimit(t *testing.T) {
	l := testLimits()

	if got := l.SpeedAlong(vec.New(1, 0)); got != 500 {
		t.Errorf("along x: %f", got)
	}
	if got := l.SpeedAlong(vec.New(0, -1)); got != 500 {
		t.Errorf("along -y: %f", got)
	}

	diag := vec.New(1, 1).Normal()
	want := 500 * math32.Sqrt2
	if got := l.SpeedAlong(diag); math32.Abs(got-want) > 0.01 {
		t.Errorf("along diagonal: %f, want %f", got, want)
	}

	l.MaxSpeedX = 100
	if got := l.SpeedAlong(diag); math32.Abs(got-100*math32.Sqrt2) > 0.01 {
		t.Errorf("x axis must saturate first: %f", got)
	}

	if got := l.AccelAlong(vec.Vector2D{}); got != limitSentinel {
		t.Errorf("zero direction must be unconstrained, got %f", got)
	}
}

func TestCornerCap(t *testing.T) {
	l := testLimits()

	// Right angle: finite cap derived from the junction deviation.
	got := l.cornerCap(vec.New(0, 1), vec.New(1, 0))
	aj := float32(3000) * math32.Sqrt2
	sinHalf := math32.Sqrt(0.5)
	want := math32.Sqrt(aj * 0.01 * sinHalf / (1 - sinHalf))
	if math32.Abs(got-want) > 0.01 {
		t.Errorf("right angle cap %f, want %f", got, want)
	}

	// Full reversal collapses to the minimum junction speed.
	if got := l.cornerCap(vec.New(1, 0), vec.New(-1, 0)); got != 0 {
		t.Errorf("reversal cap %f, want 0", got)
	}
	l.MinJunctionSpeed = 5
	if got := l.cornerCap(vec.New(1, 0), vec.New(-1, 0)); got != 5 {
		t.Errorf("reversal cap %f, want MinJunctionSpeed", got)
	}

	// Collinear legs impose no constraint.
	if got := l.cornerCap(vec.New(1, 0), vec.New(1, 0)); got != limitSentinel {
		t.Errorf("collinear cap %f, want sentinel", got)
	}

	// A degenerate leg imposes no constraint either.
	if got := l.cornerCap(vec.Vector2D{}, vec.New(1, 0)); got != limitSentinel {
		t.Errorf("degenerate leg cap %f, want sentinel", got)
	}
}

func TestBackwardPassLowersEntrySpeed(t *testing.T) {
	l := testLimits()
	l.AccelX, l.AccelY = 1000, 1000
	l.CuttingSpeed = 500
	start := vec.New(0, 0)

	// A long straight run ending at rest: the interior waypoint cannot carry
	// the full desired speed because braking room is short.
	path := uniformPath(500, vec.New(100, 0), vec.New(200, 0))
	junctions, degraded := solveJunctions(path, l, start)

	if len(degraded) != 0 {
		t.Fatalf("unexpected degradation: %v", degraded)
	}
	want := math32.Sqrt(2 * 1000 * 100)
	if math32.Abs(junctions[0].final-want) > 0.5 {
		t.Errorf("entry speed at interior waypoint %f, want %f", junctions[0].final, want)
	}
	if junctions[1].final != 0 {
		t.Errorf("final waypoint speed %f, want 0", junctions[1].final)
	}
}

func TestPlanDegradedCorner(t *testing.T) {
	l := testLimits()
	l.AccelX, l.AccelY = 1000, 1000
	l.CuttingSpeed = 500
	start := vec.New(0, 0)

	// Reversal into a very short leg followed by a long fast one: the
	// single backward pass cannot satisfy the speed after the corner, so the
	// successor speed is re-propagated and the corner is flagged.
	path := uniformPath(500, vec.New(100, 0), vec.New(99, 0), vec.New(0, 0))

	p, err := Plan(path, l, start)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(p.DegradedAt) != 1 || p.DegradedAt[0] != 0 {
		t.Fatalf("DegradedAt = %v, want [0]", p.DegradedAt)
	}
	checkInvariants(t, p, l, start, path)

	// After re-propagation the short leg only reaches sqrt(2*a*d).
	want := math32.Sqrt(2 * 1000 * 1)
	reached := exitSpeed(p, findLegEndingAt(t, p, vec.New(99, 0)))
	if math32.Abs(reached-want) > 0.5 {
		t.Errorf("speed after short leg %f, want %f", reached, want)
	}
}

func findLegEndingAt(t *testing.T, p Profile, pos vec.Vector2D) int {
	t.Helper()
	for i, sp := range p.Points {
		if sp.Target.Distance(pos) < 1e-3 {
			return i
		}
	}
	t.Fatalf("no leg ends at %v", pos)
	return -1
}
