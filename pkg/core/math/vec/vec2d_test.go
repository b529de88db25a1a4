package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEqual(t *testing.T, got, want, tol float32, msg string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Errorf("%s: got %f, want %f", msg, got, want)
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	sum := a.Add(b)
	if sum != (Vector2D{4, -2}) {
		t.Errorf("Add: got %v", sum)
	}
	diff := b.Sub(a)
	if diff != (Vector2D{2, -6}) {
		t.Errorf("Sub: got %v", diff)
	}
	scaled := a.MulC(2)
	if scaled != (Vector2D{2, 4}) {
		t.Errorf("MulC: got %v", scaled)
	}
	// receiver untouched
	if a != (Vector2D{1, 2}) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestDotMagnitudeDistance(t *testing.T) {
	a := New(3, 4)
	approxEqual(t, a.Magnitude(), 5, 1e-5, "Magnitude")
	approxEqual(t, a.Dot(New(1, 0)), 3, 1e-6, "Dot")
	approxEqual(t, New(0, 0).Distance(a), 5, 1e-5, "Distance")
}

func TestNormal(t *testing.T) {
	u := New(10, 0).Normal()
	if u != (Vector2D{1, 0}) {
		t.Errorf("Normal: got %v", u)
	}
	approxEqual(t, New(5, 5).Normal().Magnitude(), 1, 1e-5, "unit magnitude")

	zero := Vector2D{}.Normal()
	if zero != (Vector2D{}) {
		t.Errorf("zero vector must normalize to zero, got %v", zero)
	}
}

func TestLimit(t *testing.T) {
	v := New(3, 4)
	if v.Limit(10) != v {
		t.Errorf("within bound must be unchanged")
	}
	clipped := v.Limit(1)
	approxEqual(t, clipped.Magnitude(), 1, 1e-5, "clipped magnitude")
	// direction preserved
	approxEqual(t, clipped.Normal().Dot(v.Normal()), 1, 1e-5, "direction")
	if (Vector2D{}).Limit(1) != (Vector2D{}) {
		t.Errorf("zero vector limit")
	}
}
