package vec

import (
	"github.com/itohio/EasyCNC/pkg/core/math"
)

// Vector2D is a two component vector. It is a value type: every operation
// returns a new vector and the receiver is never modified.
type Vector2D [2]float32

func New(x, y float32) Vector2D {
	return Vector2D{x, y}
}

func (v Vector2D) X() float32 {
	return v[0]
}

func (v Vector2D) Y() float32 {
	return v[1]
}

func (v Vector2D) XY() (float32, float32) {
	return v[0], v[1]
}

func (v Vector2D) Add(v1 Vector2D) Vector2D {
	return Vector2D{v[0] + v1[0], v[1] + v1[1]}
}

func (v Vector2D) Sub(v1 Vector2D) Vector2D {
	return Vector2D{v[0] - v1[0], v[1] - v1[1]}
}

func (v Vector2D) MulC(c float32) Vector2D {
	return Vector2D{v[0] * c, v[1] * c}
}

func (v Vector2D) Neg() Vector2D {
	return Vector2D{-v[0], -v[1]}
}

func (v Vector2D) Dot(v1 Vector2D) float32 {
	return v[0]*v1[0] + v[1]*v1[1]
}

func (v Vector2D) SumSqr() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vector2D) Magnitude() float32 {
	return math.Pytag(v[0], v[1])
}

func (v Vector2D) Distance(v1 Vector2D) float32 {
	return v1.Sub(v).Magnitude()
}

// Normal returns the unit vector along v. The zero vector normalizes to the
// zero vector; callers must guard when direction matters.
func (v Vector2D) Normal() Vector2D {
	m := v.Magnitude()
	if math.IsZero(m) {
		return Vector2D{}
	}
	return Vector2D{v[0] / m, v[1] / m}
}

// Limit scales v down so its magnitude does not exceed m. Vectors already
// within the bound are returned unchanged.
func (v Vector2D) Limit(m float32) Vector2D {
	mag := v.Magnitude()
	if mag <= m || math.IsZero(mag) {
		return v
	}
	return v.MulC(m / mag)
}
