package math

import "github.com/chewxy/math32"

const (
	// Epsilon below which a speed or distance is treated as exactly zero.
	Epsilon = 1e-9
	// EpsilonRel is the relative tolerance for approximate comparisons.
	EpsilonRel = 1e-5
)

func SQR(a float32) float32 {
	return a * a
}

func Clamp(a, min, max float32) float32 {
	switch {
	case a > max:
		return max
	case a < min:
		return min
	default:
		return a
	}
}

// IsZero reports whether x collapses to zero within Epsilon.
func IsZero(x float32) bool {
	return math32.Abs(x) < Epsilon
}

// ApproxGE reports a >= b with a tolerance relative to the larger magnitude.
func ApproxGE(a, b float32) bool {
	return a >= b-EpsilonRel*math32.Max(1, math32.Max(math32.Abs(a), math32.Abs(b)))
}

// (a^2+b^2)^(1/2) without overflow
func Pytag(a, b float32) float32 {
	absa := math32.Abs(a)
	absb := math32.Abs(b)
	if absa > absb {
		return absa * math32.Sqrt(1.0+SQR(absb/absa))
	}
	if absb > 0 {
		return absb * math32.Sqrt(1.0+SQR(absa/absb))
	}
	return 0
}
