package pendulum

import "math"

const twoPi = 2 * math.Pi

// NormalizeAngle maps any radian value into (-π, π]: modulo 2π, then one
// boundary correction on each side. Idempotent and 2π-periodic up to float
// accuracy.
//
// The two boundary representations of the half-turn are not unified:
// NormalizeAngle(-π) == -π while NormalizeAngle(-π + 2π) == π. Callers that
// compare angles near the boundary must tolerate this.
func NormalizeAngle(rad float64) float64 {
	r := math.Mod(rad, twoPi)
	if r > math.Pi {
		r -= twoPi
	}
	if r < -math.Pi {
		r += twoPi
	}
	return r
}
