package viz

import "math"

// HSVAToRGBA converts HSV(A) to 8-bit RGBA. h is in degrees [0, 360),
// s, v, a in [0, 1]. Standard color-wheel sector walk, see
// https://rosettacode.org/wiki/Color_wheel
func HSVAToRGBA(h, s, v, a float64) (uint8, uint8, uint8, uint8) {
	hp := h / 60.0
	c := s * v
	x := c * (1.0 - math.Abs(math.Mod(hp, 2.0)-1.0))
	m := v - c

	var r, g, b float64
	switch {
	case hp <= 1:
		r, g = c, x
	case hp <= 2:
		r, g = x, c
	case hp <= 3:
		g, b = c, x
	case hp <= 4:
		g, b = x, c
	case hp <= 5:
		r, b = x, c
	default:
		r, b = c, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255), uint8(a * 255)
}

// DivergenceHue maps a divergence in [0, 1] to a hue in degrees: coinciding
// trajectories render blue-violet, fully diverged ones red.
func DivergenceHue(d float64) float64 {
	if d < 0 {
		d = 0
	} else if d > 1 {
		d = 1
	}
	return 270.0 * (1.0 - d)
}
