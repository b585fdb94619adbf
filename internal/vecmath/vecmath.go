// Package vecmath converts raw orthogonal acceleration pairs into polar
// direction/magnitude form.
package vecmath

import "math"

// ResultantDirection converts a 2-D Cartesian vector to a polar angle in
// degrees, measured counter-clockwise from the positive x axis, always in
// [0, 360). The zero vector resolves to 270 together with the rest of the
// x == 0, y <= 0 branch; its magnitude is zero so the direction is inert.
func ResultantDirection(x, y float64) float64 {
	if x == 0 {
		if y > 0 {
			return 90
		}
		return 270
	}
	deg := math.Atan(y/x) * 180 / math.Pi
	if x < 0 {
		deg += 180
	} else if y < 0 {
		deg += 360
	}
	return deg
}

// ResultantMagnitude computes the length of a vector from two orthogonal
// components. The zero branches keep sqrt away from the boundary cases and
// agree bit for bit with the general formula on non-zero inputs.
func ResultantMagnitude(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	if a == 0 {
		return math.Abs(b)
	}
	if b == 0 {
		return math.Abs(a)
	}
	return math.Sqrt(a*a + b*b)
}
