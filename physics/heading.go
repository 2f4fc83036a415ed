package physics

import "math"

const twoPi = 2 * math.Pi

// QuadrantAngle returns atan(|dy|/|dx|) in [0, π/2]. A zero dx yields π/2.
func QuadrantAngle(dx, dy float64) float64 {
	if dx == 0 {
		return math.Pi / 2
	}
	return math.Atan(math.Abs(dy) / math.Abs(dx))
}

// StickAngle maps a stick vector to its angle from the +x axis in [0, 2π)
func StickAngle(x, y float64) float64 {
	a := QuadrantAngle(x, y)
	switch {
	case x >= 0 && y >= 0:
		// first quadrant, also the +x and +y axes
	case x < 0 && y >= 0:
		a = math.Pi - a
	case x < 0 && y < 0:
		a = math.Pi + a
	default:
		a = twoPi - a
	}
	return Normalize(a)
}

// Heading converts a stick vector to a heading. offset is the angle of the
// sprite art's forward direction from the +x axis.
func Heading(x, y, offset float64) float64 {
	return Normalize(StickAngle(x, y) - offset)
}

// Forward returns the unit direction a heading points to. Heading 0 is +y.
func Forward(theta float64) Vec {
	return Vec{-math.Sin(theta), math.Cos(theta)}
}

// Normalize wraps an angle into [0, 2π)
func Normalize(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	if theta >= twoPi {
		theta = 0
	}
	return theta
}
