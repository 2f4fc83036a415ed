package physics

import (
	"math"

	"invaders/ecs"
)

// Mass is one participant of the n-body pass
type Mass struct {
	ID   ecs.EntityID
	X, Y float64
	M    float64
}

// Gravity computes pairwise attraction between bodies
type Gravity struct {
	G          float64
	Multiplier float64 // Brings the effect to game scale
	Softening  float64 // Lower bound on squared distance
}

// Pair returns the force exerted on a by b. The force on b is its negation.
// Coincident bodies exert no force on each other.
func (g Gravity) Pair(a, b Mass) Vec {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		return Vec{}
	}
	if d2 < g.Softening {
		d2 = g.Softening
	}

	f := a.M * b.M * g.G * g.Multiplier / d2
	angle := QuadrantAngle(dx, dy)
	return Vec{
		X: f * math.Cos(angle) * sign(dx),
		Y: f * math.Sin(angle) * sign(dy),
	}
}

// Accumulate visits every unordered pair once and returns the net
// gravitational force per body. Every body in bodies has an entry, zero
// when nothing pulls on it. The map is new on every call.
func (g Gravity) Accumulate(bodies []Mass) map[ecs.EntityID]Vec {
	net := make(map[ecs.EntityID]Vec, len(bodies))
	for _, b := range bodies {
		net[b.ID] = Vec{}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			f := g.Pair(bodies[i], bodies[j])
			if !f.Finite() {
				continue
			}
			net[bodies[i].ID] = net[bodies[i].ID].Add(f)
			net[bodies[j].ID] = net[bodies[j].ID].Add(f.Neg())
		}
	}
	return net
}
