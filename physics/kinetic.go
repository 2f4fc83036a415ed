package physics

// Kinetic is the integrable state of a body
type Kinetic struct {
	Pos     Vec
	Vel     Vec
	Force   Vec // Net external force for this tick
	Impulse Vec // One-shot, cleared by Integrate
	Mass    float64
}

// Integrate performs semi-implicit Euler: v += (J + F*dt)/m; p += v*dt.
// A body without mass moves at constant velocity and ignores forces.
func Integrate(k *Kinetic, dt float64) {
	if k.Mass > 0 {
		k.Vel = k.Vel.Add(k.Impulse.Add(k.Force.Scale(dt)).Scale(1 / k.Mass))
	}
	k.Impulse = Vec{}
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
}

// ReflectBounds keeps the body inside [-halfW, halfW] x [-halfH, halfH],
// reversing velocity on the axis it crossed. Returns true if it reflected.
func ReflectBounds(k *Kinetic, halfW, halfH float64) bool {
	reflected := false
	if k.Pos.X < -halfW || k.Pos.X > halfW {
		k.Pos.X = clamp(k.Pos.X, -halfW, halfW)
		k.Vel.X = -k.Vel.X
		reflected = true
	}
	if k.Pos.Y < -halfH || k.Pos.Y > halfH {
		k.Pos.Y = clamp(k.Pos.Y, -halfH, halfH)
		k.Vel.Y = -k.Vel.Y
		reflected = true
	}
	return reflected
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
