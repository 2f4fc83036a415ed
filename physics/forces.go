package physics

import (
	"invaders/ecs"
)

// ForceBuffer collects the force contributions of one tick. Sources add
// into it; a single composition step reads the sums and writes them to
// bodies, so no source can overwrite another.
type ForceBuffer struct {
	forces map[ecs.EntityID]Vec
}

// NewForceBuffer creates an empty buffer
func NewForceBuffer() *ForceBuffer {
	return &ForceBuffer{forces: make(map[ecs.EntityID]Vec)}
}

// Add adds f to the running total of id
func (b *ForceBuffer) Add(id ecs.EntityID, f Vec) {
	b.forces[id] = b.forces[id].Add(f)
}

// AddAll adds every entry of forces
func (b *ForceBuffer) AddAll(forces map[ecs.EntityID]Vec) {
	for id, f := range forces {
		b.Add(id, f)
	}
}

// Net returns the summed force on id, zero when nothing contributed
func (b *ForceBuffer) Net(id ecs.EntityID) Vec {
	return b.forces[id]
}

// Len returns the number of bodies with a contribution
func (b *ForceBuffer) Len() int {
	return len(b.forces)
}

// Reset empties the buffer for the next tick
func (b *ForceBuffer) Reset() {
	clear(b.forces)
}
