package components

import (
	"time"
)

// TransformComponent stores position, render layer, scale and rotation
type TransformComponent struct {
	X, Y     float64
	Z        float64 // Render layer, not physics
	Scale    float64
	Rotation float64 // Radians
}

// NewTransformComponent creates a transform at (x, y, z) with the given uniform scale
func NewTransformComponent(x, y, z, scale float64) *TransformComponent {
	return &TransformComponent{X: x, Y: y, Z: z, Scale: scale}
}

// VelocityComponent is a per-second displacement in direction units,
// multiplied by the base speed at integration time
type VelocityComponent struct {
	X, Y float64
}

// OrientationComponent stores the heading used for sprites, firing and thrust
type OrientationComponent struct {
	Theta float64
}

// MovableComponent marks an entity for the movement integrator
type MovableComponent struct {
	AutoDespawn bool // Remove once outside the viewport plus margin
}

// SpriteSizeComponent is the unscaled sprite size used for collision boxes
type SpriteSizeComponent struct {
	W, H float64
}

// HalfExtents returns the half width and height after applying scale
func (s *SpriteSizeComponent) HalfExtents(scale float64) (float64, float64) {
	return s.W * scale / 2, s.H * scale / 2
}

// SpriteComponent carries an opaque texture handle for renderers
type SpriteComponent struct {
	Handle string
}

// AnimationComponent drives a sprite-sheet with a repeating timer
type AnimationComponent struct {
	Frame   int
	Length  int
	Period  time.Duration
	elapsed time.Duration
}

// NewAnimationComponent creates an animation at frame 0 with a fresh timer
func NewAnimationComponent(length int, period time.Duration) *AnimationComponent {
	return &AnimationComponent{Length: length, Period: period}
}

// Tick advances the timer by dt and returns how many intervals completed
func (a *AnimationComponent) Tick(dt time.Duration) int {
	if a.Period <= 0 {
		return 0
	}
	a.elapsed += dt
	n := int(a.elapsed / a.Period)
	a.elapsed -= time.Duration(n) * a.Period
	return n
}

// Finished reports whether every frame of the sheet has been shown
func (a *AnimationComponent) Finished() bool {
	return a.Frame >= a.Length
}

// BodyComponent is a rigid body in the physics variant
type BodyComponent struct {
	Mass       float64
	Gravitates bool // Takes part in the n-body pass

	VX, VY float64 // Linear velocity, units per second
	FX, FY float64 // Net external force, written once per tick

	ImpulseX, ImpulseY float64 // Applied at the next integration then cleared
}

// ApplyImpulse queues a one-shot impulse
func (b *BodyComponent) ApplyImpulse(x, y float64) {
	b.ImpulseX += x
	b.ImpulseY += y
}
