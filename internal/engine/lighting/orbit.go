// Package lighting provides the light sources used by the Blinn-Phong shader.
package lighting

import (
	"math"

	m "github.com/Faultbox/bunnylight/pkg/math"
)

// OrbitDirection returns the direction of a light circling the Z axis.
// phase is in abstract frame steps; speed converts it to degrees.
// The direction repeats every 360/speed units of phase.
func OrbitDirection(phase, speed float64) m.Vec3 {
	theta := phase * speed * math.Pi / 180.0
	return m.Vec3{
		X: float32(math.Cos(theta)),
		Y: float32(math.Sin(theta)),
		Z: 0,
	}
}

// Orbit advances a phase by a fixed step per frame.
// The phase is never wrapped.
type Orbit struct {
	Phase float64
	Step  float64
	Speed float64
}

// NewOrbit creates an orbit starting at phase zero.
func NewOrbit(step, speed float64) *Orbit {
	return &Orbit{Step: step, Speed: speed}
}

// Advance moves the phase forward one step and returns the new direction.
func (o *Orbit) Advance() m.Vec3 {
	o.Phase += o.Step
	return o.Direction()
}

// Direction returns the direction for the current phase.
func (o *Orbit) Direction() m.Vec3 {
	return OrbitDirection(o.Phase, o.Speed)
}

// Period returns the phase distance after which the direction repeats.
func (o *Orbit) Period() float64 {
	return 360.0 / o.Speed
}
