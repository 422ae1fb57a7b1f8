package lighting

import m "github.com/Faultbox/bunnylight/pkg/math"

// PointerToNDC maps a pixel position on a width x height surface to
// normalized device coordinates. Pixel Y grows downward, NDC Y grows
// upward, so the vertical axis is flipped.
func PointerToNDC(px, py, width, height float32) m.Vec2 {
	return m.Vec2{
		X: 2*px/width - 1,
		Y: 2*(height-py)/height - 1,
	}
}

// PointerLight is a point light whose XY position tracks the pointer.
type PointerLight struct {
	pos    m.Vec2
	z      float32
	width  float32
	height float32
}

// NewPointerLight creates a pointer light at the surface center.
func NewPointerLight(z float32, width, height int) *PointerLight {
	return &PointerLight{
		z:      z,
		width:  float32(width),
		height: float32(height),
	}
}

// Resize updates the surface dimensions used for mapping.
func (p *PointerLight) Resize(width, height int) {
	p.width = float32(width)
	p.height = float32(height)
}

// Move records a new pointer position in pixels. Last write wins.
func (p *PointerLight) Move(px, py int) {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	p.pos = PointerToNDC(float32(px), float32(py), p.width, p.height)
}

// NDC returns the last mapped pointer position.
func (p *PointerLight) NDC() m.Vec2 {
	return p.pos
}

// Position returns the light position: pointer XY at a fixed depth.
func (p *PointerLight) Position() m.Vec3 {
	return m.Vec3{X: p.pos.X, Y: p.pos.Y, Z: p.z}
}
