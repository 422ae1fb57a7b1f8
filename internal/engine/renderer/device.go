package renderer

import "github.com/Faultbox/bunnylight/pkg/math"

// Device is the subset of GPU calls a frame issues. Uniforms are addressed
// by name; implementations resolve names to locations once up front.
type Device interface {
	// Viewport sets the drawable area in pixels.
	Viewport(width, height int)
	// Clear clears the color and depth buffers.
	Clear()
	// UniformMatrix4 uploads a column-major 4x4 matrix.
	UniformMatrix4(name string, m math.Mat4)
	// Uniform3 uploads a vec3.
	Uniform3(name string, v math.Vec3)
	// DrawTriangles draws count vertices from the bound buffers as a
	// triangle list.
	DrawTriangles(count int)
}

var (
	_ Device = (*GL)(nil)
	_ Device = (*Recorder)(nil)
)
