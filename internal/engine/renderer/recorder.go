package renderer

import "github.com/Faultbox/bunnylight/pkg/math"

// Call is one recorded Device call.
type Call struct {
	Op     string
	Name   string
	Mat    math.Mat4
	Vec    math.Vec3
	Count  int
	Width  int
	Height int
}

// Recorder is a Device that records calls instead of issuing them.
// It lets frame logic run without a GL context.
type Recorder struct {
	Calls []Call
}

// Viewport records a viewport change.
func (r *Recorder) Viewport(width, height int) {
	r.Calls = append(r.Calls, Call{Op: "viewport", Width: width, Height: height})
}

// Clear records a clear.
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: "clear"})
}

// UniformMatrix4 records a matrix upload.
func (r *Recorder) UniformMatrix4(name string, m math.Mat4) {
	r.Calls = append(r.Calls, Call{Op: "mat4", Name: name, Mat: m})
}

// Uniform3 records a vec3 upload.
func (r *Recorder) Uniform3(name string, v math.Vec3) {
	r.Calls = append(r.Calls, Call{Op: "vec3", Name: name, Vec: v})
}

// DrawTriangles records a draw.
func (r *Recorder) DrawTriangles(count int) {
	r.Calls = append(r.Calls, Call{Op: "draw", Count: count})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Draws returns the recorded draw calls.
func (r *Recorder) Draws() []Call {
	var draws []Call
	for _, c := range r.Calls {
		if c.Op == "draw" {
			draws = append(draws, c)
		}
	}
	return draws
}

// LastMat4 returns the most recent matrix uploaded under name.
func (r *Recorder) LastMat4(name string) (math.Mat4, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if c := r.Calls[i]; c.Op == "mat4" && c.Name == name {
			return c.Mat, true
		}
	}
	return math.Mat4{}, false
}

// LastVec3 returns the most recent vec3 uploaded under name.
func (r *Recorder) LastVec3(name string) (math.Vec3, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if c := r.Calls[i]; c.Op == "vec3" && c.Name == name {
			return c.Vec, true
		}
	}
	return math.Vec3{}, false
}
