// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/engine/shader"
	"github.com/Faultbox/bunnylight/internal/logger"
	"github.com/Faultbox/bunnylight/internal/mesh"
	"github.com/Faultbox/bunnylight/internal/shaders"
	"github.com/Faultbox/bunnylight/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// GL implements Device on an OpenGL 4.1 core context.
type GL struct {
	config  Config
	program *shader.Program

	vao       uint32
	normalVBO uint32
	posVBO    uint32
}

// NewGL initializes OpenGL state and builds the lighting program.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func NewGL(cfg Config) (*GL, error) {
	r := &GL{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r.Viewport(cfg.Width, cfg.Height)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.NewProgram(
		shaders.BlinnVertexShader,
		shaders.BlinnFragmentShader,
		shaders.Uniforms,
		shaders.Attribs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.Use()

	return r, nil
}

// UploadMesh copies normals and positions into two static buffers and
// binds them to their attributes: three floats per vertex, tightly packed.
func (r *GL) UploadMesh(m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	r.normalVBO = r.uploadAttrib(shaders.AttribNormal, m.FlatNormals())
	r.posVBO = r.uploadAttrib(shaders.AttribPosition, m.FlatPositions())

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Uint32("vao", r.vao),
		zap.Uint32("normals", r.normalVBO),
		zap.Uint32("positions", r.posVBO),
	)
	return nil
}

// uploadAttrib creates a static buffer holding data and points the named
// attribute at it.
func (r *GL) uploadAttrib(name string, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	loc := uint32(r.program.Attrib(name))
	gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

// Close cleans up renderer resources.
func (r *GL) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.normalVBO != 0 {
		gl.DeleteBuffers(1, &r.normalVBO)
	}
	if r.posVBO != 0 {
		gl.DeleteBuffers(1, &r.posVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Viewport sets the GL viewport to the drawable size.
func (r *GL) Viewport(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport set",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size.
func (r *GL) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Clear clears the color and depth buffers.
func (r *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UniformMatrix4 uploads m without transposing; Mat4 is already column-major.
func (r *GL) UniformMatrix4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(r.program.Uniform(name), 1, false, m.Ptr())
}

// Uniform3 uploads a vec3.
func (r *GL) Uniform3(name string, v math.Vec3) {
	a := v.Array()
	gl.Uniform3fv(r.program.Uniform(name), 1, &a[0])
}

// DrawTriangles draws count vertices as independent triangles.
func (r *GL) DrawTriangles(count int) {
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

// ReadPixels reads the back buffer as bottom-up RGBA rows. Call it after
// drawing and before the buffer swap.
func (r *GL) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
