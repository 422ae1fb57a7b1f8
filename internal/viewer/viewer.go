// Package viewer implements the per-frame update: transform composition,
// light animation and uniform upload for a single lit mesh.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/controls"
	"github.com/Faultbox/bunnylight/internal/engine/lighting"
	"github.com/Faultbox/bunnylight/internal/engine/renderer"
	"github.com/Faultbox/bunnylight/internal/logger"
	"github.com/Faultbox/bunnylight/internal/shaders"
)

// StatusFunc receives the status line whenever it changes.
type StatusFunc func(status string)

// Options configures a Viewer.
type Options struct {
	Device      renderer.Device
	Panel       *controls.Panel
	Orbit       *lighting.Orbit
	Pointer     *lighting.PointerLight
	Params      lighting.Params
	VertexCount int
	Status      StatusFunc
}

// Viewer owns all state the frame loop reads and writes. It is not safe
// for concurrent use; input handling and frames run on one goroutine.
type Viewer struct {
	device      renderer.Device
	panel       *controls.Panel
	orbit       *lighting.Orbit
	pointer     *lighting.PointerLight
	params      lighting.Params
	vertexCount int
	status      StatusFunc

	lastStatus string
	frames     uint64
}

// New validates the options and returns a viewer ready for its first frame.
func New(opts Options) (*Viewer, error) {
	if opts.Device == nil {
		return nil, fmt.Errorf("viewer: nil device")
	}
	if opts.Panel == nil || opts.Orbit == nil || opts.Pointer == nil {
		return nil, fmt.Errorf("viewer: panel, orbit and pointer are required")
	}
	if opts.VertexCount <= 0 || opts.VertexCount%3 != 0 {
		return nil, fmt.Errorf("viewer: vertex count %d is not a positive multiple of 3", opts.VertexCount)
	}

	status := opts.Status
	if status == nil {
		status = func(string) {}
	}

	return &Viewer{
		device:      opts.Device,
		panel:       opts.Panel,
		orbit:       opts.Orbit,
		pointer:     opts.Pointer,
		params:      opts.Params,
		vertexCount: opts.VertexCount,
		status:      status,
	}, nil
}

// RenderFrame runs one frame: advance the light, publish the status, clear,
// upload the transform and lighting uniforms, and draw the mesh.
func (v *Viewer) RenderFrame() {
	v.orbit.Advance()

	if s := v.panel.Status(); s != v.lastStatus {
		v.lastStatus = s
		v.status(s)
		logger.Debug("status", zap.String("text", s))
	}

	v.device.Clear()

	v.device.UniformMatrix4(shaders.UniformMatrix, Compose(v.panel.Transform()))

	p := v.params
	v.device.Uniform3(shaders.UniformLightDir, v.orbit.Direction())
	v.device.Uniform3(shaders.UniformPointerLight, v.pointer.Position())
	v.device.Uniform3(shaders.UniformLightColor, p.LightColor)
	v.device.Uniform3(shaders.UniformPointerColor, p.PointerColor)
	v.device.Uniform3(shaders.UniformAmbientColor, p.Ambient)
	v.device.Uniform3(shaders.UniformSurfaceDiffuse, p.SurfaceDiffuse)
	v.device.Uniform3(shaders.UniformSurfaceSpec, p.SurfaceSpec)
	v.device.Uniform3(shaders.UniformSurfaceSpecM, p.SurfaceSpecM)

	v.device.DrawTriangles(v.vertexCount)

	v.frames++
}

// Phase returns the current animation phase.
func (v *Viewer) Phase() float64 {
	return v.orbit.Phase
}

// Frames returns how many frames have been rendered.
func (v *Viewer) Frames() uint64 {
	return v.frames
}

// Status returns the most recently published status line.
func (v *Viewer) Status() string {
	return v.lastStatus
}

// Panel returns the control panel the viewer reads from.
func (v *Viewer) Panel() *controls.Panel {
	return v.panel
}

// Pointer returns the pointer light the viewer reads from.
func (v *Viewer) Pointer() *lighting.PointerLight {
	return v.pointer
}
