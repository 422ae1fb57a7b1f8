// Package mesh holds pre-baked triangle meshes ready for GPU upload.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bunnylight/pkg/math"
)

var (
	// ErrEmpty is returned for a mesh with no vertices.
	ErrEmpty = errors.New("mesh has no vertices")
	// ErrLengthMismatch is returned when positions and normals differ in count.
	ErrLengthMismatch = errors.New("position and normal counts differ")
	// ErrNotTriangles is returned when the vertex count is not a multiple of 3.
	ErrNotTriangles = errors.New("vertex count is not a multiple of 3")
	// ErrUnknown is returned by Builtin for an unregistered name.
	ErrUnknown = errors.New("unknown mesh")
)

// Mesh is an unindexed triangle list. Positions[i] pairs with Normals[i].
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
}

// VertexCount returns the number of vertices drawn.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// Validate checks the invariants the draw call relies on.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return ErrEmpty
	}
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("%w: %d positions, %d normals", ErrLengthMismatch, len(m.Positions), len(m.Normals))
	}
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrNotTriangles, len(m.Positions))
	}
	return nil
}

// FlatPositions returns positions packed as xyz floats.
func (m *Mesh) FlatPositions() []float32 {
	return math.FlattenVec3(m.Positions)
}

// FlatNormals returns normals packed as xyz floats.
func (m *Mesh) FlatNormals() []float32 {
	return math.FlattenVec3(m.Normals)
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}

// Fit moves the bounding box centre to the origin and scales uniformly so
// the largest half-extent equals extent. Normals are unchanged by a uniform
// scale. A degenerate mesh is only recentred.
func (m *Mesh) Fit(extent float32) {
	lo, hi := m.Bounds()
	centre := lo.Add(hi).Scale(0.5)
	half := hi.Sub(lo).Scale(0.5)

	s := float32(1)
	if largest := max(half.X, half.Y, half.Z); largest > 0 {
		s = extent / largest
	}
	for i, p := range m.Positions {
		m.Positions[i] = p.Sub(centre).Scale(s)
	}
}

// FaceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
