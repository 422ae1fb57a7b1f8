package mesh

import (
	"fmt"
	"sort"

	"github.com/Faultbox/bunnylight/pkg/math"
)

// builtins maps mesh names to their constructors.
var builtins = map[string]func() *Mesh{
	"triangle":  Triangle,
	"cube":      Cube,
	"icosphere": func() *Mesh { return Icosphere(3, 0.6) },
}

// Builtin returns the pre-baked mesh registered under name.
func Builtin(name string) (*Mesh, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknown, name, Names())
	}
	return build(), nil
}

// Names returns the registered mesh names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Triangle returns a single front-facing triangle in the XY plane.
func Triangle() *Mesh {
	a := math.Vec3{X: -0.5, Y: -0.5, Z: 0}
	b := math.Vec3{X: 0.5, Y: -0.5, Z: 0}
	c := math.Vec3{X: 0, Y: 0.5, Z: 0}
	n := FaceNormal(a, b, c)
	return &Mesh{
		Positions: []math.Vec3{a, b, c},
		Normals:   []math.Vec3{n, n, n},
	}
}

// Cube returns a flat-shaded cube with half-extent 0.5.
func Cube() *Mesh {
	const h = 0.5
	// Corners are counter-clockwise seen from outside
	faces := [][4]math.Vec3{
		{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},
		{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}},
		{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},
		{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}},
	}

	m := &Mesh{
		Positions: make([]math.Vec3, 0, 36),
		Normals:   make([]math.Vec3, 0, 36),
	}
	for _, c := range faces {
		n := FaceNormal(c[0], c[1], c[2])
		m.Positions = append(m.Positions, c[0], c[1], c[2], c[0], c[2], c[3])
		for i := 0; i < 6; i++ {
			m.Normals = append(m.Normals, n)
		}
	}
	return m
}

// Icosphere returns a smooth-shaded sphere built by subdividing an
// icosahedron. Each subdivision level quadruples the triangle count.
func Icosphere(subdivisions int, radius float32) *Mesh {
	const t = 1.618034 // golden ratio

	verts := []math.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	tris := [][3]math.Vec3{}
	for _, f := range [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	} {
		tris = append(tris, [3]math.Vec3{
			verts[f[0]].Normalize(),
			verts[f[1]].Normalize(),
			verts[f[2]].Normalize(),
		})
	}

	for i := 0; i < subdivisions; i++ {
		next := make([][3]math.Vec3, 0, len(tris)*4)
		for _, tri := range tris {
			a, b, c := tri[0], tri[1], tri[2]
			ab := a.Add(b).Normalize()
			bc := b.Add(c).Normalize()
			ca := c.Add(a).Normalize()
			next = append(next,
				[3]math.Vec3{a, ab, ca},
				[3]math.Vec3{b, bc, ab},
				[3]math.Vec3{c, ca, bc},
				[3]math.Vec3{ab, bc, ca},
			)
		}
		tris = next
	}

	m := &Mesh{
		Positions: make([]math.Vec3, 0, len(tris)*3),
		Normals:   make([]math.Vec3, 0, len(tris)*3),
	}
	for _, tri := range tris {
		// Wind every face outward so front faces point away from the centre
		centroid := tri[0].Add(tri[1]).Add(tri[2])
		if FaceNormal(tri[0], tri[1], tri[2]).Dot(centroid) < 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}
		for _, v := range tri {
			m.Positions = append(m.Positions, v.Scale(radius))
			m.Normals = append(m.Normals, v)
		}
	}
	return m
}
