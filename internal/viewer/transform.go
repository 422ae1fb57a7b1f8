package viewer

import (
	"github.com/Faultbox/bunnylight/internal/controls"
	"github.com/Faultbox/bunnylight/pkg/math"
)

// Compose builds the model matrix from the control snapshot:
//
//	Translate(tx, ty, 0) * Scale(s, s, s) * RotZ(c) * RotY(b) * RotX(a)
//
// so a vertex is rotated about X first and translated last.
func Compose(t controls.Transform) math.Mat4 {
	return math.Translate(t.TX, t.TY, 0).
		Mul(math.Scale(t.Scale, t.Scale, t.Scale)).
		Mul(math.RotateZ(math.Radians(t.RotZ))).
		Mul(math.RotateY(math.Radians(t.RotY))).
		Mul(math.RotateX(math.Radians(t.RotX)))
}
