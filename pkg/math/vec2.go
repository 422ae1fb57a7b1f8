package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}
