package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
	if got := (Vec3{1, 0, 0}).Dot(Vec3{0, 1, 0}); got != 0 {
		t.Errorf("orthogonal Dot() = %v, want 0", got)
	}
}

func TestVec3Array(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("Vec3.Array() = %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestFlattenVec3(t *testing.T) {
	got := FlattenVec3([]Vec3{{1, 2, 3}, {4, 5, 6}})
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("FlattenVec3 length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FlattenVec3[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(FlattenVec3(nil)) != 0 {
		t.Error("FlattenVec3(nil) should be empty")
	}
}
