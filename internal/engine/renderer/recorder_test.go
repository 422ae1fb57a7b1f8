package renderer

import (
	"testing"

	"github.com/Faultbox/bunnylight/pkg/math"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Viewport(640, 480)
	r.Clear()
	r.UniformMatrix4("mat", math.Translate(1, 0, 0))
	r.UniformMatrix4("mat", math.Identity())
	r.Uniform3("lightDir", math.Vec3{X: 1})
	r.DrawTriangles(6)

	want := []string{"viewport", "clear", "mat4", "mat4", "vec3", "draw"}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("Ops() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, got[i], want[i])
		}
	}

	m, ok := r.LastMat4("mat")
	if !ok || m != math.Identity() {
		t.Errorf("LastMat4 should return the latest upload, got %v (%v)", m, ok)
	}
	if _, ok := r.LastMat4("missing"); ok {
		t.Error("LastMat4 found a uniform that was never set")
	}

	v, ok := r.LastVec3("lightDir")
	if !ok || v.X != 1 {
		t.Errorf("LastVec3 = %v (%v), want (1, 0, 0)", v, ok)
	}

	draws := r.Draws()
	if len(draws) != 1 || draws[0].Count != 6 {
		t.Errorf("Draws() = %v, want one draw of 6", draws)
	}

	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("Reset left %d calls", len(r.Calls))
	}
}
