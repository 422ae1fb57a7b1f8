package lighting

import (
	"math"
	"testing"

	"github.com/Faultbox/bunnylight/internal/config"
)

func TestOrbitDirectionStart(t *testing.T) {
	d := OrbitDirection(0, 10)
	if d.X != 1 || d.Y != 0 || d.Z != 0 {
		t.Errorf("OrbitDirection(0) = %v, want (1, 0, 0)", d)
	}

	// 9 phase units at speed 10 is a quarter turn
	d = OrbitDirection(9, 10)
	if math.Abs(float64(d.X)) > 1e-6 || math.Abs(float64(d.Y)-1) > 1e-6 {
		t.Errorf("OrbitDirection(9) = %v, want (0, 1, 0)", d)
	}
}

func TestOrbitPeriodic(t *testing.T) {
	for _, phase := range []float64{0, 0.1, 1.7, 12.3, 1000.4} {
		a := OrbitDirection(phase, 10)
		b := OrbitDirection(phase+36, 10)
		if a.Sub(b).Length() > 1e-5 {
			t.Errorf("phase %v: direction %v differs from %v one period later", phase, a, b)
		}
	}
}

func TestOrbitAdvance(t *testing.T) {
	o := NewOrbit(0.1, 10)
	if o.Period() != 36 {
		t.Errorf("Period() = %v, want 36", o.Period())
	}

	start := o.Direction()
	for i := 0; i < 360; i++ {
		o.Advance()
	}
	if math.Abs(o.Phase-36) > 1e-9 {
		t.Errorf("phase after 360 steps = %v, want 36", o.Phase)
	}
	if o.Direction().Sub(start).Length() > 1e-5 {
		t.Errorf("direction after a full period = %v, want %v", o.Direction(), start)
	}

	// Phase keeps growing past the period
	o.Advance()
	if o.Phase <= 36 {
		t.Errorf("phase should not wrap, got %v", o.Phase)
	}
}

func TestPointerToNDC(t *testing.T) {
	tests := []struct {
		name   string
		px, py float32
		wantX  float32
		wantY  float32
	}{
		{"top left", 0, 0, -1, 1},
		{"bottom right", 100, 100, 1, -1},
		{"center", 50, 50, 0, 0},
		{"top right", 100, 0, 1, 1},
		{"quarter", 25, 75, -0.5, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerToNDC(tt.px, tt.py, 100, 100)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("PointerToNDC(%v, %v) = %v, want (%v, %v)", tt.px, tt.py, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerLight(t *testing.T) {
	p := NewPointerLight(3, 200, 100)

	if got := p.Position(); got.X != 0 || got.Y != 0 || got.Z != 3 {
		t.Errorf("initial position = %v, want (0, 0, 3)", got)
	}

	p.Move(200, 0)
	if got := p.Position(); got.X != 1 || got.Y != 1 || got.Z != 3 {
		t.Errorf("position after move = %v, want (1, 1, 3)", got)
	}

	// Same pixel maps differently after a resize
	p.Resize(400, 100)
	p.Move(200, 0)
	if got := p.NDC(); got.X != 0 || got.Y != 1 {
		t.Errorf("NDC after resize = %v, want (0, 1)", got)
	}

	// A zero-sized surface ignores moves
	p.Resize(0, 0)
	p.Move(10, 10)
	if got := p.NDC(); got.X != 0 || got.Y != 1 {
		t.Errorf("NDC changed on zero-sized surface: %v", got)
	}
}

func TestParamsFromConfig(t *testing.T) {
	p := ParamsFromConfig(config.Default().Lighting)

	if p.LightColor.X != 0.831 || p.LightColor.Y != 0.686 || p.LightColor.Z != 0.216 {
		t.Errorf("LightColor = %v", p.LightColor)
	}
	if p.Ambient.Z != 0.3 {
		t.Errorf("Ambient = %v", p.Ambient)
	}
	if p.SurfaceSpec != p.SurfaceSpecM {
		t.Errorf("specular coefficients should match by default: %v vs %v", p.SurfaceSpec, p.SurfaceSpecM)
	}
}
