package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/bunnylight/internal/config"
)

func TestControlClamp(t *testing.T) {
	c := New("scale", config.ControlConfig{Initial: 1, Min: 0, Max: 2, Step: 0.5})

	c.Set(5)
	assert.Equal(t, float32(2), c.Value)

	c.Set(-1)
	assert.Equal(t, float32(0), c.Value)

	c.Set(1.25)
	assert.Equal(t, float32(1.25), c.Value)
}

func TestControlNudge(t *testing.T) {
	c := New("rot_x", config.ControlConfig{Initial: 0, Min: -180, Max: 180, Step: 1})

	c.Nudge(10)
	assert.Equal(t, float32(10), c.Value)

	c.Nudge(-15)
	assert.Equal(t, float32(-5), c.Value)

	c.Nudge(1000)
	assert.Equal(t, float32(180), c.Value, "nudge should clamp at max")
}

func TestControlResetRestoresInitial(t *testing.T) {
	c := New("translate_x", config.ControlConfig{Initial: 0.25, Min: -1, Max: 1, Step: 0.01})
	require.False(t, c.Changed())

	for _, v := range []float32{-1, 0.9999, 1, -0.333} {
		c.Set(v)
		c.Nudge(37)
		c.Reset()
		assert.Equal(t, float32(0.25), c.Value)
		assert.False(t, c.Changed())
	}
}

func TestControlInitialClamped(t *testing.T) {
	c := New("odd", config.ControlConfig{Initial: 10, Min: 0, Max: 5, Step: 1})
	assert.Equal(t, float32(5), c.Value)
	assert.Equal(t, float32(5), c.Initial)
}

func TestPanelSelection(t *testing.T) {
	p := NewPanel(config.Default().Controls)
	assert.Equal(t, RotX, p.SelectedIndex())

	p.Select(Scale)
	assert.Equal(t, "scale", p.Selected().Name)

	p.Select(Count)
	assert.Equal(t, Scale, p.SelectedIndex(), "out-of-range selection is ignored")

	p.Select(TY)
	p.SelectNext()
	assert.Equal(t, RotX, p.SelectedIndex(), "selection wraps forward")

	p.SelectPrev()
	assert.Equal(t, TY, p.SelectedIndex(), "selection wraps backward")
}

func TestPanelTransformAndResetAll(t *testing.T) {
	p := NewPanel(config.Default().Controls)

	assert.Equal(t, Transform{Scale: 1}, p.Transform())

	p.Control(RotY).Set(30)
	p.Control(TX).Set(0.5)
	assert.Equal(t, Transform{RotY: 30, Scale: 1, TX: 0.5}, p.Transform())

	p.ResetAll()
	assert.Equal(t, Transform{Scale: 1}, p.Transform())
}

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(Transform{
		RotX:  45.6,
		RotY:  -10.2,
		RotZ:  0,
		Scale: 1.005,
		TX:    0.333,
		TY:    -0.5,
	})
	assert.Equal(t, "Angles: 46, -10, 0. Scale: 1.01. Translation: 0.33, -0.50", got)
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		v        float32
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{0, 2, "0.00"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{99.5, 0, "100"},
		{-0.4, 0, "0"},
		{-0.004, 2, "0.00"},
		{0.995, 2, "1.00"},
		{1.5, 2, "1.50"},
		{-180, 0, "-180"},
		{0.125, 2, "0.13"},
		{12.3456, 3, "12.346"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.v, tt.decimals), "FormatFixed(%v, %d)", tt.v, tt.decimals)
	}
}

func TestPanelStatusUsesLiveValues(t *testing.T) {
	p := NewPanel(config.Default().Controls)
	assert.Equal(t, "Angles: 0, 0, 0. Scale: 1.00. Translation: 0.00, 0.00", p.Status())

	p.Control(RotZ).Set(-90)
	p.Control(TY).Set(0.75)
	assert.Equal(t, "Angles: 0, 0, -90. Scale: 1.00. Translation: 0.00, 0.75", p.Status())
}

func TestPanelCommit(t *testing.T) {
	cfg := config.Default().Controls
	p := NewPanel(cfg)

	assert.Empty(t, p.Commit(&cfg), "nothing moved yet")

	p.Control(RotX).Set(45)
	p.Control(Scale).Set(1.5)
	changed := p.Commit(&cfg)
	assert.Equal(t, []string{"rot_x", "scale"}, changed)
	assert.Equal(t, float32(45), cfg.RotX.Initial)
	assert.Equal(t, float32(1.5), cfg.Scale.Initial)
	assert.Equal(t, float32(0), cfg.TX.Initial)

	// Reset now returns to the committed values
	p.Control(RotX).Set(-10)
	p.ResetAll()
	assert.Equal(t, Transform{RotX: 45, Scale: 1.5}, p.Transform())

	// A panel built from the written config starts where the old one left off
	assert.Equal(t, p.Transform(), NewPanel(cfg).Transform())
}
