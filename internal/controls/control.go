// Package controls models the numeric range inputs that drive the model
// transform. Each control remembers its initial value and can be reset to it.
package controls

import "github.com/Faultbox/bunnylight/internal/config"

// Control is a clamped numeric value with a recorded initial value.
type Control struct {
	Name    string
	Value   float32
	Initial float32
	Min     float32
	Max     float32
	Step    float32
}

// New creates a control at its initial value.
func New(name string, cfg config.ControlConfig) *Control {
	c := &Control{
		Name:    name,
		Initial: cfg.Initial,
		Min:     cfg.Min,
		Max:     cfg.Max,
		Step:    cfg.Step,
	}
	c.Value = c.clamp(cfg.Initial)
	c.Initial = c.Value
	return c
}

// Set assigns v, clamped to [Min, Max].
func (c *Control) Set(v float32) {
	c.Value = c.clamp(v)
}

// Nudge moves the value by n steps.
func (c *Control) Nudge(n int) {
	c.Set(c.Value + float32(n)*c.Step)
}

// Reset restores the initial value.
func (c *Control) Reset() {
	c.Value = c.Initial
}

// Changed reports whether the value differs from the initial value.
func (c *Control) Changed() bool {
	return c.Value != c.Initial
}

func (c *Control) clamp(v float32) float32 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}
