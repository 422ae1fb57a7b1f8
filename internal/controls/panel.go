package controls

import (
	"fmt"

	"github.com/Faultbox/bunnylight/internal/config"
)

// Control indices in panel order.
const (
	RotX = iota
	RotY
	RotZ
	Scale
	TX
	TY
	Count
)

// Transform is a snapshot of the six transform inputs.
// Rotations are in degrees.
type Transform struct {
	RotX, RotY, RotZ float32
	Scale            float32
	TX, TY           float32
}

// Panel holds the six transform controls and which one input is routed to.
type Panel struct {
	controls [Count]*Control
	selected int
}

// NewPanel builds the panel from configuration.
func NewPanel(cfg config.ControlsConfig) *Panel {
	return &Panel{
		controls: [Count]*Control{
			RotX:  New("rot_x", cfg.RotX),
			RotY:  New("rot_y", cfg.RotY),
			RotZ:  New("rot_z", cfg.RotZ),
			Scale: New("scale", cfg.Scale),
			TX:    New("translate_x", cfg.TX),
			TY:    New("translate_y", cfg.TY),
		},
	}
}

// Control returns the control at index i.
func (p *Panel) Control(i int) *Control {
	return p.controls[i]
}

// Select routes input to control i. Out-of-range indices are ignored.
func (p *Panel) Select(i int) {
	if i >= 0 && i < Count {
		p.selected = i
	}
}

// SelectNext cycles to the next control.
func (p *Panel) SelectNext() {
	p.selected = (p.selected + 1) % Count
}

// SelectPrev cycles to the previous control.
func (p *Panel) SelectPrev() {
	p.selected = (p.selected + Count - 1) % Count
}

// Selected returns the control receiving input.
func (p *Panel) Selected() *Control {
	return p.controls[p.selected]
}

// SelectedIndex returns the index of the selected control.
func (p *Panel) SelectedIndex() int {
	return p.selected
}

// ResetAll restores every control to its initial value.
func (p *Panel) ResetAll() {
	for _, c := range p.controls {
		c.Reset()
	}
}

// Commit makes the live values the new initial values and writes them to
// cfg. It returns the names of the controls whose initial value moved.
func (p *Panel) Commit(cfg *config.ControlsConfig) []string {
	var changed []string
	for _, c := range p.controls {
		if c.Changed() {
			changed = append(changed, c.Name)
			c.Initial = c.Value
		}
	}

	cfg.RotX.Initial = p.controls[RotX].Initial
	cfg.RotY.Initial = p.controls[RotY].Initial
	cfg.RotZ.Initial = p.controls[RotZ].Initial
	cfg.Scale.Initial = p.controls[Scale].Initial
	cfg.TX.Initial = p.controls[TX].Initial
	cfg.TY.Initial = p.controls[TY].Initial
	return changed
}

// Transform reads the live values.
func (p *Panel) Transform() Transform {
	return Transform{
		RotX:  p.controls[RotX].Value,
		RotY:  p.controls[RotY].Value,
		RotZ:  p.controls[RotZ].Value,
		Scale: p.controls[Scale].Value,
		TX:    p.controls[TX].Value,
		TY:    p.controls[TY].Value,
	}
}

// Status formats the live values for display.
func (p *Panel) Status() string {
	return FormatStatus(p.Transform())
}

// FormatStatus renders rotations as integers and scale and translation
// with two decimals, rounding half away from zero on the decimal value.
func FormatStatus(t Transform) string {
	return fmt.Sprintf("Angles: %s, %s, %s. Scale: %s. Translation: %s, %s",
		FormatFixed(t.RotX, 0),
		FormatFixed(t.RotY, 0),
		FormatFixed(t.RotZ, 0),
		FormatFixed(t.Scale, 2),
		FormatFixed(t.TX, 2),
		FormatFixed(t.TY, 2),
	)
}
