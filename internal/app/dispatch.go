package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/controls"
	"github.com/Faultbox/bunnylight/internal/engine/input"
	"github.com/Faultbox/bunnylight/internal/engine/lighting"
	"github.com/Faultbox/bunnylight/internal/logger"
)

// action is what the loop must do after an event has been applied.
type action int

const (
	actionNone action = iota
	actionQuit
	actionResize
	actionScreenshot
	actionSave
)

// selectKeys maps number keys to control indices.
var selectKeys = map[sdl.Keycode]int{
	sdl.K_1: controls.RotX,
	sdl.K_2: controls.RotY,
	sdl.K_3: controls.RotZ,
	sdl.K_4: controls.Scale,
	sdl.K_5: controls.TX,
	sdl.K_6: controls.TY,
}

// dispatch applies one input event to the panel and pointer light and
// reports anything the loop itself has to handle.
func dispatch(ev input.Event, panel *controls.Panel, pointer *lighting.PointerLight) action {
	switch ev.Type {
	case input.EventQuit:
		return actionQuit

	case input.EventWindowResize:
		pointer.Resize(ev.Width, ev.Height)
		return actionResize

	case input.EventMouseMove:
		pointer.Move(ev.MouseX, ev.MouseY)

	case input.EventMouseDoubleClick:
		if ev.Button == sdl.BUTTON_LEFT {
			resetSelected(panel)
		}

	case input.EventMouseWheel:
		panel.Selected().Nudge(ev.WheelY * stepsFor(ev.Mods))

	case input.EventKeyDown:
		return dispatchKey(ev, panel)
	}

	return actionNone
}

func dispatchKey(ev input.Event, panel *controls.Panel) action {
	if i, ok := selectKeys[ev.Key]; ok {
		panel.Select(i)
		logger.Info("control selected", zap.String("control", panel.Selected().Name))
		return actionNone
	}

	steps := stepsFor(ev.Mods)

	switch ev.Key {
	case sdl.K_ESCAPE:
		return actionQuit
	case sdl.K_F12:
		return actionScreenshot
	case sdl.K_s:
		if ev.Mods&input.ModCtrl != 0 {
			return actionSave
		}
	case sdl.K_TAB, sdl.K_DOWN:
		if ev.Key == sdl.K_TAB && ev.Mods&input.ModShift != 0 {
			panel.SelectPrev()
		} else {
			panel.SelectNext()
		}
		logger.Info("control selected", zap.String("control", panel.Selected().Name))
	case sdl.K_UP:
		panel.SelectPrev()
		logger.Info("control selected", zap.String("control", panel.Selected().Name))
	case sdl.K_RIGHT:
		panel.Selected().Nudge(steps)
	case sdl.K_LEFT:
		panel.Selected().Nudge(-steps)
	case sdl.K_r:
		resetSelected(panel)
	case sdl.K_0:
		panel.ResetAll()
		logger.Debug("all controls reset")
	}
	return actionNone
}

// stepsFor returns how many control steps one key press or wheel notch
// moves. Shift multiplies by ten.
func stepsFor(mods uint8) int {
	if mods&input.ModShift != 0 {
		return 10
	}
	return 1
}

func resetSelected(panel *controls.Panel) {
	c := panel.Selected()
	c.Reset()
	logger.Debug("control reset", zap.String("control", c.Name), zap.Float32("value", c.Value))
}
