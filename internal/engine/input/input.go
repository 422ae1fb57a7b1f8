// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDoubleClick
	EventMouseWheel
)

// Modifier flags carried on key events.
const (
	ModShift uint8 = 1 << iota
	ModCtrl
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Mods   uint8
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := convert(event); ok {
			i.events = append(i.events, ev)
			if ev.Type == EventQuit {
				return true
			}
		}
	}

	return false
}

// convert maps one SDL event to an Event. Events the viewer does not use
// are dropped.
func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Sym,
				Mods: mods(e.Keysym.Mod),
			}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		// SDL counts consecutive clicks; the second press is the double-click
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Clicks == 2 {
			return Event{
				Type:   EventMouseDoubleClick,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			}, true
		}

	case *sdl.MouseWheelEvent:
		y := int(e.Y)
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			y = -y
		}
		// Wheel events carry no modifier state of their own
		return Event{Type: EventMouseWheel, WheelY: y, Mods: mods(modState())}, true
	}

	return Event{}, false
}

// modState reads the keyboard modifiers held right now.
var modState = func() uint16 {
	return uint16(sdl.GetModState())
}

func mods(m uint16) uint8 {
	var out uint8
	if m&uint16(sdl.KMOD_SHIFT) != 0 {
		out |= ModShift
	}
	if m&uint16(sdl.KMOD_CTRL) != 0 {
		out |= ModCtrl
	}
	return out
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
