package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestConvert(t *testing.T) {
	restore := modState
	modState = func() uint16 { return 0 }
	defer func() { modState = restore }()

	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			want:   Event{Type: EventWindowResize, Width: 800, Height: 600},
			wantOK: true,
		},
		{
			name:   "other window event",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			wantOK: false,
		},
		{
			name: "shifted key",
			event: &sdl.KeyboardEvent{
				Type:   sdl.KEYDOWN,
				Keysym: sdl.Keysym{Sym: sdl.K_RIGHT, Mod: uint16(sdl.KMOD_LSHIFT)},
			},
			want:   Event{Type: EventKeyDown, Key: sdl.K_RIGHT, Mods: ModShift},
			wantOK: true,
		},
		{
			name:   "key up ignored",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_r}},
			wantOK: false,
		},
		{
			name:   "mouse move",
			event:  &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 12, Y: 34},
			want:   Event{Type: EventMouseMove, MouseX: 12, MouseY: 34},
			wantOK: true,
		},
		{
			name:   "single click ignored",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, Clicks: 1},
			wantOK: false,
		},
		{
			name:   "double click",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, Clicks: 2, X: 5, Y: 6},
			want:   Event{Type: EventMouseDoubleClick, Button: sdl.BUTTON_LEFT, MouseX: 5, MouseY: 6},
			wantOK: true,
		},
		{
			name:   "wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2},
			want:   Event{Type: EventMouseWheel, WheelY: -2},
			wantOK: true,
		},
		{
			name:   "flipped wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)},
			want:   Event{Type: EventMouseWheel, WheelY: -1},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("convert() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("convert() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertWheelCarriesHeldModifiers(t *testing.T) {
	restore := modState
	defer func() { modState = restore }()

	modState = func() uint16 { return uint16(sdl.KMOD_LSHIFT) }
	got, ok := convert(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1})
	if !ok {
		t.Fatal("wheel event should convert")
	}
	if got.Mods&ModShift == 0 {
		t.Errorf("Mods = %b, want shift set", got.Mods)
	}

	modState = func() uint16 { return uint16(sdl.KMOD_RCTRL) }
	got, _ = convert(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1})
	if got.Mods != ModCtrl {
		t.Errorf("Mods = %b, want ctrl only", got.Mods)
	}
}
