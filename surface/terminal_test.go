package surface

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arena3d/input"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return NewTerminalWithScreen(screen), screen
}

func TestTerminalSize(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 25)
	w, h := term.Size()
	if w != 80 || h != 48 {
		t.Errorf("Size() = %dx%d, want 80x48", w, h)
	}
}

func TestTerminalTranslate(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 25)

	tests := []struct {
		name string
		ev   tcell.Event
		want input.Event
	}{
		{"Motion", tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), input.Event{Type: input.EventMove, X: 10, Y: 10}},
		{"Press", tcell.NewEventMouse(12, 6, tcell.Button1, tcell.ModNone), input.Event{Type: input.EventClick, X: 12, Y: 12}},
		{"Drag", tcell.NewEventMouse(13, 6, tcell.Button1, tcell.ModNone), input.Event{Type: input.EventMove, X: 13, Y: 12}},
		{"Release", tcell.NewEventMouse(13, 6, tcell.ButtonNone, tcell.ModNone), input.Event{Type: input.EventMove, X: 13, Y: 12}},
		{"Press again", tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), input.Event{Type: input.EventClick, X: 0, Y: 0}},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Event{Type: input.EventQuit}},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.Event{Type: input.EventQuit}},
		{"Rune q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.Event{Type: input.EventQuit}},
		{"Other key", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.Event{Type: input.EventKey}},
		{"Resize", tcell.NewEventResize(80, 25), input.Event{Type: input.EventResize, Width: 80, Height: 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := term.translate(tt.ev)
			if !ok {
				t.Fatal("event dropped")
			}
			if got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTerminalPresent(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 3)

	fb := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	fb.SetRGBA(1, 0, red)
	fb.SetRGBA(1, 1, blue)

	if err := term.Present(fb, "hi"); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	r, _, style, _ := screen.GetContent(1, 0)
	if r != halfBlock {
		t.Errorf("cell rune = %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red (top pixel)", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v, want blue (bottom pixel)", bg)
	}

	for x, want := range []rune{'h', 'i', ' ', ' '} {
		if r, _, _, _ := screen.GetContent(x, 2); r != want {
			t.Errorf("status cell %d = %q, want %q", x, r, want)
		}
	}
}

func TestPixelColorOutOfBounds(t *testing.T) {
	fb := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fb.SetRGBA(0, 0, color.RGBA{G: 200, A: 255})

	if got := pixelColor(fb, 0, 0); got != tcell.NewRGBColor(0, 200, 0) {
		t.Errorf("pixelColor(0, 0) = %v", got)
	}
	if got := pixelColor(fb, 5, 5); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("pixelColor outside = %v, want black", got)
	}
}

// brokenScreen panics on the first poll
type brokenScreen struct {
	tcell.Screen
}

func (brokenScreen) PollEvent() tcell.Event {
	panic("poll failed")
}

func TestTerminalPollerRecovers(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(brokenScreen{Screen: sim})

	type crash struct {
		r     any
		stack []byte
	}
	crashed := make(chan crash, 1)
	term.onPanic = func(r any, stack []byte) {
		crashed <- crash{r, stack}
	}

	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	select {
	case c := <-crashed:
		if c.r != "poll failed" {
			t.Errorf("recovered %v, want poll failed", c.r)
		}
		if len(c.stack) == 0 {
			t.Error("empty stack trace")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller panic not recovered")
	}

	select {
	case <-term.done:
	default:
		t.Error("screen not finalized before reporting")
	}

	select {
	case _, ok := <-term.Events():
		if ok {
			t.Error("event channel still delivering after crash")
		}
	case <-time.After(2 * time.Second):
		t.Error("event channel not closed after crash")
	}
}
