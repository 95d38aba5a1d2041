package surface

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arena3d/input"
	"github.com/lixenwraith/arena3d/parameter"
	"golang.org/x/term"
)

// halfBlock draws the upper pixel as foreground and the lower pixel as background
const halfBlock = '▀'

// Terminal presents two framebuffer rows per cell row and reports mouse position in pixels
type Terminal struct {
	screen  tcell.Screen
	events  chan input.Event
	buttons tcell.ButtonMask

	finiOnce sync.Once
	done     chan struct{}

	// onPanic runs after a poller panic, with the screen already finalized
	onPanic func(r any, stack []byte)
}

// NewTerminal creates a terminal surface on the controlling TTY
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, e.g. a simulation screen
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		events:  make(chan input.Event, parameter.InputQueueSize),
		done:    make(chan struct{}),
		onPanic: pollerCrashed,
	}
}

// pollerCrashed prints the panic with its stack on the restored terminal and exits 1
func pollerCrashed(r any, stack []byte) {
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Exit(1)
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	go t.poll()
	return nil
}

// poll forwards screen events until the screen is finalized
func (t *Terminal) poll() {
	defer close(t.events)
	// Panic Recovery: leave raw mode and the alt screen before reporting
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			t.Fini()
			t.onPanic(r, stack)
		}
	}()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if out, ok := t.translate(ev); ok {
			select {
			case t.events <- out:
			case <-t.done:
				return
			}
		}
	}
}

// translate maps a tcell event to an input.Event in framebuffer pixel coordinates
// Pointer motion while the primary button is held is a move; only the press edge is a click
func (t *Terminal) translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := x, y*2
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := t.buttons&tcell.Button1 != 0
		t.buttons = ev.Buttons()
		if pressed && !wasPressed {
			return input.Event{Type: input.EventClick, X: px, Y: py}, true
		}
		return input.Event{Type: input.EventMove, X: px, Y: py}, true

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return input.Event{Type: input.EventQuit}, true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return input.Event{Type: input.EventQuit}, true
		}
		return input.Event{Type: input.EventKey}, true

	case *tcell.EventResize:
		t.screen.Sync()
		w, h := t.Size()
		return input.Event{Type: input.EventResize, Width: w, Height: h}, true
	}
	return input.Event{}, false
}

func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Size is the playfield in pixels: one column per cell, two rows per cell row
func (t *Terminal) Size() (int, int) {
	w, h := t.screen.Size()
	rows := max(h-parameter.TerminalStatusRows, 1)
	return max(w, 1), rows * 2
}

func (t *Terminal) Events() <-chan input.Event {
	return t.events
}

// Present writes fb as half-block cells and the status on the last row
func (t *Terminal) Present(fb *image.RGBA, status string) error {
	cols, screenRows := t.screen.Size()
	rows := screenRows - parameter.TerminalStatusRows
	b := fb.Bounds()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := pixelColor(fb, b.Min.X+x, b.Min.Y+y*2)
			bottom := pixelColor(fb, b.Min.X+x, b.Min.Y+y*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	runes := []rune(status)
	for y := max(rows, 0); y < screenRows; y++ {
		for x := 0; x < cols; x++ {
			r := ' '
			if y == screenRows-1 && x < len(runes) {
				r = runes[x]
			}
			t.screen.SetContent(x, y, r, nil, statusStyle)
		}
	}

	t.screen.Show()
	return nil
}

// Run executes loop on the calling goroutine
func (t *Terminal) Run(loop func() error) error {
	return loop()
}

// pixelColor reads fb at (x, y) as a terminal color; outside the image is black
func pixelColor(fb *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(fb.Bounds()) {
		return tcell.NewRGBColor(0, 0, 0)
	}
	c := fb.RGBAAt(x, y)
	return rgbColor(c)
}

func rgbColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
