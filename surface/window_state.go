package surface

import (
	"image"
	"sync"

	"github.com/lixenwraith/arena3d/input"
	"github.com/lixenwraith/arena3d/parameter"
)

// windowState is the part of the window surface shared between the game loop and
// the windowing thread: the last presented frame and the pointer edge detector
type windowState struct {
	mu     sync.Mutex
	pixels []byte
	width  int
	height int
	status string

	events   chan input.Event
	cursorX  int
	cursorY  int
	haveSeen bool
}

func newWindowState(width, height int) *windowState {
	return &windowState{
		width:  width,
		height: height,
		events: make(chan input.Event, parameter.InputQueueSize),
	}
}

// store copies fb for the next draw
func (s *windowState) store(fb *image.RGBA, status string) {
	b := fb.Bounds()
	w, h := b.Dx(), b.Dy()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pixels) != w*h*4 {
		s.pixels = make([]byte, w*h*4)
	}
	for y := 0; y < h; y++ {
		row := fb.Pix[fb.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(s.pixels[y*w*4:(y+1)*w*4], row[:w*4])
	}
	s.status = status
}

// frame returns the stored pixels when they match the current layout size
func (s *windowState) frame() (pixels []byte, status string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pixels) == 0 || len(s.pixels) != s.width*s.height*4 {
		return nil, s.status, false
	}
	return s.pixels, s.status, true
}

func (s *windowState) size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// layout records the outside size and reports a resize event when it changed
func (s *windowState) layout(width, height int) {
	s.mu.Lock()
	changed := width != s.width || height != s.height
	s.width, s.height = width, height
	s.mu.Unlock()

	if changed && width > 0 && height > 0 {
		trySend(s.events, input.Event{Type: input.EventResize, Width: width, Height: height})
	}
}

// pointer reports motion and press edges from a polled cursor sample
func (s *windowState) pointer(x, y int, justPressed bool) {
	if !s.haveSeen || x != s.cursorX || y != s.cursorY {
		s.haveSeen = true
		s.cursorX, s.cursorY = x, y
		trySend(s.events, input.Event{Type: input.EventMove, X: x, Y: y})
	}
	if justPressed {
		trySend(s.events, input.Event{Type: input.EventClick, X: x, Y: y})
	}
}
