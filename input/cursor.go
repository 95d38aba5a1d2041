package input

import "github.com/lixenwraith/arena3d/vmath"

// Cursor is the pointer offset from the viewport centre in pixels, +Y up
type Cursor struct {
	X, Y float64
}

// CursorFromPixel converts framebuffer pixel coordinates (origin top-left, +Y down)
// into an offset from the centre of a width x height viewport
func CursorFromPixel(px, py, width, height int) Cursor {
	midX := float64(width) / 2
	midY := float64(height) / 2
	return Cursor{
		X: float64(px) - midX,
		Y: midY - float64(py),
	}
}

// AimAngle is the heading that points the player at the cursor
func (c Cursor) AimAngle() float64 {
	return vmath.HeadingFromOffset(c.X, c.Y)
}

// Tracker holds the last sampled cursor and the viewport it was sampled in
type Tracker struct {
	cursor        Cursor
	width, height int
}

// NewTracker starts with the cursor at the viewport centre
func NewTracker(width, height int) *Tracker {
	return &Tracker{width: width, height: height}
}

// Apply folds one event into the tracked state and reports whether it requests a shot
func (t *Tracker) Apply(ev Event) (fire bool) {
	switch ev.Type {
	case EventMove:
		t.cursor = CursorFromPixel(ev.X, ev.Y, t.width, t.height)
	case EventClick:
		t.cursor = CursorFromPixel(ev.X, ev.Y, t.width, t.height)
		return true
	case EventResize:
		t.width, t.height = ev.Width, ev.Height
	}
	return false
}

// Cursor returns the last sampled cursor
func (t *Tracker) Cursor() Cursor {
	return t.cursor
}

// Size returns the viewport the tracker maps against
func (t *Tracker) Size() (int, int) {
	return t.width, t.height
}
