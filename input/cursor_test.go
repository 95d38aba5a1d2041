package input

import (
	"math"
	"testing"
)

func TestCursorFromPixel(t *testing.T) {
	tests := []struct {
		name         string
		px, py, w, h int
		wantX, wantY float64
	}{
		{"Centre", 50, 25, 100, 50, 0, 0},
		{"Top left", 0, 0, 100, 50, -50, 25},
		{"Bottom right", 100, 50, 100, 50, 50, -25},
		{"Right of centre", 80, 25, 100, 50, 30, 0},
		{"Odd size", 0, 0, 5, 3, -2.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CursorFromPixel(tt.px, tt.py, tt.w, tt.h)
			if c.X != tt.wantX || c.Y != tt.wantY {
				t.Errorf("CursorFromPixel(%d, %d) = (%v, %v), want (%v, %v)",
					tt.px, tt.py, c.X, c.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAimAngle(t *testing.T) {
	tests := []struct {
		name   string
		cursor Cursor
		want   float64
	}{
		{"Right", Cursor{10, 0}, 1.5708},
		{"Up", Cursor{0, 10}, math.Pi/2 + 1.5708},
		{"Left", Cursor{-10, 0}, math.Pi + 1.5708},
		{"Down", Cursor{0, -10}, -math.Pi/2 + 1.5708},
		{"Centre", Cursor{}, 1.5708},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cursor.AimAngle(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AimAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerApply(t *testing.T) {
	tr := NewTracker(100, 50)

	if fire := tr.Apply(Event{Type: EventMove, X: 100, Y: 25}); fire {
		t.Error("move should not fire")
	}
	if c := tr.Cursor(); c.X != 50 || c.Y != 0 {
		t.Errorf("cursor after move = %+v, want {50 0}", c)
	}

	tr.Apply(Event{Type: EventResize, Width: 200, Height: 100})
	if w, h := tr.Size(); w != 200 || h != 100 {
		t.Errorf("size after resize = %dx%d, want 200x100", w, h)
	}

	if fire := tr.Apply(Event{Type: EventClick, X: 100, Y: 0}); !fire {
		t.Error("click should fire")
	}
	if c := tr.Cursor(); c.X != 0 || c.Y != 50 {
		t.Errorf("cursor after click = %+v, want {0 50}", c)
	}

	if fire := tr.Apply(Event{Type: EventQuit}); fire {
		t.Error("quit should not fire")
	}
}
