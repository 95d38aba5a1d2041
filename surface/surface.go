// Package surface presents software framebuffers and turns device input into input.Events.
// Two surfaces exist: a terminal (tcell, half-block pixels) and a desktop window (ebiten).
package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/lixenwraith/arena3d/config"
	"github.com/lixenwraith/arena3d/input"
)

var (
	ErrNotTerminal = errors.New("stdout is not a terminal")
	ErrNoWindow    = errors.New("window surface unavailable in this build")
)

// Surface is a presentation target plus its input source
type Surface interface {
	// Init acquires the device and starts input delivery
	Init() error
	// Fini releases the device; safe to call more than once
	Fini()
	// Size is the framebuffer size in pixels
	Size() (width, height int)
	// Events delivers input until the surface is finalized
	Events() <-chan input.Event
	// Present shows fb with a one-line status
	Present(fb *image.RGBA, status string) error
	// Run executes loop, owning whatever thread the surface needs; returns loop's error
	Run(loop func() error) error
}

// New builds the surface named by cfg.Surface
func New(cfg *config.Config) (Surface, error) {
	switch cfg.Surface {
	case config.SurfaceTerminal:
		return NewTerminal()
	case config.SurfaceWindow:
		return NewWindow(cfg.Window.Width, cfg.Window.Height)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrSurface, cfg.Surface)
	}
}

// trySend queues ev without blocking the producer; events are dropped when the queue is full
func trySend(ch chan<- input.Event, ev input.Event) {
	select {
	case ch <- ev:
	default:
	}
}
