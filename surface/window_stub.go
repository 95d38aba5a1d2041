//go:build !cgo

package surface

import (
	"image"

	"github.com/lixenwraith/arena3d/input"
)

// Window is unavailable without cgo
type Window struct{}

func NewWindow(_, _ int) (*Window, error) {
	return nil, ErrNoWindow
}

func (w *Window) Init() error                       { return ErrNoWindow }
func (w *Window) Fini()                             {}
func (w *Window) Size() (int, int)                  { return 0, 0 }
func (w *Window) Events() <-chan input.Event        { return nil }
func (w *Window) Present(*image.RGBA, string) error { return ErrNoWindow }
func (w *Window) Run(func() error) error            { return ErrNoWindow }
