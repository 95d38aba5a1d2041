//go:build cgo

package surface

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/arena3d/input"
)

const windowTitle = "arena3d"

// Window is a desktop window surface; ebiten owns the main thread while Run is active
type Window struct {
	state *windowState
	done  chan struct{}
	img   *ebiten.Image
	keys  []ebiten.Key
}

// NewWindow creates a window surface of the given size in pixels
func NewWindow(width, height int) (*Window, error) {
	return &Window{
		state: newWindowState(width, height),
		done:  make(chan struct{}),
	}, nil
}

func (w *Window) Init() error {
	width, height := w.state.size()
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

func (w *Window) Fini() {}

func (w *Window) Size() (int, int) {
	return w.state.size()
}

func (w *Window) Events() <-chan input.Event {
	return w.state.events
}

func (w *Window) Present(fb *image.RGBA, status string) error {
	w.state.store(fb, status)
	return nil
}

// Run starts loop on its own goroutine and blocks in the ebiten run loop
// Closing the window sends EventQuit; loop returning closes the window
func (w *Window) Run(loop func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- loop()
		close(w.done)
	}()

	if err := ebiten.RunGame(w); err != nil {
		return err
	}

	select {
	case w.state.events <- input.Event{Type: input.EventQuit}:
	case <-w.done:
	}
	return <-errCh
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	x, y := ebiten.CursorPosition()
	w.state.pointer(x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		ev := input.Event{Type: input.EventKey}
		if k == ebiten.KeyEscape || k == ebiten.KeyQ {
			ev.Type = input.EventQuit
		}
		trySend(w.state.events, ev)
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	pixels, status, ok := w.state.frame()
	if !ok {
		return
	}
	screen.WritePixels(pixels)
	ebitenutil.DebugPrint(screen, status)
}

// Layout implements ebiten.Game; the framebuffer tracks the window size one to one
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.state.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
