package input

// EventType discriminates surface input events
type EventType uint8

const (
	EventNone   EventType = iota
	EventMove             // Pointer moved, X/Y in framebuffer pixels
	EventClick            // Primary button pressed, X/Y in framebuffer pixels
	EventResize           // Framebuffer resized, Width/Height in pixels
	EventQuit             // Esc, q, Ctrl-C or window close
	EventKey              // Any other key; dismisses the game-over screen
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventClick:
		return "click"
	case EventResize:
		return "resize"
	case EventQuit:
		return "quit"
	case EventKey:
		return "key"
	default:
		return "none"
	}
}

// Event is a surface-agnostic input event
type Event struct {
	Type   EventType
	X, Y   int
	Width  int
	Height int
}
