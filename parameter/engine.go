package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame tick interval (~60 FPS), one simulation step per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// EnemySpawnInterval is the wall-clock period of the enemy spawn timer
	EnemySpawnInterval = 450 * time.Millisecond

	// InputQueueSize is the buffered capacity between the input poller and the loop
	InputQueueSize = 256
)

// Surfaces
const (
	// WindowWidth and WindowHeight are the default window surface size in pixels
	WindowWidth  = 960
	WindowHeight = 540

	// TerminalStatusRows is the number of cell rows reserved below the playfield
	TerminalStatusRows = 1
)
