package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/arena3d/config"
	"github.com/lixenwraith/arena3d/engine"
	"github.com/lixenwraith/arena3d/gpu"
	"github.com/lixenwraith/arena3d/input"
	"github.com/lixenwraith/arena3d/surface"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	surfaceFlag = flag.String("surface", "", "Render surface: terminal, window (overrides config)")
	seedFlag    = flag.Uint64("seed", 0, "Enemy spawn seed, 0 seeds from the clock (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/arena3d.log")
)

var (
	// logFile is closed by exit; os.Exit skips deferred calls
	logFile *os.File
	osExit  = os.Exit
)

func main() {
	var surf surface.Surface

	// Panic Recovery: release the surface before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			crash("ARENA3D CRASHED", r, surf)
		}
	}()

	flag.Parse()

	logFile = setupLogging(*debugFlag)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err, nil)
	}

	surf, err = surface.New(cfg)
	if err != nil {
		fatal(engine.NewInitError(engine.StageSurface, err), nil)
	}
	if err := surf.Init(); err != nil {
		fatal(engine.NewInitError(engine.StageSurface, err), surf)
	}

	width, height := surf.Size()
	game, err := engine.NewGame(gpu.NewDevice(width, height), cfg.Assets, cfg.Seed, engine.SystemClock{})
	if err != nil {
		fatal(err, surf)
	}

	err = surf.Run(func() error {
		// The window surface runs this on its own goroutine
		defer func() {
			if r := recover(); r != nil {
				crash("GAME LOOP CRASHED", r, surf)
			}
		}()
		return run(surf, game, cfg)
	})
	surf.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena3d: %v\n", err)
		exit(1)
	}

	st := game.Status()
	log.Printf("[main] exit: kills %d, elapsed %s", st.Kills, st.Elapsed.Round(time.Millisecond))
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *surfaceFlag != "" {
		cfg.Surface = *surfaceFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run drives frames, spawns and input until quit
// After game over the frame ticker stops; the last frame stays presented until a key
func run(surf surface.Surface, game *engine.Game, cfg *config.Config) error {
	width, height := surf.Size()
	tracker := input.NewTracker(width, height)

	frameTicker := time.NewTicker(cfg.FrameInterval.Duration())
	defer frameTicker.Stop()
	spawnTicker := time.NewTicker(cfg.SpawnInterval.Duration())
	defer spawnTicker.Stop()

	frameC := frameTicker.C
	spawnC := spawnTicker.C
	events := surf.Events()

	present := func() error {
		if err := game.Frame(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		return surf.Present(game.Device().Framebuffer(), statusLine(game.Status()))
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case input.EventQuit:
				return nil
			case input.EventKey:
				if game.Over() {
					return nil
				}
			case input.EventResize:
				game.Resize(ev.Width, ev.Height)
				if game.Over() {
					if err := present(); err != nil {
						return err
					}
				}
			}
			if tracker.Apply(ev) {
				game.Fire()
			}
			game.SetCursor(tracker.Cursor())

		case <-spawnC:
			if !game.SpawnTick() {
				spawnTicker.Stop()
				spawnC = nil
			}

		case <-frameC:
			if err := present(); err != nil {
				return err
			}
			if game.Over() {
				frameTicker.Stop()
				frameC = nil
			}
		}
	}
}

func statusLine(st engine.Status) string {
	state := "running"
	if st.GameOver {
		state = "GAME OVER, press any key"
	}
	return fmt.Sprintf(" enemies %d  projectiles %d  kills %d  %s  %s",
		st.Enemies, st.Projectiles, st.Kills, st.Elapsed.Round(100*time.Millisecond), state)
}

// fatal reports a startup error and exits 1; the surface is released first when present
func fatal(err error, surf surface.Surface) {
	if surf != nil {
		surf.Fini()
	}
	log.Printf("[main] fatal: %v", err)
	fmt.Fprintf(os.Stderr, "arena3d: %v\n", err)
	exit(1)
}

func crash(what string, r any, surf surface.Surface) {
	if surf != nil {
		surf.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	log.Printf("[main] crash: %s: %v", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// exit flushes and closes the debug log before leaving the process
func exit(code int) {
	closeLog()
	osExit(code)
}

func closeLog() {
	if logFile == nil {
		return
	}
	logFile.Sync()
	logFile.Close()
	logFile = nil
}
