package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/arena3d/config"
	"github.com/lixenwraith/arena3d/entity"
	"github.com/lixenwraith/arena3d/gpu"
	"github.com/lixenwraith/arena3d/input"
	"github.com/lixenwraith/arena3d/parameter"
	"github.com/lixenwraith/arena3d/physics"
	"github.com/lixenwraith/arena3d/render"
	"github.com/lixenwraith/arena3d/vmath"
)

// Status is a snapshot for the status line
type Status struct {
	Enemies     int
	Projectiles int
	Kills       int
	GameOver    bool
	Elapsed     time.Duration
}

// Game drives one session: per-frame update-and-draw plus the spawn timer callback
// All methods must be called from the same goroutine
type Game struct {
	State *GameState

	cache  *render.Cache
	frame  *render.Frame
	models *Models
	rng    *vmath.FastRand
	round  roundTimer

	spawnCancelled bool
}

// NewGame compiles the shared program, loads every model and places the player
// Failures are InitErrors
func NewGame(dev *gpu.Device, assets config.Assets, seed uint64, clock Clock) (*Game, error) {
	cache, err := render.NewCache(dev)
	if err != nil {
		return nil, NewInitError(StageShader, err)
	}

	models, err := LoadModels(cache, assets)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	log.Printf("[engine] new game, seed %d, %d resources", seed, cache.Len())

	return &Game{
		State:  NewGameState(models),
		cache:  cache,
		frame:  render.NewFrame(dev),
		models: models,
		rng:    vmath.NewFastRand(seed),
		round:  newRoundTimer(clock),
	}, nil
}

// SetCursor records the last sampled pointer offset
func (g *Game) SetCursor(c input.Cursor) {
	g.State.Cursor = c
}

// Fire launches a projectile along the current aim angle
// Ignored once the game is over
func (g *Game) Fire() *entity.Entity {
	if g.State.GameOver {
		return nil
	}
	proj := g.State.Player.Fire(g.State.Cursor.AimAngle())
	log.Printf("[engine] projectile %s fired, heading %.4f", proj.ShortID(), proj.Heading)
	return proj
}

// SpawnTick is the spawn timer callback; it reports whether the timer should keep running
// After game over it spawns nothing and returns false; the cancellation is logged once
func (g *Game) SpawnTick() bool {
	if g.State.GameOver {
		if !g.spawnCancelled {
			g.spawnCancelled = true
			log.Printf("[engine] spawn timer cancelled")
		}
		return false
	}
	g.SpawnEnemy()
	return true
}

// SpawnEnemy appends one enemy at a random spawn point
func (g *Game) SpawnEnemy() *entity.Entity {
	e := entity.NewEnemy(g.models.Enemy, g.rng)
	g.State.Enemies = append(g.State.Enemies, e)
	log.Printf("[engine] enemy %s spawned at (%.0f, %.0f)", e.ShortID(), e.X, e.Y)
	return e
}

// Frame runs one tick: aim, clear, draw player, step projectiles, step enemies, compact
// The frame that ends the game is fully drawn; later calls only redraw the final state
func (g *Game) Frame() error {
	s := g.State
	if s.GameOver {
		return g.Redraw()
	}

	p := s.Player
	p.SetHeading(s.Cursor.AimAngle())

	g.frame.Begin()
	if err := p.Render(g.frame); err != nil {
		return fmt.Errorf("draw player: %w", err)
	}

	for _, proj := range p.Projectiles {
		proj.Advance()
		if err := proj.Render(g.frame); err != nil {
			return fmt.Errorf("draw projectile %s: %w", proj.ShortID(), err)
		}
		if physics.OffField(proj.X, proj.Y, parameter.FieldBound) {
			proj.MarkRemoved()
			continue
		}
		for _, e := range s.Enemies {
			if e.Removed() || !physics.Collides(e, proj) {
				continue
			}
			e.MarkRemoved()
			proj.MarkRemoved()
			s.Kills++
			log.Printf("[engine] enemy %s hit by projectile %s", e.ShortID(), proj.ShortID())
			break
		}
	}

	for _, e := range s.Enemies {
		if e.Removed() {
			continue
		}
		e.Advance()
		if err := e.Render(g.frame); err != nil {
			return fmt.Errorf("draw enemy %s: %w", e.ShortID(), err)
		}
		if physics.Collides(e, &p.Entity) && !s.GameOver {
			s.GameOver = true
			g.round.stop()
			log.Printf("[engine] game over: enemy %s reached the player, %d kills", e.ShortID(), s.Kills)
		}
	}

	p.Projectiles = compact(p.Projectiles)
	s.Enemies = compact(s.Enemies)
	return nil
}

// Redraw renders the current state without advancing it
func (g *Game) Redraw() error {
	s := g.State
	g.frame.Begin()
	if err := s.Player.Render(g.frame); err != nil {
		return fmt.Errorf("draw player: %w", err)
	}
	for _, proj := range s.Player.Projectiles {
		if err := proj.Render(g.frame); err != nil {
			return fmt.Errorf("draw projectile %s: %w", proj.ShortID(), err)
		}
	}
	for _, e := range s.Enemies {
		if err := e.Render(g.frame); err != nil {
			return fmt.Errorf("draw enemy %s: %w", e.ShortID(), err)
		}
	}
	return nil
}

// Resize changes the framebuffer; the projection picks up the new aspect next frame
func (g *Game) Resize(width, height int) {
	g.frame.Device().Resize(width, height)
	log.Printf("[engine] viewport %dx%d", width, height)
}

// Over reports whether the game has ended
func (g *Game) Over() bool {
	return g.State.GameOver
}

// Device returns the render target
func (g *Game) Device() *gpu.Device {
	return g.frame.Device()
}

// Status returns counters for display
func (g *Game) Status() Status {
	return Status{
		Enemies:     len(g.State.Enemies),
		Projectiles: len(g.State.Player.Projectiles),
		Kills:       g.State.Kills,
		GameOver:    g.State.GameOver,
		Elapsed:     g.round.elapsed(),
	}
}
