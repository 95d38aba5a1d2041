package engine

import (
	"github.com/lixenwraith/arena3d/entity"
	"github.com/lixenwraith/arena3d/input"
)

// GameState is the complete simulation state, owned by the loop goroutine
type GameState struct {
	Player   *entity.Player
	Enemies  []*entity.Entity
	GameOver bool
	Cursor   input.Cursor
	Kills    int
}

// NewGameState places the player at the origin with no enemies or projectiles
func NewGameState(models *Models) *GameState {
	return &GameState{
		Player: entity.NewPlayer(models.Player, models.Projectile),
	}
}

// compact drops entities marked removed, preserving order
func compact(list []*entity.Entity) []*entity.Entity {
	kept := list[:0]
	for _, e := range list {
		if !e.Removed() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
