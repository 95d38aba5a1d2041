package entity

import (
	"math"

	"github.com/lixenwraith/arena3d/parameter"
	"github.com/lixenwraith/arena3d/vmath"
)

// Player sits at the origin, turns toward the cursor and owns its live projectiles
type Player struct {
	Entity
	Projectiles []*Entity

	projectileModel *Model
}

// NewPlayer creates the player at the origin, firing projectiles built from projectileModel
func NewPlayer(model, projectileModel *Model) *Player {
	return &Player{
		Entity:          *newEntity(KindPlayer, model, 0, 0, parameter.PlayerScale, parameter.PlayerSpeed),
		projectileModel: projectileModel,
	}
}

// Fire appends a projectile leaving the origin with the given heading
func (p *Player) Fire(heading float64) *Entity {
	proj := NewProjectile(p.projectileModel, heading)
	p.Projectiles = append(p.Projectiles, proj)
	return proj
}

// NewProjectile creates a projectile at the origin with a fixed heading
func NewProjectile(model *Model, heading float64) *Entity {
	e := newEntity(KindProjectile, model, 0, 0, parameter.ProjectileScale, parameter.ProjectileSpeed)
	e.Heading = heading
	return e
}

// NewEnemy creates an enemy at a random spawn point, facing the origin
func NewEnemy(model *Model, rng *vmath.FastRand) *Entity {
	x, y := SpawnPoint(rng)
	return NewEnemyAt(model, x, y)
}

// NewEnemyAt creates an enemy at (x, y), facing the origin; the heading never changes afterwards
func NewEnemyAt(model *Model, x, y float64) *Entity {
	e := newEntity(KindEnemy, model, x, y, parameter.EnemyScale, parameter.EnemySpeed)
	e.Heading = vmath.HeadingToOrigin(x, y)
	return e
}

// SpawnPoint picks a point on the spawn square edge
// One axis, chosen 50/50, is pinned to EnemySpawnMin or EnemySpawnMax; the other is an
// integer drawn uniformly from [EnemySpawnMin, EnemySpawnMax]. Corners are reachable.
// Draw order: axis, free coordinate, pinned side.
func SpawnPoint(rng *vmath.FastRand) (x, y float64) {
	lo, hi := float64(parameter.EnemySpawnMin), float64(parameter.EnemySpawnMax)

	free := func() float64 {
		return math.Floor(rng.Float64()*((hi-lo)+1) + lo)
	}
	pinned := func() float64 {
		if rng.Float64() < 0.5 {
			return hi
		}
		return lo
	}

	if rng.Float64() < 0.5 {
		x = free()
		y = pinned()
	} else {
		y = free()
		x = pinned()
	}
	return x, y
}
