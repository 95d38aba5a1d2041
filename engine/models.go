package engine

import (
	"fmt"
	"image/color"
	"log"

	"github.com/lixenwraith/arena3d/asset"
	"github.com/lixenwraith/arena3d/config"
	"github.com/lixenwraith/arena3d/entity"
	"github.com/lixenwraith/arena3d/render"
)

// Built-in texture names and look
const (
	builtinPlayerTexture     = "builtin:player"
	builtinProjectileTexture = "builtin:projectile"
	builtinEnemyTexture      = "builtin:enemy"

	builtinTextureSize  = 64
	builtinTextureCells = 8
	builtinPodRings     = 8
	builtinPodSegments  = 12
)

var (
	playerColors     = [2]color.NRGBA{{R: 0x3c, G: 0xb0, B: 0xe0, A: 0xff}, {R: 0x1a, G: 0x4f, B: 0x78, A: 0xff}}
	projectileColors = [2]color.NRGBA{{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}, {R: 0xff, G: 0x90, B: 0x10, A: 0xff}}
	enemyColors      = [2]color.NRGBA{{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}, {R: 0x60, G: 0x10, B: 0x10, A: 0xff}}
)

// Models holds the three shared entity models
type Models struct {
	Player     *entity.Model
	Projectile *entity.Model
	Enemy      *entity.Model
}

// LoadModels resolves every model from files or built-ins and uploads through cache
// File read and upload failures are returned as asset-stage InitErrors
func LoadModels(cache *render.Cache, assets config.Assets) (*Models, error) {
	player, err := loadModel(cache, "player", assets.Player, func() (*asset.Mesh, *asset.Texture) {
		return asset.PodMesh(builtinPodRings, builtinPodSegments),
			asset.CheckerTexture(builtinPlayerTexture, builtinTextureSize, builtinTextureCells, playerColors[0], playerColors[1])
	})
	if err != nil {
		return nil, err
	}

	projectile, err := loadModel(cache, "projectile", assets.Projectile, func() (*asset.Mesh, *asset.Texture) {
		return asset.PodMesh(builtinPodRings, builtinPodSegments),
			asset.CheckerTexture(builtinProjectileTexture, builtinTextureSize, builtinTextureCells, projectileColors[0], projectileColors[1])
	})
	if err != nil {
		return nil, err
	}

	enemy, err := loadModel(cache, "enemy", assets.Enemy, func() (*asset.Mesh, *asset.Texture) {
		return asset.BoxMesh(),
			asset.CheckerTexture(builtinEnemyTexture, builtinTextureSize, builtinTextureCells, enemyColors[0], enemyColors[1])
	})
	if err != nil {
		return nil, err
	}

	return &Models{Player: player, Projectile: projectile, Enemy: enemy}, nil
}

func loadModel(cache *render.Cache, role string, paths config.ModelAssets, builtin func() (*asset.Mesh, *asset.Texture)) (*entity.Model, error) {
	var (
		mesh *asset.Mesh
		tex  *asset.Texture
		err  error
	)

	if paths.Builtin() {
		mesh, tex = builtin()
	} else {
		if mesh, err = asset.LoadMesh(paths.Mesh); err != nil {
			return nil, NewInitError(StageAsset, fmt.Errorf("%s mesh: %w", role, err))
		}
		if tex, err = asset.LoadTexture(paths.Texture); err != nil {
			return nil, NewInitError(StageAsset, fmt.Errorf("%s texture: %w", role, err))
		}
	}

	res, err := cache.Load(mesh, tex)
	if err != nil {
		return nil, NewInitError(StageAsset, fmt.Errorf("%s: %w", role, err))
	}

	model := entity.NewModel(res)
	b := model.Bounds
	log.Printf("[engine] model %s: %s, bounds x[%.2f,%.2f] y[%.2f,%.2f] z[%.2f,%.2f]",
		role, res.Key(), b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ)
	return model, nil
}
