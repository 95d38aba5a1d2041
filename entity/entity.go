package entity

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/arena3d/asset"
	"github.com/lixenwraith/arena3d/physics"
	"github.com/lixenwraith/arena3d/render"
	"github.com/lixenwraith/arena3d/vmath"
)

// Kind tags the entity variant
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Model is the shared, immutable part of every entity of one type
// Bounds are computed once from the mesh when the model is created
type Model struct {
	Mesh     *asset.Mesh
	Bounds   physics.Box
	Resource *render.MeshResource
}

// NewModel wraps a loaded render resource and caches its local bounds
func NewModel(res *render.MeshResource) *Model {
	mesh := res.Mesh()
	return &Model{
		Mesh:     mesh,
		Bounds:   physics.BoundingBox(mesh.Vertices),
		Resource: res,
	}
}

// Entity is per-instance simulation state; z is fixed at 0
type Entity struct {
	ID      uuid.UUID
	Kind    Kind
	X, Y    float64
	Heading float64
	Scale   float64
	Speed   float64
	Model   *Model

	removed bool
}

func newEntity(kind Kind, model *Model, x, y, scale, speed float64) *Entity {
	return &Entity{
		ID:    uuid.New(),
		Kind:  kind,
		X:     x,
		Y:     y,
		Scale: scale,
		Speed: speed,
		Model: model,
	}
}

// Advance moves the entity by Speed along its heading
func (e *Entity) Advance() {
	dx, dy := vmath.HeadingDirection(e.Heading)
	e.X += e.Speed * dx
	e.Y += e.Speed * dy
}

// SetHeading overwrites the heading in radians
func (e *Entity) SetHeading(angle float64) {
	e.Heading = angle
}

// Render draws the entity's shared resource with its own transform
func (e *Entity) Render(f *render.Frame) error {
	return f.Draw(e.Model.Resource, e.X, e.Y, e.Heading, e.Scale)
}

// MarkRemoved flags the entity for compaction at the end of the frame
func (e *Entity) MarkRemoved() {
	e.removed = true
}

// Removed reports whether the entity is flagged for compaction
func (e *Entity) Removed() bool {
	return e.removed
}

// ShortID is the first block of the ID, for logs
func (e *Entity) ShortID() string {
	return e.ID.String()[:8]
}

// Position implements physics.Body
func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}

// ScaleFactor implements physics.Body
func (e *Entity) ScaleFactor() float64 {
	return e.Scale
}

// LocalBounds implements physics.Body
func (e *Entity) LocalBounds() physics.Box {
	return e.Model.Bounds
}
