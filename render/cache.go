package render

import (
	"fmt"
	"log"

	"github.com/lixenwraith/arena3d/asset"
	"github.com/lixenwraith/arena3d/gpu"
)

// Key identifies a mesh/texture pair
type Key struct {
	Mesh    string
	Texture string
}

func (k Key) String() string {
	return k.Mesh + "+" + k.Texture
}

// Cache owns one lit program and one MeshResource per Key
type Cache struct {
	dev       *gpu.Device
	program   *LitProgram
	resources map[Key]*MeshResource
}

// NewCache compiles the shared program; failure is fatal to startup
func NewCache(dev *gpu.Device) (*Cache, error) {
	p, err := NewLitProgram(dev)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	return &Cache{
		dev:       dev,
		program:   p,
		resources: make(map[Key]*MeshResource),
	}, nil
}

// Load returns the resource for mesh/tex, uploading on first use
func (c *Cache) Load(mesh *asset.Mesh, tex *asset.Texture) (*MeshResource, error) {
	key := Key{Mesh: mesh.Name, Texture: tex.Name}
	if r, ok := c.resources[key]; ok {
		log.Printf("[render] resource %s: cached", key)
		return r, nil
	}

	r, err := LoadMeshResource(c.dev, c.program, mesh, tex)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", key, err)
	}
	c.resources[key] = r
	log.Printf("[render] resource %s: uploaded", key)
	return r, nil
}

// Len returns the number of distinct uploaded resources
func (c *Cache) Len() int {
	return len(c.resources)
}

// Device returns the device resources are uploaded to
func (c *Cache) Device() *gpu.Device {
	return c.dev
}
