package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/arena3d/asset"
	"github.com/lixenwraith/arena3d/gpu"
)

// textureOptions are the sampler settings every model texture is uploaded with
var textureOptions = gpu.TextureOptions{
	Wrap:   gpu.WrapClampToEdge,
	Filter: gpu.FilterLinear,
	FlipY:  true,
}

// MeshResource is the device-resident form of one mesh/texture pair
// Shared by every entity drawn with that pair; only the world matrix varies per draw
type MeshResource struct {
	key     Key
	mesh    *asset.Mesh
	program *LitProgram

	positions *gpu.Buffer
	texCoords *gpu.Buffer
	normals   *gpu.Buffer
	indices   *gpu.Buffer
	texture   *gpu.Texture
}

// LoadMeshResource validates mesh data and uploads its four buffers and texture once
func LoadMeshResource(dev *gpu.Device, program *LitProgram, mesh *asset.Mesh, tex *asset.Texture) (*MeshResource, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	t, err := dev.CreateTexture(tex.Image, textureOptions)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", tex.Name, err)
	}

	return &MeshResource{
		key:       Key{Mesh: mesh.Name, Texture: tex.Name},
		mesh:      mesh,
		program:   program,
		positions: dev.CreateVertexBuffer(mesh.Vertices),
		indices:   dev.CreateIndexBuffer(mesh.Indices),
		texCoords: dev.CreateVertexBuffer(mesh.TexCoords),
		normals:   dev.CreateVertexBuffer(mesh.Normals),
		texture:   t,
	}, nil
}

// Key returns the mesh/texture identity of the resource
func (r *MeshResource) Key() Key {
	return r.key
}

// Mesh returns the source mesh data
func (r *MeshResource) Mesh() *asset.Mesh {
	return r.mesh
}

// Bind makes the resource's program, attributes, indices and texture current
func (r *MeshResource) Bind(dev *gpu.Device) error {
	p := r.program
	dev.UseProgram(p.Program)

	if err := dev.VertexAttribPointer(p.locPosition, r.positions, 3); err != nil {
		return err
	}
	if err := dev.VertexAttribPointer(p.locTexCoord, r.texCoords, 2); err != nil {
		return err
	}
	if err := dev.VertexAttribPointer(p.locNormal, r.normals, 3); err != nil {
		return err
	}
	if err := dev.BindElementBuffer(r.indices); err != nil {
		return err
	}

	if err := dev.ActiveTexture(0); err != nil {
		return err
	}
	dev.BindTexture(r.texture)
	return dev.UniformSampler(p.locSampler, 0)
}

// Draw binds the resource and issues one indexed triangle draw with the given matrices
func (r *MeshResource) Draw(dev *gpu.Device, world, view, proj mgl32.Mat4) error {
	if err := r.Bind(dev); err != nil {
		return fmt.Errorf("bind %s: %w", r.key, err)
	}
	p := r.program
	if err := dev.UniformMatrix4(p.locWorld, world); err != nil {
		return err
	}
	if err := dev.UniformMatrix4(p.locView, view); err != nil {
		return err
	}
	if err := dev.UniformMatrix4(p.locProj, proj); err != nil {
		return err
	}
	if err := dev.DrawElements(gpu.Triangles, len(r.mesh.Indices), 0); err != nil {
		return fmt.Errorf("draw %s: %w", r.key, err)
	}
	return nil
}
