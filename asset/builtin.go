package asset

import (
	"image"
	"image/color"
	"math"
)

// Built-in model names, used when no asset file is configured
const (
	BuiltinBox = "builtin:box"
	BuiltinPod = "builtin:pod"
)

// boxFaces lists normal, u axis, v axis per cube face
var boxFaces = [6][3][3]float32{
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

// BoxMesh returns a cube spanning [-1, 1]³ with per-face normals and full-face UVs
func BoxMesh() *Mesh {
	m := &Mesh{
		Name:      BuiltinBox,
		Vertices:  make([]float32, 0, 24*3),
		TexCoords: make([]float32, 0, 24*2),
		Normals:   make([]float32, 0, 24*3),
		Indices:   make([]uint16, 0, 36),
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for f, face := range boxFaces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range corners {
			for axis := 0; axis < 3; axis++ {
				m.Vertices = append(m.Vertices, n[axis]+c[0]*u[axis]+c[1]*v[axis])
			}
			m.TexCoords = append(m.TexCoords, (c[0]+1)/2, (c[1]+1)/2)
			m.Normals = append(m.Normals, n[0], n[1], n[2])
		}
		base := uint16(f * 4)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// PodMesh returns a UV ellipsoid elongated along +Y, the heading-0 direction
func PodMesh(rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	const rx, ry, rz = 0.8, 1.2, 0.8

	count := (rings + 1) * (segments + 1)
	m := &Mesh{
		Name:      BuiltinPod,
		Vertices:  make([]float32, 0, count*3),
		TexCoords: make([]float32, 0, count*2),
		Normals:   make([]float32, 0, count*3),
		Indices:   make([]uint16, 0, rings*segments*6),
	}

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sp, cp := math.Sin(phi), math.Cos(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			st, ct := math.Sin(theta), math.Cos(theta)

			// Unit sphere point, y is the pole axis
			ux, uy, uz := sp*ct, cp, sp*st
			m.Vertices = append(m.Vertices, float32(ux*rx), float32(uy*ry), float32(uz*rz))

			// Ellipsoid normal is the gradient, (x/a², y/b², z/c²) normalized
			nx, ny, nz := ux/rx, uy/ry, uz/rz
			l := math.Sqrt(nx*nx + ny*ny + nz*nz)
			m.Normals = append(m.Normals, float32(nx/l), float32(ny/l), float32(nz/l))

			m.TexCoords = append(m.TexCoords, float32(s)/float32(segments), 1-float32(r)/float32(rings))
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint16(r*stride + s)
			b := a + uint16(stride)
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// CheckerTexture returns a size×size texture of cells×cells alternating squares
func CheckerTexture(name string, size, cells int, a, b color.NRGBA) *Texture {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := max(size/cells, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return &Texture{Name: name, Image: img}
}
