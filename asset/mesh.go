package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
)

var (
	ErrEmptyMesh     = errors.New("mesh has no vertices")
	ErrIndexRange    = errors.New("mesh index out of range")
	ErrAttribLength  = errors.New("mesh attribute length mismatch")
	ErrTooManyVertex = errors.New("mesh exceeds 16-bit index range")
)

// Mesh is immutable vertex data shared by every entity of one model
// Vertices and Normals are xyz triples, TexCoords uv pairs, one tuple per vertex
// Indices is the flattened triangle list
type Mesh struct {
	Name      string
	Vertices  []float32
	TexCoords []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of position triples
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Validate checks attribute lengths against the vertex count and every index against it
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%s: %w", m.Name, ErrEmptyMesh)
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%s: vertices %d not a multiple of 3: %w", m.Name, len(m.Vertices), ErrAttribLength)
	}
	n := m.VertexCount()
	if n > math.MaxUint16+1 {
		return fmt.Errorf("%s: %d vertices: %w", m.Name, n, ErrTooManyVertex)
	}
	if len(m.TexCoords) != n*2 {
		return fmt.Errorf("%s: %d texcoords for %d vertices: %w", m.Name, len(m.TexCoords), n, ErrAttribLength)
	}
	if len(m.Normals) != n*3 {
		return fmt.Errorf("%s: %d normals for %d vertices: %w", m.Name, len(m.Normals), n, ErrAttribLength)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%s: %d indices not a triangle list: %w", m.Name, len(m.Indices), ErrAttribLength)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%s: index[%d]=%d, vertex count %d: %w", m.Name, i, idx, n, ErrIndexRange)
		}
	}
	return nil
}

// sceneFile mirrors the assimp2json layout, only the fields the game reads
type sceneFile struct {
	Meshes []struct {
		Vertices  []float32   `json:"vertices"`
		Normals   []float32   `json:"normals"`
		TexCoords [][]float32 `json:"texturecoords"`
		Faces     [][]int     `json:"faces"`
	} `json:"meshes"`
}

// ParseMesh decodes meshes[0] of a scene description and validates it
// Face groups are flattened in order into one index list
func ParseMesh(name string, data []byte) (*Mesh, error) {
	var scene sceneFile
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", name, err)
	}
	if len(scene.Meshes) == 0 {
		return nil, fmt.Errorf("%s: no meshes: %w", name, ErrEmptyMesh)
	}
	src := scene.Meshes[0]

	m := &Mesh{
		Name:     name,
		Vertices: src.Vertices,
		Normals:  src.Normals,
	}
	if len(src.TexCoords) > 0 {
		m.TexCoords = src.TexCoords[0]
	}

	total := 0
	for _, f := range src.Faces {
		total += len(f)
	}
	m.Indices = make([]uint16, 0, total)
	for fi, f := range src.Faces {
		for _, idx := range f {
			if idx < 0 || idx > math.MaxUint16 {
				return nil, fmt.Errorf("%s: face %d index %d: %w", name, fi, idx, ErrIndexRange)
			}
			m.Indices = append(m.Indices, uint16(idx))
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMesh reads and parses a mesh description file, named by its absolute path
func LoadMesh(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	m, err := ParseMesh(SourceName(path), data)
	if err != nil {
		return nil, err
	}
	log.Printf("[asset] mesh %s: %d vertices, %d triangles", m.Name, m.VertexCount(), len(m.Indices)/3)
	return m, nil
}

// SourceName is the identity of a file-backed asset: its cleaned absolute path
// Two files sharing a base name in different directories stay distinct
func SourceName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
