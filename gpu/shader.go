package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrCompile = errors.New("shader compile failed")
	ErrLink    = errors.New("program link failed")
)

// ShaderKind identifies the pipeline stage of a shader
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// AttribDecl declares one per-vertex input of Size floats (1..4)
// Missing components read as (0, 0, 0, 1)
type AttribDecl struct {
	Name string
	Size int
}

// VertexStage transforms one vertex
// attribs arrive in Attributes() order, uniforms in Uniforms() order
// Shade writes Varyings() floats into out and returns the clip-space position
type VertexStage interface {
	Attributes() []AttribDecl
	Uniforms() []string
	Varyings() int
	Shade(attribs []mgl32.Vec4, uniforms []mgl32.Mat4, out []float32) mgl32.Vec4
}

// FragmentStage colors one covered pixel from interpolated varyings
// samplers arrive in Samplers() order
type FragmentStage interface {
	Varyings() int
	Samplers() []string
	Shade(varyings []float32, samplers []Sampler) mgl32.Vec4
}

// Sampler reads a filtered texel
type Sampler interface {
	Sample(u, v float32) mgl32.Vec4
}

// Shader is a validated pipeline stage
type Shader struct {
	kind     ShaderKind
	vertex   VertexStage
	fragment FragmentStage
}

// Kind returns the shader stage
func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// CompileVertex validates a vertex stage's declarations
func CompileVertex(vs VertexStage) (*Shader, error) {
	if vs == nil {
		return nil, fmt.Errorf("vertex: nil stage: %w", ErrCompile)
	}
	seen := make(map[string]bool)
	for _, a := range vs.Attributes() {
		if a.Name == "" {
			return nil, fmt.Errorf("vertex: unnamed attribute: %w", ErrCompile)
		}
		if a.Size < 1 || a.Size > 4 {
			return nil, fmt.Errorf("vertex: attribute %q size %d: %w", a.Name, a.Size, ErrCompile)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("vertex: duplicate attribute %q: %w", a.Name, ErrCompile)
		}
		seen[a.Name] = true
	}
	if err := checkNames("vertex", "uniform", vs.Uniforms()); err != nil {
		return nil, err
	}
	if vs.Varyings() < 0 {
		return nil, fmt.Errorf("vertex: negative varying count: %w", ErrCompile)
	}
	return &Shader{kind: VertexShader, vertex: vs}, nil
}

// CompileFragment validates a fragment stage's declarations
func CompileFragment(fs FragmentStage) (*Shader, error) {
	if fs == nil {
		return nil, fmt.Errorf("fragment: nil stage: %w", ErrCompile)
	}
	if err := checkNames("fragment", "sampler", fs.Samplers()); err != nil {
		return nil, err
	}
	if fs.Varyings() < 0 {
		return nil, fmt.Errorf("fragment: negative varying count: %w", ErrCompile)
	}
	return &Shader{kind: FragmentShader, fragment: fs}, nil
}

func checkNames(stage, what string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%s: unnamed %s: %w", stage, what, ErrCompile)
		}
		if seen[n] {
			return fmt.Errorf("%s: duplicate %s %q: %w", stage, what, n, ErrCompile)
		}
		seen[n] = true
	}
	return nil
}

// Program is a linked vertex + fragment pair with resolved locations
type Program struct {
	id       uint32
	vertex   VertexStage
	fragment FragmentStage

	attribs  []AttribDecl
	varyings int

	uniformNames []string
	uniforms     []mgl32.Mat4

	samplerNames []string
	samplerUnits []int
}

// ID returns the device-unique handle
func (p *Program) ID() uint32 {
	return p.id
}

// LinkProgram joins a vertex and a fragment shader
// The vertex stage must produce exactly the varyings the fragment stage consumes
func (d *Device) LinkProgram(vs, fs *Shader) (*Program, error) {
	if vs == nil || vs.kind != VertexShader {
		return nil, fmt.Errorf("first shader is not a vertex shader: %w", ErrLink)
	}
	if fs == nil || fs.kind != FragmentShader {
		return nil, fmt.Errorf("second shader is not a fragment shader: %w", ErrLink)
	}
	if vs.vertex.Varyings() != fs.fragment.Varyings() {
		return nil, fmt.Errorf("varyings mismatch: vertex writes %d, fragment reads %d: %w",
			vs.vertex.Varyings(), fs.fragment.Varyings(), ErrLink)
	}

	p := &Program{
		id:           d.nextHandle(),
		vertex:       vs.vertex,
		fragment:     fs.fragment,
		attribs:      vs.vertex.Attributes(),
		varyings:     vs.vertex.Varyings(),
		uniformNames: vs.vertex.Uniforms(),
		samplerNames: fs.fragment.Samplers(),
	}
	p.uniforms = make([]mgl32.Mat4, len(p.uniformNames))
	for i := range p.uniforms {
		p.uniforms[i] = mgl32.Ident4()
	}
	p.samplerUnits = make([]int, len(p.samplerNames))
	return p, nil
}

// AttribLocation returns the attribute slot for name, or -1
func (p *Program) AttribLocation(name string) int {
	for i, a := range p.attribs {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// UniformLocation returns the matrix uniform slot for name, or -1
func (p *Program) UniformLocation(name string) int {
	for i, n := range p.uniformNames {
		if n == name {
			return i
		}
	}
	return -1
}

// SamplerLocation returns the sampler slot for name, or -1
func (p *Program) SamplerLocation(name string) int {
	for i, n := range p.samplerNames {
		if n == name {
			return i
		}
	}
	return -1
}
