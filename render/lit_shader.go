package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/arena3d/gpu"
	"github.com/lixenwraith/arena3d/parameter"
	"github.com/lixenwraith/arena3d/vmath"
)

// Attribute, uniform and sampler names of the lit-textured program
const (
	AttribPosition  = "position"
	AttribTexCoord  = "textCoord"
	AttribNormal    = "normal"
	UniformWorld    = "worldMatrix"
	UniformView     = "viewMatrix"
	UniformProj     = "projectionMatrix"
	SamplerDiffuse  = "sampler"
	litVaryingCount = 5 // uv.xy, normal.xyz
)

var sunDirection = vmath.SunDirection()

// litVertex passes UV through, rotates the normal into world space and projects the position
type litVertex struct{}

func (litVertex) Attributes() []gpu.AttribDecl {
	return []gpu.AttribDecl{
		{Name: AttribPosition, Size: 3},
		{Name: AttribTexCoord, Size: 2},
		{Name: AttribNormal, Size: 3},
	}
}

func (litVertex) Uniforms() []string {
	return []string{UniformWorld, UniformView, UniformProj}
}

func (litVertex) Varyings() int { return litVaryingCount }

func (litVertex) Shade(attribs []mgl32.Vec4, uniforms []mgl32.Mat4, out []float32) mgl32.Vec4 {
	world, view, proj := uniforms[0], uniforms[1], uniforms[2]

	uv := attribs[1]
	out[0], out[1] = uv[0], uv[1]

	n := attribs[2]
	wn := world.Mul4x1(mgl32.Vec4{n[0], n[1], n[2], 0})
	out[2], out[3], out[4] = wn[0], wn[1], wn[2]

	return proj.Mul4(view).Mul4(world).Mul4x1(attribs[0])
}

// litFragment applies ambient + sun + diffuse to the texel RGB, alpha untouched
// The interpolated normal is used as-is, without renormalization
type litFragment struct{}

func (litFragment) Varyings() int { return litVaryingCount }

func (litFragment) Samplers() []string { return []string{SamplerDiffuse} }

func (litFragment) Shade(v []float32, samplers []gpu.Sampler) mgl32.Vec4 {
	texel := samplers[0].Sample(v[0], v[1])

	diffuse := v[2]*sunDirection[0] + v[3]*sunDirection[1] + v[4]*sunDirection[2]
	if diffuse < 0 {
		diffuse = 0
	}
	light := float32(parameter.AmbientIntensity+parameter.SunIntensity) + diffuse

	return mgl32.Vec4{texel[0] * light, texel[1] * light, texel[2] * light, texel[3]}
}

// LitProgram is the linked lit-textured program with resolved locations
type LitProgram struct {
	Program *gpu.Program

	locPosition int
	locTexCoord int
	locNormal   int
	locWorld    int
	locView     int
	locProj     int
	locSampler  int
}

// NewLitProgram compiles and links the lit-textured shader pair on dev
func NewLitProgram(dev *gpu.Device) (*LitProgram, error) {
	return newProgram(dev, litVertex{}, litFragment{})
}

func newProgram(dev *gpu.Device, vs gpu.VertexStage, fs gpu.FragmentStage) (*LitProgram, error) {
	vsh, err := gpu.CompileVertex(vs)
	if err != nil {
		return nil, err
	}
	fsh, err := gpu.CompileFragment(fs)
	if err != nil {
		return nil, err
	}
	p, err := dev.LinkProgram(vsh, fsh)
	if err != nil {
		return nil, err
	}

	lp := &LitProgram{
		Program:     p,
		locPosition: p.AttribLocation(AttribPosition),
		locTexCoord: p.AttribLocation(AttribTexCoord),
		locNormal:   p.AttribLocation(AttribNormal),
		locWorld:    p.UniformLocation(UniformWorld),
		locView:     p.UniformLocation(UniformView),
		locProj:     p.UniformLocation(UniformProj),
		locSampler:  p.SamplerLocation(SamplerDiffuse),
	}
	for name, loc := range map[string]int{
		AttribPosition: lp.locPosition,
		AttribTexCoord: lp.locTexCoord,
		AttribNormal:   lp.locNormal,
		UniformWorld:   lp.locWorld,
		UniformView:    lp.locView,
		UniformProj:    lp.locProj,
		SamplerDiffuse: lp.locSampler,
	} {
		if loc < 0 {
			return nil, fmt.Errorf("%q not found: %w", name, gpu.ErrLink)
		}
	}
	return lp, nil
}
