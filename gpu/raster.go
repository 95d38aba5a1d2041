package gpu

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the primitive assembly mode
type Mode uint8

const (
	Triangles Mode = iota
)

// minClipW rejects vertices at or behind the eye plane
const minClipW = 1e-6

type drawScratch struct {
	clip     []mgl32.Vec4
	vary     []float32
	shaded   []bool
	attribs  []mgl32.Vec4
	frag     []float32
	samplers []Sampler
}

// DrawElements rasterizes count indices from the bound element buffer starting at offset
// Every referenced index is validated before any pixel is written
func (d *Device) DrawElements(mode Mode, count, offset int) error {
	if mode != Triangles {
		return fmt.Errorf("mode %d: %w", mode, ErrLocation)
	}
	p := d.program
	if p == nil {
		return ErrNoProgram
	}
	if d.elements == nil {
		return ErrNoElements
	}
	if count < 0 || offset < 0 || offset+count > len(d.elements.indices) {
		return fmt.Errorf("range [%d, %d) of %d indices: %w", offset, offset+count, len(d.elements.indices), ErrIndexRange)
	}

	limit := math.MaxInt
	for i, decl := range p.attribs {
		b := d.attribs[i]
		if b.buf == nil {
			return fmt.Errorf("%q: %w", decl.Name, ErrAttribUnbound)
		}
		limit = min(limit, len(b.buf.floats)/b.size)
	}

	indices := d.elements.indices[offset : offset+count]
	for i, idx := range indices {
		if int(idx) >= limit {
			return fmt.Errorf("element %d = %d, %d vertices: %w", offset+i, idx, limit, ErrIndexRange)
		}
	}

	s := &d.scratch
	s.samplers = s.samplers[:0]
	for i, unit := range p.samplerUnits {
		t := d.units[unit]
		if t == nil {
			return fmt.Errorf("%q on unit %d: %w", p.samplerNames[i], unit, ErrSamplerUnbound)
		}
		s.samplers = append(s.samplers, t)
	}

	if len(p.attribs) == 0 {
		limit = 0
		for _, idx := range indices {
			limit = max(limit, int(idx)+1)
		}
	}
	d.prepareScratch(p, limit)

	for t := 0; t+2 < len(indices); t += 3 {
		v := [3]int{int(indices[t]), int(indices[t+1]), int(indices[t+2])}
		for _, vi := range v {
			if !s.shaded[vi] {
				d.shadeVertex(p, vi)
			}
		}
		d.rasterize(p, v)
	}

	d.stats.DrawCalls++
	return nil
}

func (d *Device) prepareScratch(p *Program, vertices int) {
	s := &d.scratch
	if cap(s.clip) < vertices {
		s.clip = make([]mgl32.Vec4, vertices)
		s.shaded = make([]bool, vertices)
	}
	s.clip = s.clip[:vertices]
	s.shaded = s.shaded[:vertices]
	clear(s.shaded)

	n := vertices * p.varyings
	if cap(s.vary) < n {
		s.vary = make([]float32, n)
	}
	s.vary = s.vary[:n]

	if cap(s.attribs) < len(p.attribs) {
		s.attribs = make([]mgl32.Vec4, len(p.attribs))
	}
	s.attribs = s.attribs[:len(p.attribs)]

	if cap(s.frag) < p.varyings {
		s.frag = make([]float32, p.varyings)
	}
	s.frag = s.frag[:p.varyings]
}

func (d *Device) shadeVertex(p *Program, vi int) {
	s := &d.scratch
	for i := range p.attribs {
		b := d.attribs[i]
		a := mgl32.Vec4{0, 0, 0, 1}
		base := vi * b.size
		for c := 0; c < b.size; c++ {
			a[c] = b.buf.floats[base+c]
		}
		s.attribs[i] = a
	}
	out := s.vary[vi*p.varyings : (vi+1)*p.varyings]
	s.clip[vi] = p.vertex.Shade(s.attribs, p.uniforms, out)
	s.shaded[vi] = true
}

// edge is twice the signed area of (a, b, c)
func edge(ax, ay, bx, by, cx, cy float64) float64 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func (d *Device) rasterize(p *Program, v [3]int) {
	s := &d.scratch
	var sx, sy, sz, invW [3]float64

	for k, vi := range v {
		c := s.clip[vi]
		w := float64(c.W())
		if w <= minClipW {
			return
		}
		invW[k] = 1 / w
		sx[k] = (float64(c.X())*invW[k] + 1) * 0.5 * float64(d.width)
		sy[k] = (1 - float64(c.Y())*invW[k]) * 0.5 * float64(d.height)
		sz[k] = (float64(c.Z())*invW[k] + 1) * 0.5
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 || math.IsNaN(area) {
		return
	}

	minX := max(0, int(math.Floor(min(sx[0], sx[1], sx[2]))))
	maxX := min(d.width-1, int(math.Ceil(max(sx[0], sx[1], sx[2]))))
	minY := max(0, int(math.Floor(min(sy[0], sy[1], sy[2]))))
	maxY := min(d.height-1, int(math.Ceil(max(sy[0], sy[1], sy[2]))))
	if minX > maxX || minY > maxY {
		return
	}

	nv := p.varyings
	v0 := s.vary[v[0]*nv : (v[0]+1)*nv]
	v1 := s.vary[v[1]*nv : (v[1]+1)*nv]
	v2 := s.vary[v[2]*nv : (v[2]+1)*nv]

	invArea := 1 / area
	pix := d.color.Pix
	stride := d.color.Stride

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			b0 := edge(sx[1], sy[1], sx[2], sy[2], px, py) * invArea
			b1 := edge(sx[2], sy[2], sx[0], sy[0], px, py) * invArea
			b2 := edge(sx[0], sy[0], sx[1], sy[1], px, py) * invArea
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*sz[0] + b1*sz[1] + b2*sz[2]
			if z < 0 || z > 1 {
				continue
			}
			di := y*d.width + x
			if d.depthTest && float32(z) >= d.depth[di] {
				continue
			}

			// Perspective-correct weights
			q0, q1, q2 := b0*invW[0], b1*invW[1], b2*invW[2]
			qs := 1 / (q0 + q1 + q2)
			w0, w1, w2 := float32(q0*qs), float32(q1*qs), float32(q2*qs)
			for j := 0; j < nv; j++ {
				s.frag[j] = w0*v0[j] + w1*v1[j] + w2*v2[j]
			}

			c := toRGBA8(p.fragment.Shade(s.frag, s.samplers))
			o := y*stride + x*4
			pix[o], pix[o+1], pix[o+2], pix[o+3] = c[0], c[1], c[2], c[3]
			if d.depthTest {
				d.depth[di] = float32(z)
			}
			d.stats.Fragments++
		}
	}
	d.stats.Triangles++
}
