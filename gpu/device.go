package gpu

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoProgram      = errors.New("no program in use")
	ErrNoElements     = errors.New("no element buffer bound")
	ErrAttribUnbound  = errors.New("attribute has no buffer")
	ErrIndexRange     = errors.New("index out of range")
	ErrLocation       = errors.New("invalid location")
	ErrTextureUnit    = errors.New("texture unit out of range")
	ErrSamplerUnbound = errors.New("sampler unit has no texture")
	ErrEmptyTexture   = errors.New("texture has no pixels")
	ErrNotVertexData  = errors.New("buffer holds no vertex data")
	ErrNotIndexData   = errors.New("buffer holds no index data")
)

// MaxTextureUnits is the number of texture binding points
const MaxTextureUnits = 8

// ClearMask selects buffers for Clear
type ClearMask uint8

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Stats counts device work since the last color clear, plus upload totals
type Stats struct {
	DrawCalls    int
	Triangles    int
	Fragments    int
	BufferBytes  int
	TextureBytes int
}

type attribBinding struct {
	buf  *Buffer
	size int
}

// Device is a software rasterizer with GL-style bind state
type Device struct {
	width, height int
	color         *image.RGBA
	depth         []float32

	clearColor mgl32.Vec4
	depthTest  bool

	program  *Program
	attribs  []attribBinding
	elements *Buffer

	activeUnit int
	units      [MaxTextureUnits]*Texture

	handles uint32
	stats   Stats

	// Per-draw scratch, reused across calls
	scratch drawScratch
}

// NewDevice creates a device with a width×height color and depth target
func NewDevice(width, height int) *Device {
	d := &Device{clearColor: mgl32.Vec4{0, 0, 0, 1}}
	d.Resize(width, height)
	return d
}

// Resize reallocates render targets, contents are cleared
func (d *Device) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	d.width, d.height = width, height
	d.color = image.NewRGBA(image.Rect(0, 0, width, height))
	d.depth = make([]float32, width*height)
	d.Clear(ColorBufferBit | DepthBufferBit)
}

// Size returns render target dimensions
func (d *Device) Size() (width, height int) {
	return d.width, d.height
}

// Aspect returns width/height of the render target
func (d *Device) Aspect() float64 {
	return float64(d.width) / float64(d.height)
}

// Framebuffer returns the color target, valid until the next Resize
func (d *Device) Framebuffer() *image.RGBA {
	return d.color
}

// Stats returns counters for the current frame
func (d *Device) Stats() Stats {
	return d.stats
}

// SetClearColor sets the color used by Clear
func (d *Device) SetClearColor(r, g, b, a float32) {
	d.clearColor = mgl32.Vec4{r, g, b, a}
}

// SetDepthTest enables or disables the less-than depth test
func (d *Device) SetDepthTest(enabled bool) {
	d.depthTest = enabled
}

// Clear resets the selected buffers; clearing color also resets frame counters
func (d *Device) Clear(mask ClearMask) {
	if mask&ColorBufferBit != 0 {
		c := toRGBA8(d.clearColor)
		pix := d.color.Pix
		if len(pix) >= 4 {
			pix[0], pix[1], pix[2], pix[3] = c[0], c[1], c[2], c[3]
			for filled := 4; filled < len(pix); filled *= 2 {
				copy(pix[filled:], pix[:filled])
			}
		}
		d.stats.DrawCalls, d.stats.Triangles, d.stats.Fragments = 0, 0, 0
	}
	if mask&DepthBufferBit != 0 && len(d.depth) > 0 {
		d.depth[0] = 1
		for filled := 1; filled < len(d.depth); filled *= 2 {
			copy(d.depth[filled:], d.depth[:filled])
		}
	}
}

// UseProgram makes p current; attribute bindings are reset to its slot count
func (d *Device) UseProgram(p *Program) {
	d.program = p
	if p == nil {
		d.attribs = d.attribs[:0]
		return
	}
	if cap(d.attribs) < len(p.attribs) {
		d.attribs = make([]attribBinding, len(p.attribs))
	}
	d.attribs = d.attribs[:len(p.attribs)]
}

// VertexAttribPointer points attribute slot loc of the current program at buf
func (d *Device) VertexAttribPointer(loc int, buf *Buffer, size int) error {
	if d.program == nil {
		return ErrNoProgram
	}
	if loc < 0 || loc >= len(d.attribs) {
		return fmt.Errorf("attribute %d: %w", loc, ErrLocation)
	}
	if buf == nil || buf.floats == nil {
		return fmt.Errorf("attribute %d: %w", loc, ErrNotVertexData)
	}
	if size < 1 || size > 4 {
		return fmt.Errorf("attribute %d size %d: %w", loc, size, ErrLocation)
	}
	d.attribs[loc] = attribBinding{buf: buf, size: size}
	return nil
}

// BindElementBuffer sets the index source for DrawElements
func (d *Device) BindElementBuffer(buf *Buffer) error {
	if buf != nil && buf.indices == nil {
		return ErrNotIndexData
	}
	d.elements = buf
	return nil
}

// UniformMatrix4 sets matrix uniform loc of the current program
func (d *Device) UniformMatrix4(loc int, m mgl32.Mat4) error {
	if d.program == nil {
		return ErrNoProgram
	}
	if loc < 0 || loc >= len(d.program.uniforms) {
		return fmt.Errorf("uniform %d: %w", loc, ErrLocation)
	}
	d.program.uniforms[loc] = m
	return nil
}

// UniformSampler assigns a texture unit to sampler loc of the current program
func (d *Device) UniformSampler(loc, unit int) error {
	if d.program == nil {
		return ErrNoProgram
	}
	if loc < 0 || loc >= len(d.program.samplerUnits) {
		return fmt.Errorf("sampler %d: %w", loc, ErrLocation)
	}
	if unit < 0 || unit >= MaxTextureUnits {
		return fmt.Errorf("unit %d: %w", unit, ErrTextureUnit)
	}
	d.program.samplerUnits[loc] = unit
	return nil
}

// ActiveTexture selects the unit BindTexture writes to
func (d *Device) ActiveTexture(unit int) error {
	if unit < 0 || unit >= MaxTextureUnits {
		return fmt.Errorf("unit %d: %w", unit, ErrTextureUnit)
	}
	d.activeUnit = unit
	return nil
}

// BindTexture binds t to the active unit
func (d *Device) BindTexture(t *Texture) {
	d.units[d.activeUnit] = t
}

func (d *Device) nextHandle() uint32 {
	d.handles++
	return d.handles
}

func toRGBA8(c mgl32.Vec4) [4]uint8 {
	return [4]uint8{unorm8(c[0]), unorm8(c[1]), unorm8(c[2]), unorm8(c[3])}
}

func unorm8(v float32) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
