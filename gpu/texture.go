package gpu

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Wrap selects texture coordinate handling outside [0, 1]
type Wrap uint8

const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
)

// Filter selects texel filtering
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

// TextureOptions mirrors the sampler parameters set at upload
type TextureOptions struct {
	Wrap   Wrap
	Filter Filter
	// FlipY stores rows bottom-up so v = 0 addresses the last image row
	FlipY bool
}

// Texture is a device-resident RGBA texture with normalized float texels
type Texture struct {
	id     uint32
	width  int
	height int
	texels []mgl32.Vec4
	opts   TextureOptions
}

// ID returns the device-unique handle
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns texture dimensions
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// CreateTexture uploads a non-premultiplied RGBA image
func (d *Device) CreateTexture(img *image.NRGBA, opts TextureOptions) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyTexture
	}

	t := &Texture{
		id:     d.nextHandle(),
		width:  w,
		height: h,
		texels: make([]mgl32.Vec4, w*h),
		opts:   opts,
	}

	const inv = 1.0 / 255.0
	for y := 0; y < h; y++ {
		row := y
		if opts.FlipY {
			row = h - 1 - y
		}
		for x := 0; x < w; x++ {
			p := img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y):]
			t.texels[row*w+x] = mgl32.Vec4{
				float32(p[0]) * inv,
				float32(p[1]) * inv,
				float32(p[2]) * inv,
				float32(p[3]) * inv,
			}
		}
	}

	d.stats.TextureBytes += w * h * 4
	return t, nil
}

// Sample returns the filtered texel at (u, v)
func (t *Texture) Sample(u, v float32) mgl32.Vec4 {
	if t.opts.Filter == FilterNearest {
		x := t.texel(math.Floor(float64(u*float32(t.width))), t.width)
		y := t.texel(math.Floor(float64(v*float32(t.height))), t.height)
		return t.texels[y*t.width+x]
	}

	// Texel centers sit at half-integers
	fx := float64(u*float32(t.width)) - 0.5
	fy := float64(v*float32(t.height)) - 0.5
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	ax, ay := fraction(fx, x0f), fraction(fy, y0f)

	x0 := t.texel(x0f, t.width)
	x1 := t.texel(x0f+1, t.width)
	y0 := t.texel(y0f, t.height)
	y1 := t.texel(y0f+1, t.height)

	c00 := t.texels[y0*t.width+x0]
	c10 := t.texels[y0*t.width+x1]
	c01 := t.texels[y1*t.width+x0]
	c11 := t.texels[y1*t.width+x1]

	top := c00.Mul(1 - ax).Add(c10.Mul(ax))
	bottom := c01.Mul(1 - ax).Add(c11.Mul(ax))
	return top.Mul(1 - ay).Add(bottom.Mul(ay))
}

// texel maps an integral texel coordinate into [0, n) by the wrap mode
// The float is brought into range before conversion; NaN maps to texel 0
func (t *Texture) texel(f float64, n int) int {
	if t.opts.Wrap == WrapRepeat {
		f = math.Mod(f, float64(n))
		if f < 0 {
			f += float64(n)
		}
	}
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > float64(n-1) {
		return n - 1
	}
	return int(f)
}

// fraction is f-floor(f), zero when f is not finite
func fraction(f, floor float64) float32 {
	d := f - floor
	if math.IsNaN(d) {
		return 0
	}
	return float32(d)
}
