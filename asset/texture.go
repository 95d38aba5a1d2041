package asset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
)

var ErrEmptyTexture = errors.New("texture has no pixels")

// Texture is a decoded, non-premultiplied RGBA image, row 0 at the top
type Texture struct {
	Name  string
	Image *image.NRGBA
}

// Size returns texture dimensions in pixels
func (t *Texture) Size() (width, height int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// DecodeTexture decodes any registered image format into NRGBA
func DecodeTexture(name string, r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", name, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyTexture)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Texture{Name: name, Image: nrgba}, nil
}

// LoadTexture opens and decodes an image file, named by its absolute path
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	defer f.Close()

	t, err := DecodeTexture(SourceName(path), f)
	if err != nil {
		return nil, err
	}
	w, h := t.Size()
	log.Printf("[asset] texture %s: %dx%d", t.Name, w, h)
	return t, nil
}
