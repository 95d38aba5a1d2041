package physics

import (
	"testing"

	"github.com/lixenwraith/arena3d/asset"
)

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     Box
	}{
		{"Empty", nil, Box{}},
		{"Single vertex", []float32{1, 2, 3}, Box{1, 1, 2, 2, 3, 3}},
		{
			"Channels independent",
			[]float32{0, 5, -1, 2, -3, 4, -1, 1, 0},
			Box{MinX: -1, MaxX: 2, MinY: -3, MaxY: 5, MinZ: -1, MaxZ: 4},
		},
		{
			// Y and Z ranges wider than X; reading the X channel for them would give [-1, 1]
			"Tall mesh",
			[]float32{-1, -4, -6, 1, 4, 6},
			Box{MinX: -1, MaxX: 1, MinY: -4, MaxY: 4, MinZ: -6, MaxZ: 6},
		},
		{"Trailing partial triple ignored", []float32{1, 1, 1, 9, 9}, Box{1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundingBox(tt.vertices); got != tt.want {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxTransform(t *testing.T) {
	unit := Box{-1, 1, -1, 1, -1, 1}

	got := unit.Transform(0.5, 2, -3)
	want := Box{MinX: 1.5, MaxX: 2.5, MinY: -3.5, MaxY: -2.5, MinZ: -0.5, MaxZ: 0.5}
	if got != want {
		t.Errorf("Transform(0.5, 2, -3) = %+v, want %+v", got, want)
	}

	asym := Box{0, 2, 0, 4, 0, 0}
	neg := asym.Transform(-1, 0, 0)
	if neg.MinX > neg.MaxX || neg.MinY > neg.MaxY {
		t.Errorf("negative scale left min > max: %+v", neg)
	}
}

func TestOverlaps2D(t *testing.T) {
	a := Box{0, 1, 0, 1, 0, 0}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"Identical", a, true},
		{"Touching edge", Box{1, 2, 0, 1, 0, 0}, true},
		{"Touching corner", Box{1, 2, 1, 2, 0, 0}, true},
		{"Separated on X", Box{1.01, 2, 0, 1, 0, 0}, false},
		{"Separated on Y", Box{0, 1, -2, -0.01, 0, 0}, false},
		{"Contained", Box{0.2, 0.4, 0.2, 0.4, 0, 0}, true},
		{"Z disjoint ignored", Box{0, 1, 0, 1, 50, 60}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps2D(a, tt.b); got != tt.want {
				t.Errorf("Overlaps2D(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps2D(tt.b, a); got != tt.want {
				t.Errorf("Overlaps2D(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

const skewedScene = `{
  "meshes": [{
    "vertices": [0.5, -2, 7, -1.25, 3, -4, 2, 0, 1],
    "normals": [0, 0, 1, 0, 0, 1, 0, 0, 1],
    "texturecoords": [[0, 0, 1, 0, 0, 1]],
    "faces": [[0, 1, 2]]
  }]
}`

func TestBoundingBoxOfParsedMeshIsStable(t *testing.T) {
	m, err := asset.ParseMesh("skewed", []byte(skewedScene))
	if err != nil {
		t.Fatalf("ParseMesh() error = %v", err)
	}

	first := BoundingBox(m.Vertices)
	second := BoundingBox(m.Vertices)
	if first != second {
		t.Fatalf("bounds differ between calls: %+v vs %+v", first, second)
	}

	want := Box{MinX: -1.25, MaxX: 2, MinY: -2, MaxY: 3, MinZ: -4, MaxZ: 7}
	if first != want {
		t.Errorf("BoundingBox() = %+v, want %+v", first, want)
	}
}
