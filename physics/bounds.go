package physics

// Box is an axis-aligned bounding box
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// BoundingBox scans xyz triples for per-axis extremes in local mesh space
// Each axis reads its own channel; an empty list yields the zero Box
func BoundingBox(vertices []float32) Box {
	if len(vertices) < 3 {
		return Box{}
	}
	b := Box{
		MinX: float64(vertices[0]), MaxX: float64(vertices[0]),
		MinY: float64(vertices[1]), MaxY: float64(vertices[1]),
		MinZ: float64(vertices[2]), MaxZ: float64(vertices[2]),
	}
	for i := 3; i+2 < len(vertices); i += 3 {
		x, y, z := float64(vertices[i]), float64(vertices[i+1]), float64(vertices[i+2])
		b.MinX = min(b.MinX, x)
		b.MaxX = max(b.MaxX, x)
		b.MinY = min(b.MinY, y)
		b.MaxY = max(b.MaxY, y)
		b.MinZ = min(b.MinZ, z)
		b.MaxZ = max(b.MaxZ, z)
	}
	return b
}

// Transform scales the box uniformly about the local origin then translates it to (x, y)
// Rotation is not applied; collision treats every entity as axis-aligned
func (b Box) Transform(scale, x, y float64) Box {
	t := Box{
		MinX: x + b.MinX*scale, MaxX: x + b.MaxX*scale,
		MinY: y + b.MinY*scale, MaxY: y + b.MaxY*scale,
		MinZ: b.MinZ * scale, MaxZ: b.MaxZ * scale,
	}
	if scale < 0 {
		t.MinX, t.MaxX = t.MaxX, t.MinX
		t.MinY, t.MaxY = t.MaxY, t.MinY
		t.MinZ, t.MaxZ = t.MaxZ, t.MinZ
	}
	return t
}

// Overlaps2D reports inclusive interval overlap on both X and Y, Z is ignored
func Overlaps2D(a, b Box) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX &&
		a.MinY <= b.MaxY && a.MaxY >= b.MinY
}
