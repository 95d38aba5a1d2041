package physics

// Body is anything with a position, a uniform scale and local bounds
type Body interface {
	Position() (x, y float64)
	ScaleFactor() float64
	LocalBounds() Box
}

// WorldBounds returns the scaled, translated bounds of a body
func WorldBounds(b Body) Box {
	x, y := b.Position()
	return b.LocalBounds().Transform(b.ScaleFactor(), x, y)
}

// Collides reports whether the world bounds of a and b overlap in the XY plane
// Symmetric in its arguments
func Collides(a, b Body) bool {
	return Overlaps2D(WorldBounds(a), WorldBounds(b))
}

// OffField reports whether (x, y) lies strictly outside the square [-bound, bound]²
func OffField(x, y, bound float64) bool {
	return x > bound || x < -bound || y > bound || y < -bound
}
