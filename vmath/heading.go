package vmath

import (
	"math"

	"github.com/lixenwraith/arena3d/parameter"
)

// HeadingDirection returns the unit step for a heading
// Heading 0 points down (-Y); headings increase counter-clockwise
func HeadingDirection(heading float64) (dx, dy float64) {
	a := heading - parameter.HeadingOffset
	return math.Cos(a), math.Sin(a)
}

// HeadingFromOffset returns the heading that points along (x, y)
// Inverse of HeadingDirection up to the offset literal
func HeadingFromOffset(x, y float64) float64 {
	return math.Atan2(y, x) + parameter.HeadingOffset
}

// HeadingToOrigin returns the heading from (x, y) toward the origin
func HeadingToOrigin(x, y float64) float64 {
	return math.Atan2(y, x) - parameter.HeadingOffset
}
