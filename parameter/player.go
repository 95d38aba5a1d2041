package parameter

// HeadingOffset is the quarter-turn subtracted from a heading before resolving its
// direction. Heading 0 points down (-Y); headings increase counter-clockwise
// Aim, spawn and advance all share this literal; it is not math.Pi/2
const HeadingOffset = 1.5708

// Player
const (
	PlayerScale = 0.5
	PlayerSpeed = 0.0
)

// Projectile
const (
	ProjectileScale = 0.2

	// ProjectileSpeed is world units per frame
	ProjectileSpeed = 0.075
)
