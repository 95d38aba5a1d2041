package parameter

// Fixed camera and projection
// Camera looks down -Z at the play plane (z = 0) from CameraEyeZ, up = +Y
const (
	// CameraFOVDegrees is the vertical field of view
	CameraFOVDegrees = 90.0

	CameraNear = 0.1
	CameraFar  = 1000.0

	CameraEyeX = 0.0
	CameraEyeY = 0.0
	CameraEyeZ = 5.0
)

// Play field
const (
	// FieldBound is the half extent of the square play area [-FieldBound, FieldBound]²
	// Entities past it are off-screen; enemies spawn on its edge
	FieldBound = 6.0
)
