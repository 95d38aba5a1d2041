package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/arena3d/parameter"
)

// WorldMatrix composes translate(x, y, 0) · rotateZ(heading) · scale(s)
func WorldMatrix(x, y, heading, scale float64) mgl32.Mat4 {
	s := float32(scale)
	return mgl32.Translate3D(float32(x), float32(y), 0).
		Mul4(mgl32.HomogRotate3DZ(float32(heading))).
		Mul4(mgl32.Scale3D(s, s, s))
}

// ViewMatrix is the fixed camera looking at the origin from +Z
func ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{parameter.CameraEyeX, parameter.CameraEyeY, parameter.CameraEyeZ},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

// ProjectionMatrix is the fixed perspective for a viewport aspect (width/height)
// Zero or negative aspect falls back to square
func ProjectionMatrix(aspect float64) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(
		mgl32.DegToRad(parameter.CameraFOVDegrees),
		float32(aspect),
		parameter.CameraNear,
		parameter.CameraFar,
	)
}

// SunDirection is the normalized directional light vector
func SunDirection() mgl32.Vec3 {
	return mgl32.Vec3{parameter.SunDirX, parameter.SunDirY, parameter.SunDirZ}.Normalize()
}
