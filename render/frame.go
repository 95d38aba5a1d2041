package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/arena3d/gpu"
	"github.com/lixenwraith/arena3d/parameter"
	"github.com/lixenwraith/arena3d/vmath"
)

// Frame holds the per-frame camera state for a device
type Frame struct {
	dev  *gpu.Device
	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewFrame binds a frame to dev
func NewFrame(dev *gpu.Device) *Frame {
	return &Frame{dev: dev}
}

// Begin clears color and depth and refreshes view/projection from the current viewport
// View and projection are constant within a frame, so they are built once here
func (f *Frame) Begin() {
	c := parameter.ClearColor
	f.dev.SetClearColor(c[0], c[1], c[2], c[3])
	f.dev.SetDepthTest(true)
	f.dev.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)

	f.view = vmath.ViewMatrix()
	f.proj = vmath.ProjectionMatrix(f.dev.Aspect())
}

// Draw renders res with the world transform of an entity at (x, y)
func (f *Frame) Draw(res *MeshResource, x, y, heading, scale float64) error {
	return res.Draw(f.dev, vmath.WorldMatrix(x, y, heading, scale), f.view, f.proj)
}

// Device returns the target device
func (f *Frame) Device() *gpu.Device {
	return f.dev
}
