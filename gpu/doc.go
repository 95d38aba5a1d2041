// Package gpu provides an immediate-mode software graphics device.
//
// Features:
//   - Upload-once vertex, index and texture objects
//   - Programs linked from a vertex stage and a fragment stage
//   - Indexed triangle rasterization with perspective-correct varyings
//   - Depth testing against a float depth buffer
//   - Clamp-to-edge, bilinear texture sampling with optional vertical flip on upload
//
// State follows the bind-then-draw model: use a program, point attributes at buffers,
// bind an element buffer and textures, set uniforms, then draw.
// A Device is owned by one goroutine; it performs no locking.
package gpu
