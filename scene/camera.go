package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard-driven camera movement.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	defaultYaw         = -90.0
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	defaultZoom        = 45.0

	minZoom  = 1.0
	maxZoom  = 45.0
	maxPitch = 89.0
)

// Camera is a fly camera using Euler angles in degrees. Yaw -90 looks
// down -Z.
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32
	Zoom  float32

	MovementSpeed    float32
	MouseSensitivity float32

	NearPlane float32
	FarPlane  float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewCamera returns a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              defaultYaw,
		Zoom:             defaultZoom,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		NearPlane:        0.1,
		FarPlane:         100,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using Zoom as the
// vertical field of view.
func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, c.NearPlane, c.FarPlane)
}

// Move translates the camera along its own axes, scaled by dt seconds.
func (c *Camera) Move(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

// Look applies a mouse delta. Pitch is clamped so the view never flips.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// Scroll narrows or widens the field of view.
func (c *Camera) Scroll(dy float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-dy, minZoom, maxZoom)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// MouseTracker turns absolute cursor positions into deltas. The first
// sample only primes the tracker.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the offset since the previous sample with Y inverted so
// moving the mouse up yields a positive value.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset forgets the last sample.
func (m *MouseTracker) Reset() {
	m.primed = false
}
