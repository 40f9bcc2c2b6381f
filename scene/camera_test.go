package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, "want %v, got %v", want, got)
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec(t, mgl32.Vec3{0, 1, 0}, c.Up())

	view := c.ViewMatrix()
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	assert.InDeltaSlice(t, want[:], view[:], tol)
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.MovementSpeed = 2

	c.Move(Forward, 0.5)
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Position)
	c.Move(Right, 1)
	assertVec(t, mgl32.Vec3{2, 0, -1}, c.Position)
	c.Move(Backward, 0.5)
	c.Move(Left, 1)
	assertVec(t, mgl32.Vec3{}, c.Position)
}

func TestCameraLookClampsPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.MouseSensitivity = 1

	c.Look(0, 500)
	assert.Equal(t, float32(89), c.Pitch)
	c.Look(0, -1000)
	assert.Equal(t, float32(-89), c.Pitch)

	c.Look(90, 89)
	assert.Equal(t, float32(0), c.Yaw)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Front())
}

func TestCameraScrollClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.Scroll(10)
	assert.Equal(t, float32(35), c.Zoom)
	c.Scroll(100)
	assert.Equal(t, float32(1), c.Zoom)
	c.Scroll(-100)
	assert.Equal(t, float32(45), c.Zoom)
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	got := c.ProjectionMatrix(800, 600)
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	assert.InDeltaSlice(t, want[:], got[:], tol)

	// Zero height must not divide by zero.
	assert.NotPanics(t, func() { c.ProjectionMatrix(800, 0) })
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker
	dx, dy := m.Delta(100, 100)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = m.Delta(110, 90)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy)

	m.Reset()
	dx, dy = m.Delta(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
