// Package gfx describes the graphics backend the shader, pipeline and
// application packages talk to. The OpenGL implementation lives in
// internal/opengl; gfxtest provides an in-memory one for tests.
package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies a programmable shader stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// PixelFormat is the layout of uploaded texture data.
type PixelFormat int

const (
	FormatRed PixelFormat = iota + 1
	FormatRGB
	FormatRGBA
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRed:
		return "red"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// Device is the subset of the graphics API used to build programs, feed
// uniforms and manage the viewport. All calls must happen on the thread that
// owns the context.
//
// CompileShader and LinkProgram return the handle they allocated even when
// ok is false so the caller can release it.
type Device interface {
	CompileShader(stage Stage, source string) (id uint32, infoLog string, ok bool)
	DeleteShader(id uint32)

	LinkProgram(vertex, fragment uint32) (id uint32, infoLog string, ok bool)
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	// UniformLocation returns -1 for names the program does not use.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	UniformMatrix4(location int32, m mgl32.Mat4)

	Viewport(x, y, width, height int32)
	EnableDepthTest()
}
