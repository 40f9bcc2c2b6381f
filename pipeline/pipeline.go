package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"gltutorials/gfx"
	"gltutorials/logging"
)

// Pipeline is a linked vertex+fragment program.
type Pipeline struct {
	dev gfx.Device
	id  uint32
}

// New returns an invalid pipeline bound to dev.
func New(dev gfx.Device) *Pipeline {
	return &Pipeline{dev: dev}
}

// Create links vertex and fragment into a program. The shaders are only read;
// the caller still owns and disposes them. Any program the pipeline held
// before is released first.
func (p *Pipeline) Create(vertex, fragment *Shader) error {
	p.Dispose()

	if vertex == nil || fragment == nil || !vertex.IsValid() || !fragment.IsValid() {
		return ErrInvalidShader
	}
	if vertex.Stage() != gfx.StageVertex || fragment.Stage() != gfx.StageFragment {
		return fmt.Errorf("%w: got %s and %s", ErrStageMismatch, vertex.Stage(), fragment.Stage())
	}

	id, infoLog, ok := p.dev.LinkProgram(vertex.ID(), fragment.ID())
	if !ok {
		if id != 0 {
			p.dev.DeleteProgram(id)
		}
		infoLog = diagnostic(infoLog, "link failed (no info log)")
		logging.Logger().Error("program link failed",
			"vertex", vertex.Path(), "fragment", fragment.Path(), "log", infoLog)
		return &LinkError{Log: infoLog}
	}

	p.id = id
	logging.Logger().Debug("program linked", "id", id,
		"vertex", vertex.Path(), "fragment", fragment.Path())
	return nil
}

// Dispose deletes the program. It is a no-op on an invalid pipeline.
func (p *Pipeline) Dispose() {
	if !p.IsValid() {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}

// SetActive binds the program for subsequent draws and uniform writes.
// Calling it on an invalid pipeline unbinds whatever program was current.
func (p *Pipeline) SetActive() {
	p.dev.UseProgram(p.id)
}

func (p *Pipeline) IsValid() bool { return p.id != 0 }

func (p *Pipeline) ID() uint32 { return p.id }

// location looks the uniform up on every call. A missing name yields -1,
// which the backend ignores on write.
func (p *Pipeline) location(name string) int32 {
	loc := p.dev.UniformLocation(p.id, name)
	if loc < 0 {
		if l := logging.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("uniform not found", "program", p.id, "name", name)
		}
	}
	return loc
}

// The setters write into the currently active program, which is expected to
// be p.

func (p *Pipeline) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.dev.Uniform1i(p.location(name), i)
}

func (p *Pipeline) SetInt(name string, v int32) {
	p.dev.Uniform1i(p.location(name), v)
}

func (p *Pipeline) SetFloat(name string, v float32) {
	p.dev.Uniform1f(p.location(name), v)
}

func (p *Pipeline) SetVec3(name string, v mgl32.Vec3) {
	p.dev.Uniform3f(p.location(name), v)
}

func (p *Pipeline) SetMatrix4x4(name string, m mgl32.Mat4) {
	p.dev.UniformMatrix4(p.location(name), m)
}
