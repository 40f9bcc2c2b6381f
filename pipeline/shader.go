// Package pipeline wraps compilation of shader stages and linking them into
// programs, plus typed uniform setters on the linked program.
package pipeline

import (
	"os"

	"gltutorials/gfx"
	"gltutorials/logging"
)

// Shader is one compiled shader stage. The zero handle means the shader
// is absent or has been disposed.
type Shader struct {
	dev   gfx.Device
	stage gfx.Stage
	path  string
	id    uint32
}

// NewShader returns an invalid shader bound to dev.
func NewShader(dev gfx.Device) *Shader {
	return &Shader{dev: dev}
}

// Create reads the source at path and compiles it for stage. Any handle the
// shader held before is released first. On failure the shader is left
// invalid.
func (s *Shader) Create(stage gfx.Stage, path string) error {
	s.Dispose()
	s.stage = stage
	s.path = path

	src, err := os.ReadFile(path)
	if err != nil {
		ferr := &FileOpenError{Path: path, Err: err}
		logging.Logger().Error("failed to open shader", "path", path, "err", err)
		return ferr
	}

	id, infoLog, ok := s.dev.CompileShader(stage, string(src))
	if !ok {
		if id != 0 {
			s.dev.DeleteShader(id)
		}
		infoLog = diagnostic(infoLog, "compilation failed (no info log)")
		logging.Logger().Error("shader compilation failed", "stage", stage, "path", path, "log", infoLog)
		return &CompileError{Stage: stage, Path: path, Log: infoLog}
	}

	s.id = id
	logging.Logger().Debug("shader compiled", "stage", stage, "path", path, "id", id)
	return nil
}

// Dispose releases the compiled stage. It is a no-op on an invalid shader.
func (s *Shader) Dispose() {
	if !s.IsValid() {
		return
	}
	s.dev.DeleteShader(s.id)
	s.id = 0
}

func (s *Shader) IsValid() bool { return s.id != 0 }

func (s *Shader) ID() uint32 { return s.id }

func (s *Shader) Stage() gfx.Stage { return s.stage }

func (s *Shader) Path() string { return s.path }
