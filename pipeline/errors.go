package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"gltutorials/gfx"
)

var (
	// ErrInvalidShader is returned when a pipeline is built from a shader
	// that was never created or has been disposed.
	ErrInvalidShader = errors.New("pipeline: shader is not valid")
	// ErrStageMismatch is returned when the shaders passed to Create are not
	// a vertex stage followed by a fragment stage.
	ErrStageMismatch = errors.New("pipeline: shader stage mismatch")
)

// FileOpenError reports a shader source that could not be read.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open shader %q: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// CompileError carries the backend diagnostic for a rejected shader.
type CompileError struct {
	Stage gfx.Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader %q: %s", e.Stage, e.Path, e.Log)
}

// LinkError carries the backend diagnostic for a rejected program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// diagnostic trims the NUL padding and trailing whitespace GL leaves in info
// logs. An empty log is replaced by fallback.
func diagnostic(infoLog, fallback string) string {
	infoLog = strings.TrimRight(infoLog, "\x00\n\r\t ")
	if infoLog == "" {
		return fallback
	}
	return infoLog
}
