// Package gfxtest provides an in-memory gfx.Device for tests that need
// shaders, programs and uniforms without a GL context.
package gfxtest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"gltutorials/gfx"
)

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
	inDecl      = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
	outDecl     = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?out\s+\w+\s+(\w+)\s*;`)
)

type shaderObject struct {
	stage  gfx.Stage
	source string
}

type programObject struct {
	locations map[string]int32
	values    map[int32]any
}

// Device records every object it hands out. Compilation fails when the
// source lacks a main function, has unbalanced braces or contains an
// #error directive. Linking fails when a fragment input is not written by
// the vertex stage.
type Device struct {
	nextID   uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject

	current uint32

	// ViewportRect holds the last x, y, width, height passed to Viewport.
	ViewportRect [4]int32
	DepthTest    bool

	// InvalidDeletes counts deletions of handles that were never issued or
	// were already released.
	InvalidDeletes int
	// UniformWrites counts uniform writes that reached a program.
	UniformWrites int
}

// NewDevice returns an empty device.
func NewDevice() *Device {
	return &Device{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
	}
}

func (d *Device) allocate() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) CompileShader(stage gfx.Stage, source string) (uint32, string, bool) {
	id := d.allocate()
	d.shaders[id] = &shaderObject{stage: stage, source: source}

	if log := checkSource(source); log != "" {
		return id, log, false
	}
	return id, "", true
}

func checkSource(source string) string {
	depth := 0
	for i, line := range strings.Split(source, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#error") {
			return fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(line))
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'", i+1)
		}
	}
	if depth != 0 {
		return "0:0(0): error: syntax error, unexpected end of file"
	}
	if !strings.Contains(source, "void main") {
		return "0:0(0): error: entry point main not found"
	}
	return ""
}

func (d *Device) DeleteShader(id uint32) {
	if _, ok := d.shaders[id]; !ok {
		d.InvalidDeletes++
		return
	}
	delete(d.shaders, id)
}

func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, string, bool) {
	id := d.allocate()
	prog := &programObject{
		locations: make(map[string]int32),
		values:    make(map[int32]any),
	}
	d.programs[id] = prog

	vs, vok := d.shaders[vertex]
	fs, fok := d.shaders[fragment]
	if !vok || !fok {
		return id, "error: attached shader object is not valid", false
	}

	written := make(map[string]bool)
	for _, m := range outDecl.FindAllStringSubmatch(vs.source, -1) {
		written[m[1]] = true
	}
	for _, m := range inDecl.FindAllStringSubmatch(fs.source, -1) {
		if !written[m[1]] {
			return id, fmt.Sprintf("error: fragment shader input '%s' is not written by the vertex shader", m[1]), false
		}
	}

	var next int32
	for _, src := range []string{vs.source, fs.source} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, seen := prog.locations[m[1]]; !seen {
				prog.locations[m[1]] = next
				next++
			}
		}
	}
	return id, "", true
}

func (d *Device) DeleteProgram(id uint32) {
	if _, ok := d.programs[id]; !ok {
		d.InvalidDeletes++
		return
	}
	delete(d.programs, id)
	if d.current == id {
		d.current = 0
	}
}

func (d *Device) UseProgram(id uint32) {
	d.current = id
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	prog, ok := d.programs[program]
	if !ok {
		return -1
	}
	loc, ok := prog.locations[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Device) write(location int32, v any) {
	if location < 0 {
		return
	}
	prog, ok := d.programs[d.current]
	if !ok {
		return
	}
	prog.values[location] = v
	d.UniformWrites++
}

func (d *Device) Uniform1i(location int32, v int32)           { d.write(location, v) }
func (d *Device) Uniform1f(location int32, v float32)         { d.write(location, v) }
func (d *Device) Uniform3f(location int32, v mgl32.Vec3)      { d.write(location, v) }
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) { d.write(location, m) }

func (d *Device) Viewport(x, y, width, height int32) {
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Device) EnableDepthTest() {
	d.DepthTest = true
}

// CurrentProgram returns the handle passed to the last UseProgram.
func (d *Device) CurrentProgram() uint32 {
	return d.current
}

// LiveShaders returns the number of shader handles not yet deleted.
func (d *Device) LiveShaders() int {
	return len(d.shaders)
}

// LivePrograms returns the number of program handles not yet deleted.
func (d *Device) LivePrograms() int {
	return len(d.programs)
}

// Uniform returns the value last written to the named uniform of program.
func (d *Device) Uniform(program uint32, name string) (any, bool) {
	prog, ok := d.programs[program]
	if !ok {
		return nil, false
	}
	loc, ok := prog.locations[name]
	if !ok {
		return nil, false
	}
	v, ok := prog.values[loc]
	return v, ok
}

var _ gfx.Device = (*Device)(nil)
