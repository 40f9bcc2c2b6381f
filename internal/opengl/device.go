package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"gltutorials/gfx"
	"gltutorials/logging"
)

// Device is the OpenGL implementation of gfx.Device.
type Device struct {
	version string
}

// NewDevice loads the OpenGL function pointers. Must be called after the
// GLFW window context is made current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{version: gl.GoStr(gl.GetString(gl.VERSION))}
	logging.Logger().Info("OpenGL initialized",
		"version", d.version,
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return d, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string { return d.version }

func stageEnum(stage gfx.Stage) uint32 {
	switch stage {
	case gfx.StageVertex:
		return gl.VERTEX_SHADER
	case gfx.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

func (d *Device) CompileShader(stage gfx.Stage, source string) (uint32, string, bool) {
	kind := stageEnum(stage)
	if kind == 0 {
		return 0, fmt.Sprintf("unknown shader stage %v", stage), false
	}

	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return shader, log, false
	}
	return shader, "", true
}

func (d *Device) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, string, bool) {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertex)
	gl.AttachShader(prog, fragment)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return prog, log, false
	}

	// Stages can be deleted independently once the program is linked.
	gl.DetachShader(prog, vertex)
	gl.DetachShader(prog, fragment)
	return prog, "", true
}

func (d *Device) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (d *Device) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Device) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	// mgl32 matrices are column-major, as GL expects.
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

var _ gfx.Device = (*Device)(nil)

// Clear fills the colour and depth buffers.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetWireframe switches polygon rasterization between lines and fill.
func SetWireframe(on bool) {
	mode := uint32(gl.FILL)
	if on {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}
