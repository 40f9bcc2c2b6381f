package core

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gltutorials/app"
	"gltutorials/gfx"
	"gltutorials/internal/opengl"
)

// Desktop is the app.Platform backed by GLFW and OpenGL.
type Desktop struct {
	initialized bool
}

// NewDesktop returns a platform; GLFW is initialized on the first
// OpenWindow.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) OpenWindow(cfg app.WindowConfig, cb app.Callbacks) (app.Window, error) {
	if !d.initialized {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		d.initialized = true
	}
	w, err := NewWindow(cfg, cb)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (d *Desktop) NewDevice() (gfx.Device, error) {
	dev, err := opengl.NewDevice()
	if err != nil {
		return nil, err
	}
	return dev, nil
}

func (d *Desktop) Time() float64 {
	return glfw.GetTime()
}

// Terminate releases GLFW. It is safe to call more than once.
func (d *Desktop) Terminate() {
	if !d.initialized {
		return
	}
	glfw.Terminate()
	d.initialized = false
}

var _ app.Platform = (*Desktop)(nil)
