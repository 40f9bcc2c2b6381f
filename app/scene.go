package app

import (
	"gltutorials/input"
)

// Scene receives lifecycle and input calls from the Application. All calls
// happen on the render thread.
type Scene interface {
	// Init runs once after the window and graphics device exist. An error
	// aborts startup.
	Init(a *Application) error
	// Update runs once per frame with the seconds elapsed since the
	// previous frame.
	Update(a *Application, dt float32)
	// Dispose runs once when the loop exits.
	Dispose(a *Application)

	OnKey(a *Application, ev input.KeyEvent)
	OnMouse(a *Application, x, y float64)
	OnScroll(a *Application, xoff, yoff float64)
}

// BaseScene implements every Scene method as a no-op. Embed it and override
// what the scene needs.
type BaseScene struct{}

func (BaseScene) Init(*Application) error                 { return nil }
func (BaseScene) Update(*Application, float32)            {}
func (BaseScene) Dispose(*Application)                    {}
func (BaseScene) OnKey(*Application, input.KeyEvent)      {}
func (BaseScene) OnMouse(*Application, float64, float64)  {}
func (BaseScene) OnScroll(*Application, float64, float64) {}

// Reloader is implemented by scenes that can rebuild their pipelines when
// shader files change on disk.
type Reloader interface {
	ShaderPaths() []string
	ReloadShaders(a *Application) error
}
