// Package app runs a Scene inside a window: it owns the frame loop, turns
// window callbacks into scene calls and keeps the viewport in sync with the
// framebuffer.
package app

import (
	"errors"
	"fmt"

	"gltutorials/gfx"
	"gltutorials/input"
	"gltutorials/logging"
	"gltutorials/shaderwatch"
)

// ErrAlreadyRun is returned by Run on an application that has already
// been started.
var ErrAlreadyRun = errors.New("app: application already run")

// State is the lifecycle position of an Application.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// InitError reports which startup phase failed.
type InitError struct {
	Phase string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Phase, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Window is an open window with a current graphics context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	FramebufferSize() (width, height int)
	SetCursorCaptured(bool)
	Destroy()
}

// Callbacks are bound to a window when it is opened and invoked
// synchronously from PollEvents.
type Callbacks struct {
	FramebufferSize func(width, height int)
	Key             func(ev input.KeyEvent)
	CursorPos       func(x, y float64)
	Scroll          func(xoff, yoff float64)
}

// Platform opens windows and graphics devices.
type Platform interface {
	OpenWindow(cfg WindowConfig, cb Callbacks) (Window, error)
	// NewDevice loads the graphics API for the window's current context.
	NewDevice() (gfx.Device, error)
	// Time returns seconds since the platform was initialized.
	Time() float64
	Terminate()
}

type changeSource interface {
	Changed() []string
	Close() error
}

// Application drives one Scene from Uninitialized through Running to
// Disposed.
type Application struct {
	cfg      Config
	scene    Scene
	platform Platform

	window Window
	device gfx.Device
	state  State

	width, height int
	lastTime      float64

	watcher    changeSource
	newWatcher func(paths []string) (changeSource, error)
}

// New creates an application; nothing is opened until Run.
func New(cfg Config, scene Scene, platform Platform) *Application {
	return &Application{
		cfg:      cfg,
		scene:    scene,
		platform: platform,
		newWatcher: func(paths []string) (changeSource, error) {
			return shaderwatch.New(paths)
		},
	}
}

// Run initializes the window, device and scene, then loops until the
// window is asked to close. Dispose is always called once the loop exits.
func (a *Application) Run() error {
	if a.state != StateUninitialized {
		return ErrAlreadyRun
	}

	if err := a.init(); err != nil {
		logging.Logger().Error("application initialization failed", "err", err)
		return err
	}
	a.state = StateRunning
	logging.Logger().Info("application running", "title", a.cfg.Title, "width", a.width, "height", a.height)

	a.lastTime = a.platform.Time()
	for !a.window.ShouldClose() {
		now := a.platform.Time()
		dt := float32(now - a.lastTime)
		a.lastTime = now

		a.scene.Update(a, dt)
		a.reloadShaders()

		a.window.PollEvents()
		a.window.SwapBuffers()
	}

	a.dispose()
	return nil
}

func (a *Application) init() error {
	if err := a.cfg.Validate(); err != nil {
		return &InitError{Phase: "config", Err: err}
	}

	win, err := a.platform.OpenWindow(a.cfg.Window(), a.callbacks())
	if err != nil {
		a.platform.Terminate()
		return &InitError{Phase: "window", Err: err}
	}
	a.window = win

	dev, err := a.platform.NewDevice()
	if err != nil {
		a.release()
		return &InitError{Phase: "graphics", Err: err}
	}
	a.device = dev

	a.width, a.height = win.FramebufferSize()
	dev.Viewport(0, 0, int32(a.width), int32(a.height))
	dev.EnableDepthTest()

	if err := a.scene.Init(a); err != nil {
		a.release()
		return &InitError{Phase: "scene", Err: err}
	}

	if a.cfg.WatchShaders {
		a.startWatcher()
	}
	return nil
}

func (a *Application) callbacks() Callbacks {
	return Callbacks{
		FramebufferSize: a.onFramebufferSize,
		Key: func(ev input.KeyEvent) {
			a.scene.OnKey(a, ev)
		},
		CursorPos: func(x, y float64) {
			a.scene.OnMouse(a, x, y)
		},
		Scroll: func(xoff, yoff float64) {
			a.scene.OnScroll(a, xoff, yoff)
		},
	}
}

func (a *Application) onFramebufferSize(width, height int) {
	a.width, a.height = width, height
	if a.device != nil {
		a.device.Viewport(0, 0, int32(width), int32(height))
	}
}

func (a *Application) startWatcher() {
	r, ok := a.scene.(Reloader)
	if !ok {
		logging.Logger().Warn("shader watching requested but scene cannot reload shaders")
		return
	}
	w, err := a.newWatcher(r.ShaderPaths())
	if err != nil {
		logging.Logger().Warn("shader watching disabled", "err", err)
		return
	}
	a.watcher = w
}

func (a *Application) reloadShaders() {
	if a.watcher == nil {
		return
	}
	changed := a.watcher.Changed()
	if len(changed) == 0 {
		return
	}
	logging.Logger().Info("shader sources changed", "files", changed)
	if err := a.scene.(Reloader).ReloadShaders(a); err != nil {
		logging.Logger().Error("shader reload failed, keeping previous pipelines", "err", err)
	}
}

func (a *Application) dispose() {
	a.scene.Dispose(a)
	a.release()
	a.state = StateDisposed
	logging.Logger().Info("application disposed")
}

// release frees the watcher, window and platform in reverse order of
// acquisition.
func (a *Application) release() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logging.Logger().Warn("closing shader watcher", "err", err)
		}
		a.watcher = nil
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	a.device = nil
	a.platform.Terminate()
}

// Close asks the loop to exit after the current frame.
func (a *Application) Close() {
	if a.window != nil {
		a.window.SetShouldClose(true)
	}
}

// SetCursorCaptured hides and locks the cursor for mouse-look when true.
func (a *Application) SetCursorCaptured(captured bool) {
	if a.window != nil {
		a.window.SetCursorCaptured(captured)
	}
}

// Device returns the graphics device; nil outside Init..Dispose.
func (a *Application) Device() gfx.Device { return a.device }

// Size returns the current framebuffer size in pixels.
func (a *Application) Size() (width, height int) { return a.width, a.height }

func (a *Application) Config() Config { return a.cfg }

func (a *Application) State() State { return a.state }

// Time returns the platform clock in seconds.
func (a *Application) Time() float64 { return a.platform.Time() }
