// Package core is the GLFW desktop platform: it opens the window, binds the
// application's callbacks to it and creates the OpenGL device.
package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gltutorials/app"
	"gltutorials/input"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Window wraps a GLFW window with a current OpenGL context.
type Window struct {
	Handle *glfw.Window
}

// NewWindow creates a window with an OpenGL 4.1 core context and binds cb
// to its callbacks. GLFW must already be initialized.
func NewWindow(cfg app.WindowConfig, cb app.Callbacks) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(cfg.Resizable))

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{Handle: handle}
	w.SetCursorCaptured(cfg.CaptureCursor)
	w.bind(cb)
	return w, nil
}

// bind installs closures that forward GLFW callbacks to cb. Nil entries are
// left unregistered.
func (w *Window) bind(cb app.Callbacks) {
	if cb.FramebufferSize != nil {
		w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			cb.FramebufferSize(width, height)
		})
	}
	if cb.Key != nil {
		w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			cb.Key(input.KeyEvent{
				Key:      input.Key(key),
				Scancode: scancode,
				Action:   input.Action(action),
				Mods:     input.ModifierKey(mods),
			})
		})
	}
	if cb.CursorPos != nil {
		w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			cb.CursorPos(x, y)
		})
	}
	if cb.Scroll != nil {
		w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
			cb.Scroll(xoff, yoff)
		})
	}
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// SetCursorCaptured hides the cursor and keeps it inside the window for
// unbounded mouse-look.
func (w *Window) SetCursorCaptured(captured bool) {
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	w.Handle.SetInputMode(glfw.CursorMode, mode)
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

var _ app.Window = (*Window)(nil)
