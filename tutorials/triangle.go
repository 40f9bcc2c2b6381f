package tutorials

import (
	"gltutorials/app"
	"gltutorials/input"
	"gltutorials/internal/opengl"
	"gltutorials/logging"
	"gltutorials/scene"
)

// Triangle draws a single vertex-coloured triangle.
type Triangle struct {
	app.BaseScene

	prog      *program
	mesh      *opengl.GPUMesh
	wireframe bool
}

func NewTriangle(cfg app.Config) *Triangle {
	return &Triangle{prog: newProgram(cfg, "triangle")}
}

func (t *Triangle) Init(a *app.Application) error {
	a.SetCursorCaptured(false)
	if err := t.prog.load(a.Device()); err != nil {
		return err
	}
	mesh, err := opengl.UploadMesh(scene.Triangle())
	if err != nil {
		t.prog.dispose()
		return err
	}
	t.mesh = mesh
	return nil
}

func (t *Triangle) Update(a *app.Application, _ float32) {
	opengl.Clear(0.2, 0.3, 0.3, 1)
	t.prog.p.SetActive()
	t.prog.p.SetFloat("brightness", 1)
	t.mesh.Draw()
}

func (t *Triangle) Dispose(*app.Application) {
	if t.mesh != nil {
		t.mesh.Release(false)
	}
	t.prog.dispose()
}

func (t *Triangle) OnKey(a *app.Application, ev input.KeyEvent) {
	if closeOnEscape(a, ev) {
		return
	}
	if ev.Pressed(input.KeyF) {
		t.wireframe = !t.wireframe
		opengl.SetWireframe(t.wireframe)
		logging.Logger().Info("wireframe toggled", "on", t.wireframe)
	}
}

func (t *Triangle) ShaderPaths() []string { return t.prog.paths() }

func (t *Triangle) ReloadShaders(a *app.Application) error {
	return t.prog.load(a.Device())
}
