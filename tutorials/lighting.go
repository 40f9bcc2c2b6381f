package tutorials

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"gltutorials/app"
	"gltutorials/input"
	"gltutorials/internal/opengl"
	"gltutorials/logging"
	"gltutorials/scene"
)

// lampLayout reads only positions out of the lit cube's vertex buffer.
var lampLayout = scene.VertexLayout{
	Stride:     scene.LayoutPosNormal.Stride,
	Attributes: []scene.Attribute{{Location: 0, Size: 3, Offset: 0}},
}

var moveKeys = map[input.Key]scene.Direction{
	input.KeyW: scene.Forward,
	input.KeyS: scene.Backward,
	input.KeyA: scene.Left,
	input.KeyD: scene.Right,
}

// Lighting draws a Phong-lit object next to the light that illuminates it.
type Lighting struct {
	app.BaseScene

	modelPath string
	object    *program
	lamp      *program

	cube     *opengl.GPUMesh
	lampMesh *opengl.GPUMesh
	model    *opengl.GPUMesh

	camera *scene.Camera
	mouse  scene.MouseTracker
	held   map[input.Key]bool

	ObjectColor mgl32.Vec3
	LightColor  mgl32.Vec3
	Shininess   float32

	lightPos    mgl32.Vec3
	orbitRadius float32
	orbiting    bool
	elapsed     float32
	captured    bool
}

func NewLighting(cfg app.Config, opts Options) *Lighting {
	return &Lighting{
		modelPath:   opts.Model,
		object:      newProgram(cfg, "lighting"),
		lamp:        newProgram(cfg, "light_cube"),
		camera:      scene.NewCamera(mgl32.Vec3{0, 0, 3}),
		held:        make(map[input.Key]bool),
		ObjectColor: mgl32.Vec3{1, 0.5, 0.31},
		LightColor:  mgl32.Vec3{1, 1, 1},
		Shininess:   32,
		lightPos:    mgl32.Vec3{1.2, 1, 2},
		orbitRadius: 2,
		orbiting:    true,
		captured:    cfg.CaptureCursor,
	}
}

func (l *Lighting) Init(a *app.Application) error {
	dev := a.Device()
	if err := l.object.load(dev); err != nil {
		return err
	}
	if err := l.lamp.load(dev); err != nil {
		l.object.dispose()
		return err
	}

	cube, err := opengl.UploadMesh(scene.Cube())
	if err != nil {
		l.disposePrograms()
		return err
	}
	l.cube = cube
	lampMesh, err := cube.ShareVertices(lampLayout)
	if err != nil {
		l.cube.Release(false)
		l.disposePrograms()
		return err
	}
	l.lampMesh = lampMesh

	if l.modelPath != "" {
		l.loadModel()
	}
	a.SetCursorCaptured(l.captured)
	return nil
}

// loadModel replaces the cube with the configured model. A model that
// cannot be loaded is reported and the cube is kept.
func (l *Lighting) loadModel() {
	mesh, err := scene.LoadModel(l.modelPath)
	if err != nil {
		logging.Logger().Warn("model not loaded, drawing cube", "path", l.modelPath, "err", err)
		return
	}
	gpu, err := opengl.UploadMesh(mesh)
	if err != nil {
		logging.Logger().Warn("model upload failed, drawing cube", "path", l.modelPath, "err", err)
		return
	}
	l.model = gpu
	logging.Logger().Info("model loaded", "path", l.modelPath, "vertices", mesh.VertexCount())
}

func (l *Lighting) Update(a *app.Application, dt float32) {
	l.step(dt)

	opengl.Clear(0.1, 0.1, 0.1, 1)
	width, height := a.Size()
	l.applyObjectUniforms(width, height)
	if l.model != nil {
		l.model.Draw()
	} else {
		l.cube.Draw()
	}
	l.applyLampUniforms(width, height)
	l.lampMesh.Draw()
}

// step advances the camera from held keys and moves the light along its
// orbit.
func (l *Lighting) step(dt float32) {
	for key, dir := range moveKeys {
		if l.held[key] {
			l.camera.Move(dir, dt)
		}
	}
	if l.orbiting {
		l.elapsed += dt
		t := float64(l.elapsed)
		l.lightPos = mgl32.Vec3{
			l.orbitRadius * float32(math.Cos(t)),
			1,
			l.orbitRadius * float32(math.Sin(t)),
		}
	}
}

func (l *Lighting) applyObjectUniforms(width, height int) {
	p := l.object.p
	p.SetActive()
	p.SetVec3("objectColor", l.ObjectColor)
	p.SetVec3("lightColor", l.LightColor)
	p.SetVec3("lightPos", l.lightPos)
	p.SetVec3("viewPos", l.camera.Position)
	p.SetFloat("shininess", l.Shininess)
	p.SetMatrix4x4("projection", l.camera.ProjectionMatrix(width, height))
	p.SetMatrix4x4("view", l.camera.ViewMatrix())
	p.SetMatrix4x4("model", mgl32.Ident4())
}

func (l *Lighting) applyLampUniforms(width, height int) {
	p := l.lamp.p
	p.SetActive()
	p.SetVec3("lightColor", l.LightColor)
	p.SetMatrix4x4("projection", l.camera.ProjectionMatrix(width, height))
	p.SetMatrix4x4("view", l.camera.ViewMatrix())
	p.SetMatrix4x4("model", mgl32.Translate3D(l.lightPos[0], l.lightPos[1], l.lightPos[2]).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2)))
}

func (l *Lighting) Dispose(*app.Application) {
	if l.model != nil {
		l.model.Release(false)
	}
	if l.lampMesh != nil {
		l.lampMesh.Release(true)
	}
	if l.cube != nil {
		l.cube.Release(false)
	}
	l.disposePrograms()
}

func (l *Lighting) disposePrograms() {
	l.object.dispose()
	l.lamp.dispose()
}

func (l *Lighting) OnKey(a *app.Application, ev input.KeyEvent) {
	if closeOnEscape(a, ev) {
		return
	}
	if _, ok := moveKeys[ev.Key]; ok {
		switch ev.Action {
		case input.Press:
			l.held[ev.Key] = true
		case input.Release:
			l.held[ev.Key] = false
		}
		return
	}
	switch {
	case ev.Pressed(input.KeySpace):
		l.orbiting = !l.orbiting
	case ev.Pressed(input.KeyTab):
		l.captured = !l.captured
		l.mouse.Reset()
		a.SetCursorCaptured(l.captured)
	}
}

func (l *Lighting) OnMouse(_ *app.Application, x, y float64) {
	dx, dy := l.mouse.Delta(x, y)
	if !l.captured {
		return
	}
	l.camera.Look(dx, dy)
}

func (l *Lighting) OnScroll(_ *app.Application, _, yoff float64) {
	l.camera.Scroll(float32(yoff))
}

func (l *Lighting) ShaderPaths() []string {
	return append(l.object.paths(), l.lamp.paths()...)
}

// ReloadShaders rebuilds both programs. Each keeps its previous pipeline
// when its own sources fail.
func (l *Lighting) ReloadShaders(a *app.Application) error {
	dev := a.Device()
	return errors.Join(l.object.load(dev), l.lamp.load(dev))
}
