package tutorials

import (
	"gltutorials/app"
	"gltutorials/input"
	"gltutorials/internal/opengl"
	"gltutorials/logging"
	"gltutorials/scene"
	"gltutorials/textures"
)

// ContainerImage is the asset the texture tutorial samples.
const ContainerImage = "container.png"

// Texture draws an indexed quad sampling a 2D texture on unit 0.
type Texture struct {
	app.BaseScene

	imagePath string
	prog      *program
	mesh      *opengl.GPUMesh
	tex       *opengl.Texture
	tint      bool
}

func NewTexture(cfg app.Config) *Texture {
	return &Texture{
		imagePath: cfg.AssetPath(ContainerImage),
		prog:      newProgram(cfg, "texture"),
	}
}

func (t *Texture) Init(a *app.Application) error {
	a.SetCursorCaptured(false)
	if err := t.prog.load(a.Device()); err != nil {
		return err
	}

	img, err := textures.LoadOrChecker(t.imagePath, textures.Options{FlipVertical: true})
	if err != nil {
		logging.Logger().Warn("using checkerboard texture", "err", err)
	}
	tex, err := opengl.UploadTexture(img)
	if err != nil {
		t.prog.dispose()
		return err
	}
	t.tex = tex

	mesh, err := opengl.UploadMesh(scene.Quad())
	if err != nil {
		t.tex.Delete()
		t.prog.dispose()
		return err
	}
	t.mesh = mesh
	return nil
}

func (t *Texture) Update(*app.Application, float32) {
	opengl.Clear(0.2, 0.3, 0.3, 1)
	t.tex.Bind(0)
	t.prog.p.SetActive()
	t.prog.p.SetInt("texture1", 0)
	t.prog.p.SetBool("tintWithColor", t.tint)
	t.mesh.Draw()
}

func (t *Texture) Dispose(*app.Application) {
	if t.mesh != nil {
		t.mesh.Release(false)
	}
	t.tex.Delete()
	t.prog.dispose()
}

func (t *Texture) OnKey(a *app.Application, ev input.KeyEvent) {
	if closeOnEscape(a, ev) {
		return
	}
	if ev.Pressed(input.KeyC) {
		t.tint = !t.tint
	}
}

func (t *Texture) ShaderPaths() []string { return t.prog.paths() }

func (t *Texture) ReloadShaders(a *app.Application) error {
	return t.prog.load(a.Device())
}
