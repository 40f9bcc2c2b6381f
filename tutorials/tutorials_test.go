package tutorials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gltutorials/app"
	"gltutorials/gfx/gfxtest"
	"gltutorials/input"
	"gltutorials/pipeline"
	"gltutorials/textures"
)

func shippedConfig() app.Config {
	cfg := app.DefaultConfig()
	cfg.ShaderDir = filepath.Join("..", "shaders")
	cfg.AssetDir = filepath.Join("..", "assets")
	return cfg
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, "lighting", all[0].Name)
	assert.Equal(t, "texture", all[1].Name)
	assert.Equal(t, "triangle", all[2].Name)

	tri, ok := Lookup("triangle")
	require.True(t, ok)
	assert.IsType(t, &Triangle{}, tri.New(shippedConfig(), Options{}))

	lit, ok := Lookup("lighting")
	require.True(t, ok)
	scene := lit.New(shippedConfig(), Options{Model: "suzanne.glb"})
	require.IsType(t, &Lighting{}, scene)
	assert.Equal(t, "suzanne.glb", scene.(*Lighting).modelPath)

	_, ok = Lookup("shadows")
	assert.False(t, ok)
}

func TestScenesReloadTheirShaders(t *testing.T) {
	cfg := shippedConfig()
	for _, tut := range All() {
		_, ok := tut.New(cfg, Options{}).(app.Reloader)
		assert.True(t, ok, tut.Name)
	}

	l := NewLighting(cfg, Options{})
	assert.Equal(t, []string{
		filepath.Join("..", "shaders", "lighting.vert"),
		filepath.Join("..", "shaders", "lighting.frag"),
		filepath.Join("..", "shaders", "light_cube.vert"),
		filepath.Join("..", "shaders", "light_cube.frag"),
	}, l.ShaderPaths())
}

func TestShippedShadersLink(t *testing.T) {
	cfg := shippedConfig()
	for _, name := range []string{"triangle", "texture", "lighting", "light_cube"} {
		t.Run(name, func(t *testing.T) {
			dev := gfxtest.NewDevice()
			pr := newProgram(cfg, name)
			require.NoError(t, pr.load(dev))
			assert.True(t, pr.p.IsValid())
			assert.Zero(t, dev.LiveShaders(), "stage objects are released after linking")
			pr.dispose()
			assert.Zero(t, dev.LivePrograms())
		})
	}
}

func copyShader(t *testing.T, dir, name string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "shaders", name))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestProgramReloadKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	copyShader(t, dir, "triangle.vert")
	copyShader(t, dir, "triangle.frag")
	cfg := app.DefaultConfig()
	cfg.ShaderDir = dir

	dev := gfxtest.NewDevice()
	pr := newProgram(cfg, "triangle")
	require.NoError(t, pr.load(dev))
	first := pr.p.ID()

	frag := filepath.Join(dir, "triangle.frag")
	require.NoError(t, os.WriteFile(frag, []byte("#version 410 core\nvoid main() {\n"), 0o644))
	err := pr.load(dev)
	var cerr *pipeline.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, first, pr.p.ID(), "failed reload keeps the running pipeline")
	assert.Equal(t, 1, dev.LivePrograms())

	copyShader(t, dir, "triangle.frag")
	require.NoError(t, pr.load(dev))
	assert.NotEqual(t, first, pr.p.ID())
	assert.Equal(t, 1, dev.LivePrograms(), "replaced pipeline is deleted")
	assert.Zero(t, dev.InvalidDeletes)
}

func loadLighting(t *testing.T) (*Lighting, *gfxtest.Device) {
	t.Helper()
	dev := gfxtest.NewDevice()
	l := NewLighting(shippedConfig(), Options{})
	require.NoError(t, l.object.load(dev))
	require.NoError(t, l.lamp.load(dev))
	return l, dev
}

func TestLightingUniforms(t *testing.T) {
	l, dev := loadLighting(t)
	l.applyObjectUniforms(800, 600)

	obj := l.object.p.ID()
	assert.Equal(t, obj, dev.CurrentProgram())

	v, ok := dev.Uniform(obj, "objectColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.31}, v)
	v, _ = dev.Uniform(obj, "shininess")
	assert.Equal(t, float32(32), v)
	v, _ = dev.Uniform(obj, "viewPos")
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, v)
	v, _ = dev.Uniform(obj, "lightPos")
	assert.Equal(t, mgl32.Vec3{1.2, 1, 2}, v)
	v, _ = dev.Uniform(obj, "projection")
	assert.Equal(t, l.camera.ProjectionMatrix(800, 600), v)
	v, _ = dev.Uniform(obj, "model")
	assert.Equal(t, mgl32.Ident4(), v)

	l.applyLampUniforms(800, 600)
	lamp := l.lamp.p.ID()
	assert.Equal(t, lamp, dev.CurrentProgram())
	v, _ = dev.Uniform(lamp, "lightColor")
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, v)
	_, ok = dev.Uniform(lamp, "objectColor")
	assert.False(t, ok, "the lamp program has no object colour")

	l.disposePrograms()
	assert.Zero(t, dev.LivePrograms())
}

func TestLightingMovement(t *testing.T) {
	l := NewLighting(shippedConfig(), Options{})
	l.orbiting = false
	a := app.New(app.DefaultConfig(), l, nil)

	l.OnKey(a, input.KeyEvent{Key: input.KeyW, Action: input.Press})
	l.step(0.4)
	assert.InDelta(t, 2.0, l.camera.Position.Z(), 1e-5)

	l.OnKey(a, input.KeyEvent{Key: input.KeyW, Action: input.Repeat})
	l.OnKey(a, input.KeyEvent{Key: input.KeyW, Action: input.Release})
	l.step(1)
	assert.InDelta(t, 2.0, l.camera.Position.Z(), 1e-5, "released keys stop moving")
	assert.Equal(t, mgl32.Vec3{1.2, 1, 2}, l.lightPos, "light is still while the orbit is paused")
}

func TestLightingOrbit(t *testing.T) {
	l := NewLighting(shippedConfig(), Options{})
	a := app.New(app.DefaultConfig(), l, nil)

	l.step(0)
	assert.InDelta(t, 2.0, l.lightPos.X(), 1e-5)
	assert.InDelta(t, 0.0, l.lightPos.Z(), 1e-5)

	l.step(float32(mgl32.DegToRad(90)))
	assert.InDelta(t, 0.0, l.lightPos.X(), 1e-4)
	assert.InDelta(t, 2.0, l.lightPos.Z(), 1e-4)

	l.OnKey(a, input.KeyEvent{Key: input.KeySpace, Action: input.Press})
	before := l.lightPos
	l.step(1)
	assert.Equal(t, before, l.lightPos)
}

func TestLightingMouseAndScroll(t *testing.T) {
	l := NewLighting(shippedConfig(), Options{})
	a := app.New(app.DefaultConfig(), l, nil)
	require.True(t, l.captured)

	l.OnMouse(a, 100, 100)
	l.OnMouse(a, 200, 100)
	assert.InDelta(t, -80.0, l.camera.Yaw, 1e-4)

	l.OnKey(a, input.KeyEvent{Key: input.KeyTab, Action: input.Press})
	assert.False(t, l.captured)
	l.OnMouse(a, 400, 100)
	assert.InDelta(t, -80.0, l.camera.Yaw, 1e-4, "free cursor does not steer the camera")

	l.OnScroll(a, 0, 5)
	assert.InDelta(t, 40.0, l.camera.Zoom, 1e-5)
}

func TestEscapeCloses(t *testing.T) {
	tri := NewTriangle(shippedConfig())
	a := app.New(app.DefaultConfig(), tri, nil)
	assert.True(t, closeOnEscape(a, input.KeyEvent{Key: input.KeyEscape, Action: input.Press}))
	assert.False(t, closeOnEscape(a, input.KeyEvent{Key: input.KeyEscape, Action: input.Release}))
}

func TestContainerAssetDecodes(t *testing.T) {
	img, err := textures.Load(shippedConfig().AssetPath(ContainerImage), textures.Options{FlipVertical: true})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels, "opaque PNG uploads as RGB")
	assert.Equal(t, 128, img.Width)
	assert.Len(t, img.Pixels, 128*128*3)
}
