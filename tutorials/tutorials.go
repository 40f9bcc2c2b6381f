// Package tutorials holds the runnable scenes, each one step further into
// the OpenGL pipeline than the last.
package tutorials

import (
	"fmt"
	"sort"

	"gltutorials/app"
	"gltutorials/gfx"
	"gltutorials/input"
	"gltutorials/logging"
	"gltutorials/pipeline"
)

// Options carries per-run settings that are not part of app.Config.
type Options struct {
	// Model is an optional .obj, .gltf or .glb file drawn in place of the
	// built-in cube by tutorials that light a model.
	Model string
}

// Tutorial is a registry entry.
type Tutorial struct {
	Name  string
	Title string
	Short string
	New   func(cfg app.Config, opts Options) app.Scene
}

var registry = map[string]Tutorial{}

func register(t Tutorial) {
	if _, dup := registry[t.Name]; dup {
		panic(fmt.Sprintf("tutorials: %q registered twice", t.Name))
	}
	registry[t.Name] = t
}

func init() {
	register(Tutorial{
		Name:  "triangle",
		Title: "Hello Triangle",
		Short: "A vertex-coloured triangle; F toggles wireframe",
		New:   func(cfg app.Config, _ Options) app.Scene { return NewTriangle(cfg) },
	})
	register(Tutorial{
		Name:  "texture",
		Title: "Textures",
		Short: "A textured quad; C toggles vertex colour tinting",
		New:   func(cfg app.Config, _ Options) app.Scene { return NewTexture(cfg) },
	})
	register(Tutorial{
		Name:  "lighting",
		Title: "Basic Lighting",
		Short: "A Phong-lit model with an orbiting light and a fly camera",
		New:   func(cfg app.Config, opts Options) app.Scene { return NewLighting(cfg, opts) },
	})
}

// Lookup returns the tutorial registered under name.
func Lookup(name string) (Tutorial, bool) {
	t, ok := registry[name]
	return t, ok
}

// All returns every tutorial sorted by name.
func All() []Tutorial {
	out := make([]Tutorial, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// program is a pipeline that can be rebuilt from its source files.
type program struct {
	vert, frag string
	p          *pipeline.Pipeline
}

func newProgram(cfg app.Config, name string) *program {
	return &program{
		vert: cfg.ShaderPath(name + ".vert"),
		frag: cfg.ShaderPath(name + ".frag"),
	}
}

// load compiles and links the sources. On failure the previously loaded
// pipeline, if any, stays in use.
func (pr *program) load(dev gfx.Device) error {
	p, err := pipeline.Load(dev, pr.vert, pr.frag)
	if err != nil {
		return fmt.Errorf("load %s + %s: %w", pr.vert, pr.frag, err)
	}
	if pr.p != nil {
		pr.p.Dispose()
	}
	pr.p = p
	logging.Logger().Debug("pipeline loaded", "vertex", pr.vert, "fragment", pr.frag, "program", p.ID())
	return nil
}

func (pr *program) paths() []string {
	return []string{pr.vert, pr.frag}
}

func (pr *program) dispose() {
	if pr.p != nil {
		pr.p.Dispose()
		pr.p = nil
	}
}

// closeOnEscape is the key handling every tutorial shares.
func closeOnEscape(a *app.Application, ev input.KeyEvent) bool {
	if ev.Pressed(input.KeyEscape) {
		a.Close()
		return true
	}
	return false
}
