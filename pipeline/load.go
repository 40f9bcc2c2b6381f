package pipeline

import (
	"gltutorials/gfx"
)

// Load compiles the two stages at vertexPath and fragmentPath, links them and
// releases the stage objects. The returned pipeline is owned by the caller.
func Load(dev gfx.Device, vertexPath, fragmentPath string) (*Pipeline, error) {
	vs := NewShader(dev)
	if err := vs.Create(gfx.StageVertex, vertexPath); err != nil {
		return nil, err
	}
	defer vs.Dispose()

	fs := NewShader(dev)
	if err := fs.Create(gfx.StageFragment, fragmentPath); err != nil {
		return nil, err
	}
	defer fs.Dispose()

	p := New(dev)
	if err := p.Create(vs, fs); err != nil {
		return nil, err
	}
	return p, nil
}
