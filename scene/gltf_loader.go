package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .glb or .gltf file and returns the first primitive of
// its first mesh as an interleaved position/normal/uv mesh. Missing normals
// default to +Y and missing texture coordinates to zero.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
	}

	gm := doc.Meshes[0]
	name := gm.Name
	if name == "" {
		name = path
	}
	m, err := loadGLTFPrimitive(doc, name, gm.Primitives[0])
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return m, nil
}

func loadGLTFPrimitive(doc *gltf.Document, name string, prim *gltf.Primitive) (*Mesh, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("primitive mode %v is not triangles", prim.Mode)
	}

	// Positions are required
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32

	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	verts := make([]float32, 0, len(positions)*LayoutPosNormalUV.Stride)
	for i, p := range positions {
		n := [3]float32{0, 1, 0}
		if i < len(normals) {
			n = normals[i]
		}
		var uv [2]float32
		if i < len(uvs) {
			uv = uvs[i]
		}
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	m := &Mesh{
		Name:     name,
		Vertices: verts,
		Indices:  indices,
		Layout:   LayoutPosNormalUV,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
