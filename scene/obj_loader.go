package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadModel loads a mesh from a .obj, .gltf or .glb file, chosen by
// extension.
func LoadModel(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("model %q: unsupported format", path)
	}
}

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	v, vt, vn [3]int // 0-based position / UV / normal indices (-1 = absent)
}

// LoadOBJ parses a Wavefront .obj file into a single position/normal/uv
// mesh. Groups and objects are merged; material directives are ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions, normals []mgl32.Vec3
	var uvs []mgl32.Vec2
	var faces []objFace

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v", "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj %q line %d: %w", path, lineNo, err)
			}
			vec := mgl32.Vec3{v[0], v[1], v[2]}
			if fields[0] == "v" {
				positions = append(positions, vec)
			} else {
				normals = append(normals, vec)
			}

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("obj %q line %d: %w", path, lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj %q line %d: face needs at least 3 vertices", path, lineNo)
			}
			refs := make([][3]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj %q line %d: %w", path, lineNo, err)
				}
				refs = append(refs, ref)
			}
			// Fan triangulation: 0-1-2, 0-2-3, ...
			for i := 1; i+1 < len(refs); i++ {
				a, b, c := refs[0], refs[i], refs[i+1]
				faces = append(faces, objFace{
					v:  [3]int{a[0], b[0], c[0]},
					vt: [3]int{a[1], b[1], c[1]},
					vn: [3]int{a[2], b[2], c[2]},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj %q: %w", path, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("obj %q: no faces", path)
	}

	m := buildMeshFromOBJ(path, faces, positions, normals, uvs)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn",
// "v/vt/vn". Indices are 1-based, negative ones count back from the end of
// the lists read so far. Absent entries are -1.
func parseFaceVertex(tok string, nv, nvt, nvn int) ([3]int, error) {
	res := [3]int{-1, -1, -1}
	counts := [3]int{nv, nvt, nvn}
	for i, part := range strings.SplitN(tok, "/", 3) {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return res, fmt.Errorf("bad face index %q", tok)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += counts[i]
		default:
			return res, fmt.Errorf("face index %q out of range", tok)
		}
		if n < 0 || n >= counts[i] {
			return res, fmt.Errorf("face index %q out of range", tok)
		}
		res[i] = n
	}
	if res[0] < 0 {
		return res, fmt.Errorf("face vertex %q has no position", tok)
	}
	return res, nil
}

// buildMeshFromOBJ converts parsed face data into an indexed mesh, sharing
// vertices that reference the same position/uv/normal triple.
func buildMeshFromOBJ(name string, faces []objFace, positions, normals []mgl32.Vec3, uvs []mgl32.Vec2) *Mesh {
	type key struct{ v, vt, vn int }
	vertMap := map[key]uint32{}
	var verts []mgl32.Vec3
	var norms []mgl32.Vec3
	var coords []mgl32.Vec2
	var indices []uint32
	missingNormals := false

	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := key{face.v[c], face.vt[c], face.vn[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			idx := uint32(len(verts))
			verts = append(verts, positions[k.v])
			if k.vn >= 0 {
				norms = append(norms, normals[k.vn])
			} else {
				norms = append(norms, mgl32.Vec3{})
				missingNormals = true
			}
			if k.vt >= 0 {
				coords = append(coords, uvs[k.vt])
			} else {
				coords = append(coords, mgl32.Vec2{})
			}
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if missingNormals {
		generateNormals(verts, norms, indices)
	}

	data := make([]float32, 0, len(verts)*LayoutPosNormalUV.Stride)
	for i, p := range verts {
		n, uv := norms[i], coords[i]
		data = append(data, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return &Mesh{Name: name, Vertices: data, Indices: indices, Layout: LayoutPosNormalUV}
}

// generateNormals fills zero normals with area-weighted face normals.
func generateNormals(verts, norms []mgl32.Vec3, indices []uint32) {
	accum := make([]mgl32.Vec3, len(verts))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		n := verts[i1].Sub(verts[i0]).Cross(verts[i2].Sub(verts[i0]))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range norms {
		if norms[i].Len() > 0 {
			continue
		}
		if accum[i].Len() > 0 {
			norms[i] = accum[i].Normalize()
		} else {
			norms[i] = mgl32.Vec3{0, 1, 0}
		}
	}
}
