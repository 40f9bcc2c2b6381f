package scene

// Triangle returns the coloured triangle from the first tutorial.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []float32{
			// positions      // colors
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
		},
		Layout: LayoutPosColor,
	}
}

// Quad returns a unit quad with per-corner colours and texture
// coordinates, drawn with indices.
func Quad() *Mesh {
	return &Mesh{
		Name: "quad",
		Vertices: []float32{
			// positions      // colors      // uv
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Layout: LayoutPosColorUV,
	}
}

// Cube returns a unit cube centred on the origin as 36 vertices with
// outward face normals.
func Cube() *Mesh {
	type face struct {
		normal [3]float32
		// four corners, counter-clockwise seen from outside
		corners [4][3]float32
	}
	const h = 0.5
	faces := []face{
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
	}

	verts := make([]float32, 0, 36*6)
	for _, f := range faces {
		for _, c := range [6]int{0, 1, 2, 2, 3, 0} {
			p := f.corners[c]
			verts = append(verts, p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}

	return &Mesh{
		Name:     "cube",
		Vertices: verts,
		Layout:   LayoutPosNormal,
	}
}
