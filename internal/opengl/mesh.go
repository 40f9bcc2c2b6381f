package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"gltutorials/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	Count      int32
	HasIndices bool
}

// UploadMesh copies the mesh's vertex and index data into static buffers and
// records its attribute layout in a new vertex array.
func UploadMesh(mesh *scene.Mesh) (*GPUMesh, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	gpu := &GPUMesh{
		Count:      mesh.DrawCount(),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*scene.FloatSize, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	bindLayout(mesh.Layout)

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return gpu, nil
}

// ShareVertices creates a second vertex array over the same vertex buffer
// with a different layout, such as a light cube that only reads positions.
func (m *GPUMesh) ShareVertices(layout scene.VertexLayout) (*GPUMesh, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	shared := &GPUMesh{VBO: m.VBO, EBO: m.EBO, Count: m.Count, HasIndices: m.HasIndices}

	gl.GenVertexArrays(1, &shared.VAO)
	gl.BindVertexArray(shared.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	bindLayout(layout)
	if m.HasIndices {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return shared, nil
}

func bindLayout(layout scene.VertexLayout) {
	stride := layout.StrideBytes()
	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(a.Offset*scene.FloatSize))
		gl.EnableVertexAttribArray(a.Location)
	}
}

// Draw issues the draw call for the mesh with whatever program is active.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.HasIndices {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	}
	gl.BindVertexArray(0)
}

// Release frees the vertex array. Buffers are freed unless shared is true,
// which is the case for meshes returned by ShareVertices.
func (m *GPUMesh) Release(shared bool) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if shared {
		return
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
		m.EBO = 0
	}
}
