package scene

import (
	"errors"
	"fmt"
)

// FloatSize is the size in bytes of one vertex component.
const FloatSize = 4

// Attribute describes one vertex attribute inside an interleaved vertex.
// Size and Offset are counted in float32 components.
type Attribute struct {
	Location uint32
	Size     int32
	Offset   int
}

// VertexLayout describes how interleaved float data maps to shader inputs.
type VertexLayout struct {
	Stride     int // components per vertex
	Attributes []Attribute
}

// StrideBytes returns the distance between consecutive vertices in bytes.
func (l VertexLayout) StrideBytes() int32 {
	return int32(l.Stride * FloatSize)
}

// Validate checks that every attribute fits inside the stride.
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return errors.New("vertex layout: stride must be positive")
	}
	seen := make(map[uint32]bool, len(l.Attributes))
	for _, a := range l.Attributes {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("vertex layout: attribute %d has size %d", a.Location, a.Size)
		}
		if a.Offset < 0 || a.Offset+int(a.Size) > l.Stride {
			return fmt.Errorf("vertex layout: attribute %d overflows stride %d", a.Location, l.Stride)
		}
		if seen[a.Location] {
			return fmt.Errorf("vertex layout: location %d used twice", a.Location)
		}
		seen[a.Location] = true
	}
	return nil
}

var (
	// LayoutPosColor is position(0) vec3 + color(1) vec3.
	LayoutPosColor = VertexLayout{
		Stride: 6,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 3, Offset: 3},
		},
	}
	// LayoutPosColorUV is position(0) vec3 + color(1) vec3 + uv(2) vec2.
	LayoutPosColorUV = VertexLayout{
		Stride: 8,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 3, Offset: 3},
			{Location: 2, Size: 2, Offset: 6},
		},
	}
	// LayoutPosNormal is position(0) vec3 + normal(1) vec3.
	LayoutPosNormal = VertexLayout{
		Stride: 6,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 3, Offset: 3},
		},
	}
	// LayoutPosNormalUV is position(0) vec3 + normal(1) vec3 + uv(2) vec2.
	LayoutPosNormalUV = VertexLayout{
		Stride: 8,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 3, Offset: 3},
			{Location: 2, Size: 2, Offset: 6},
		},
	}
)

// Mesh holds static CPU-side vertex data. GPU upload is done by the
// backend.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// VertexCount returns the number of whole vertices in Vertices.
func (m *Mesh) VertexCount() int {
	if m.Layout.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Layout.Stride
}

// DrawCount is the number of elements a draw call should submit.
func (m *Mesh) DrawCount() int32 {
	if len(m.Indices) > 0 {
		return int32(len(m.Indices))
	}
	return int32(m.VertexCount())
}

// Validate checks the layout and that the vertex and index data agree
// with it.
func (m *Mesh) Validate() error {
	if err := m.Layout.Validate(); err != nil {
		return fmt.Errorf("mesh %q: %w", m.Name, err)
	}
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q: no vertices", m.Name)
	}
	if len(m.Vertices)%m.Layout.Stride != 0 {
		return fmt.Errorf("mesh %q: %d floats is not a multiple of stride %d", m.Name, len(m.Vertices), m.Layout.Stride)
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh %q: index %d refers to vertex %d of %d", m.Name, i, idx, n)
		}
	}
	return nil
}
