// Package models loads triangle meshes into vector3 positions.
package models

import (
	"math"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin vector3.Vector
	BoundsMax vector3.Vector
}

// Vertex holds all vertex attributes.
type Vertex struct {
	Position vector3.Vector
	Normal   vector3.Vector
	UV       vector2.Vector
}

// Face is a triangle of indices into Mesh.Vertices, counter-clockwise when
// seen from the front.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0),
		Faces:    make([]Face, 0),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = vector3.Origin(), vector3.Origin()
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() vector3.Vector {
	return m.BoundsMin.Lerp(m.BoundsMax, 0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() vector3.Vector {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// UVBounds returns the range covered by texture coordinates.
func (m *Mesh) UVBounds() (min, max vector2.Vector) {
	if len(m.Vertices) == 0 {
		return vector2.Origin(), vector2.Origin()
	}
	min, max = m.Vertices[0].UV, m.Vertices[0].UV
	for _, v := range m.Vertices[1:] {
		min = min.Min(v.UV)
		max = max.Max(v.UV)
	}
	return min, max
}

// faceNormal returns the unnormalized normal of face f; its length is twice
// the triangle area.
func (m *Mesh) faceNormal(f Face) vector3.Vector {
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// SurfaceArea returns the total area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	area := 0.0
	for _, f := range m.Faces {
		area += m.faceNormal(f).Len() * 0.5
	}
	return area
}

// Centroid returns the area-weighted center of the surface. Meshes without
// area fall back to the average vertex position.
func (m *Mesh) Centroid() vector3.Vector {
	sum := vector3.Origin()
	total := 0.0
	for _, f := range m.Faces {
		a := m.faceNormal(f).Len() * 0.5
		c := m.Vertices[f.V[0]].Position.
			Add(m.Vertices[f.V[1]].Position).
			Add(m.Vertices[f.V[2]].Position).
			DivScalar(3)
		sum = sum.Add(c.MulScalar(a))
		total += a
	}
	if total > 0 {
		return sum.DivScalar(total)
	}

	if len(m.Vertices) == 0 {
		return vector3.Origin()
	}
	for _, v := range m.Vertices {
		sum = sum.Add(v.Position)
	}
	return sum.DivScalar(float64(len(m.Vertices)))
}

// CalculateNormals computes face normals and assigns them to vertices.
// This is a simple flat-shading approach; shared vertices keep the normal of
// the last face that touches them.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		normal := m.faceNormal(f).Normalize()
		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// CalculateSmoothNormals computes area-weighted averaged normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = vector3.Origin()
	}

	for _, f := range m.Faces {
		normal := m.faceNormal(f) // Don't normalize yet
		for _, idx := range f.V {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Translate moves every vertex by offset.
func (m *Mesh) Translate(offset vector3.Vector) {
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Add(offset)
	}
	m.CalculateBounds()
}

// Scale scales every vertex component-wise about the origin. Normals are
// transformed by the inverse scale so they stay perpendicular to the surface.
func (m *Mesh) Scale(factor vector3.Vector) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = v.Position.Mul(factor)
		v.Normal = v.Normal.Div(factor).Normalize()
	}
	m.CalculateBounds()
}

// Rotate rotates every vertex and normal by angle (radians) about axis
// through the origin.
func (m *Mesh) Rotate(angle float64, axis vector3.Vector) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = v.Position.Rotate(angle, axis)
		v.Normal = v.Normal.Rotate(angle, axis)
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it uniformly so its largest
// dimension equals size.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	m.Translate(m.Center().Negate())

	dims := m.Size()
	maxDim := math.Max(dims.X, math.Max(dims.Y, dims.Z))
	if maxDim > 0 {
		s := size / maxDim
		m.Scale(vector3.New(s, s, s))
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
