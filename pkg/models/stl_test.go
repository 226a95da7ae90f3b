package models

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karai17/crml/pkg/vector3"
)

const squareSTL = `solid cube
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid cube`

// binarySTL encodes triangles as a binary STL. Each triangle is a normal
// followed by three vertices.
func binarySTL(t *testing.T, header string, triangles ...[4][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, 80)
	copy(h, header)
	buf.Write(h)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(triangles))))
	for _, tri := range triangles {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, tri))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	return buf.Bytes()
}

var unitTriangle = [4][3]float32{
	{0, 0, 2}, // unnormalized on purpose
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
}

func TestSTLLoaderASCII(t *testing.T) {
	mesh, err := NewSTLLoader().Load(strings.NewReader(squareSTL), "test.stl")
	require.NoError(t, err)

	assert.Equal(t, "cube", mesh.Name)
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, 4, mesh.VertexCount(), "shared corners are deduplicated")
	assert.Equal(t, vector3.New(0, 0, -1), mesh.Vertices[0].Normal)
	assert.Equal(t, [3]int{0, 2, 3}, mesh.Faces[1].V)
}

func TestSTLLoaderBinary(t *testing.T) {
	data := binarySTL(t, "Binary STL test", unitTriangle)
	require.Len(t, data, 84+50)

	mesh, err := NewSTLLoader().LoadBytes(data, "tri.stl")
	require.NoError(t, err)

	assert.Equal(t, "tri.stl", mesh.Name)
	assert.Equal(t, 1, mesh.TriangleCount())
	require.Equal(t, 3, mesh.VertexCount())
	assert.Equal(t, vector3.New(1, 0, 0), mesh.Vertices[1].Position)
	assert.Equal(t, vector3.UnitZ(), mesh.Vertices[0].Normal)
}

func TestSTLDetection(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"too short", []byte("solid x"), false},
		{"ascii", []byte(squareSTL), false},
		{"binary", binarySTL(t, "exported mesh", unitTriangle), true},
		{"binary with solid header", binarySTL(t, "solid but binary", unitTriangle), true},
		{"binary zero header", binarySTL(t, "", unitTriangle, unitTriangle), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBinarySTL(tt.data))
		})
	}
}

func TestSTLVertexDeduplication(t *testing.T) {
	second := [4][3]float32{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	mesh, err := NewSTLLoader().LoadBytes(binarySTL(t, "quad", unitTriangle, second), "quad")
	require.NoError(t, err)

	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, [3]int{1, 3, 2}, mesh.Faces[1].V)
}

func TestSTLSmoothNormals(t *testing.T) {
	loader := &STLLoader{SmoothNormals: true}
	mesh, err := loader.Load(strings.NewReader(squareSTL), "test.stl")
	require.NoError(t, err)

	// The file claims -Z but the winding faces +Z.
	for i, v := range mesh.Vertices {
		assert.Equal(t, vector3.UnitZ(), v.Normal, "vertex %d", i)
	}
}

func TestSTLBounds(t *testing.T) {
	mesh, err := NewSTLLoader().Load(strings.NewReader(squareSTL), "test.stl")
	require.NoError(t, err)
	assert.Equal(t, vector3.Origin(), mesh.BoundsMin)
	assert.Equal(t, vector3.New(1, 1, 0), mesh.BoundsMax)
	assert.Equal(t, vector3.New(0.5, 0.5, 0), mesh.Center())
}

func TestSTLErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{
			name:    "vertex outside loop",
			data:    []byte("solid x\nfacet normal 0 0 1\nvertex 0 0 0\n"),
			wantErr: "line 3: vertex outside facet/loop",
		},
		{
			name:    "bad coordinate",
			data:    []byte("solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 nope 0\n"),
			wantErr: "line 4: invalid vertex y",
		},
		{
			name:    "short vertex",
			data:    []byte("solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0\n"),
			wantErr: "vertex needs x y z",
		},
		{
			name:    "truncated binary",
			data:    binarySTL(t, "", unitTriangle, unitTriangle)[:84+50],
			wantErr: "binary STL truncated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSTLLoader().LoadBytes(tt.data, "bad.stl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
