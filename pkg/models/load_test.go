package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karai17/crml/pkg/vector3"
)

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	stlPath := filepath.Join(dir, "square.STL")
	require.NoError(t, os.WriteFile(stlPath, []byte(squareSTL), 0o600))

	objPath := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(objPath, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o600))

	glbPath := filepath.Join(dir, "tri.glb")
	require.NoError(t, gltf.SaveBinary(triangleDocument(&gltf.Node{}), glbPath))

	tests := []struct {
		path      string
		triangles int
	}{
		{stlPath, 2},
		{objPath, 1},
		{glbPath, 1},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			mesh, err := Load(tt.path, true)
			require.NoError(t, err)
			assert.Equal(t, tt.triangles, mesh.TriangleCount())
			assert.Equal(t, vector3.Origin(), mesh.BoundsMin)
			assert.Equal(t, vector3.UnitZ(), mesh.Vertices[0].Normal)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("model.fbx", false)
	require.Error(t, err)
	assert.Equal(t, "unsupported format: .fbx (use .obj, .glb, .gltf or .stl)", err.Error())

	_, err = Load(filepath.Join(t.TempDir(), "missing.stl"), false)
	assert.Error(t, err)
}
