package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load loads a mesh from path, choosing the loader by file extension.
// smooth requests averaged vertex normals where the format leaves that open.
func Load(path string, smooth bool) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		l := NewGLTFLoader()
		l.SmoothNormals = smooth
		return l.Load(path)
	case ".obj":
		l := NewOBJLoader()
		l.SmoothNormals = smooth
		return l.LoadFile(path)
	case ".stl":
		l := NewSTLLoader()
		l.SmoothNormals = smooth
		return l.LoadFile(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .glb, .gltf or .stl)", ext)
	}
}
