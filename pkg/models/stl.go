package models

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/karai17/crml/pkg/vector3"
)

// STLLoader loads STL (stereolithography) files in both ASCII and binary formats.
type STLLoader struct {
	SmoothNormals bool // If true, average normals per-vertex for smooth shading
}

// NewSTLLoader creates a new STL loader with default settings.
func NewSTLLoader() *STLLoader {
	return &STLLoader{}
}

// LoadFile loads an STL file from disk.
func (l *STLLoader) LoadFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL file: %w", err)
	}
	return l.LoadBytes(data, path)
}

// Load parses STL from a reader.
// Note: This reads the entire content into memory to detect format.
func (l *STLLoader) Load(r io.Reader, name string) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}
	return l.LoadBytes(data, name)
}

// LoadBytes parses STL from a byte slice.
func (l *STLLoader) LoadBytes(data []byte, name string) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)
	if isBinarySTL(data) {
		mesh, err = l.loadBinary(data, name)
	} else {
		mesh, err = l.loadASCII(data, name)
	}
	if err != nil {
		return nil, err
	}

	mesh.CalculateBounds()
	if l.SmoothNormals {
		mesh.CalculateSmoothNormals()
	}
	log.Debugf("stl %s: %d vertices, %d triangles", name, mesh.VertexCount(), mesh.TriangleCount())
	return mesh, nil
}

// isBinarySTL detects if the data is binary STL format.
// Binary STL starts with 80-byte header, then 4-byte triangle count.
// ASCII STL starts with "solid", but so do some binary headers, so the
// triangle count is checked against the file size.
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		triCount := binary.LittleEndian.Uint32(data[80:84])
		return uint64(len(data)) == 84+uint64(triCount)*50
	}
	return true
}

// vertexIndex deduplicates positions while building a mesh.
type vertexIndex struct {
	mesh  *Mesh
	index map[vector3.Vector]int
}

func newVertexIndex(mesh *Mesh) *vertexIndex {
	return &vertexIndex{mesh: mesh, index: make(map[vector3.Vector]int)}
}

// add returns the index of pos, appending a new vertex on first sight.
func (vi *vertexIndex) add(pos, normal vector3.Vector) int {
	if idx, ok := vi.index[pos]; ok {
		return idx
	}
	idx := len(vi.mesh.Vertices)
	vi.mesh.Vertices = append(vi.mesh.Vertices, Vertex{Position: pos, Normal: normal})
	vi.index[pos] = idx
	return idx
}

func readVector3LE(data []byte) vector3.Vector {
	return vector3.New(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(data))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(data[8:]))),
	)
}

// loadBinary parses binary STL format.
func (l *STLLoader) loadBinary(data []byte, name string) (*Mesh, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("binary STL too short: %d bytes", len(data))
	}

	// Skip 80-byte header
	triCount := binary.LittleEndian.Uint32(data[80:84])
	expectedSize := 84 + uint64(triCount)*50
	if uint64(len(data)) < expectedSize {
		return nil, fmt.Errorf("binary STL truncated: expected %d bytes, got %d", expectedSize, len(data))
	}

	mesh := NewMesh(name)
	vertices := newVertexIndex(mesh)

	offset := 84
	for range triCount {
		normal := readVector3LE(data[offset:]).Normalize()
		offset += 12

		var face Face
		for v := range 3 {
			face.V[v] = vertices.add(readVector3LE(data[offset:]), normal)
			offset += 12
		}

		// Skip 2-byte attribute byte count
		offset += 2
		mesh.Faces = append(mesh.Faces, face)
	}

	return mesh, nil
}

// loadASCII parses ASCII STL format.
func (l *STLLoader) loadASCII(data []byte, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	vertices := newVertexIndex(mesh)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var normal vector3.Vector
	var faceVerts []int
	inFacet, inLoop := false, false

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}

		case "facet":
			if len(fields) >= 5 && strings.ToLower(fields[1]) == "normal" {
				n, err := parseVector3(fields[2:], "normal")
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				normal = n.Normalize()
			}
			inFacet = true
			faceVerts = faceVerts[:0]

		case "outer":
			if len(fields) >= 2 && strings.ToLower(fields[1]) == "loop" {
				inLoop = true
			}

		case "vertex":
			if !inFacet || !inLoop {
				return nil, fmt.Errorf("line %d: vertex outside facet/loop", lineNum)
			}
			pos, err := parseVector3(fields[1:], "vertex")
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			faceVerts = append(faceVerts, vertices.add(pos, normal))

		case "endloop":
			inLoop = false

		case "endfacet":
			if len(faceVerts) >= 3 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{faceVerts[0], faceVerts[1], faceVerts[2]}})
			}
			inFacet = false
			faceVerts = faceVerts[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return mesh, nil
}

// LoadSTL is a convenience function to load an STL file with default settings.
func LoadSTL(path string) (*Mesh, error) {
	return NewSTLLoader().LoadFile(path)
}
