package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// OBJLoader loads Wavefront OBJ files.
type OBJLoader struct {
	CalculateNormals bool // Compute normals when the file has no vn lines
	SmoothNormals    bool
}

// NewOBJLoader creates a new OBJ loader with default settings.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{CalculateNormals: true}
}

// LoadOBJ loads an OBJ file with default settings.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().LoadFile(path)
}

// LoadFile loads an OBJ file from disk.
func (l *OBJLoader) LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()
	return l.Load(f, path)
}

// objCorner identifies one face corner: a position, uv and normal index
// triple, each -1 when absent. Corners with equal triples share a vertex.
type objCorner struct {
	pos, uv, normal int
}

// objBuilder accumulates the separately indexed OBJ attribute pools and
// emits unified mesh vertices.
type objBuilder struct {
	mesh      *Mesh
	positions []vector3.Vector
	uvs       []vector2.Vector
	normals   []vector3.Vector
	corners   map[objCorner]int
}

// Load parses an OBJ from a reader. Polygons are fan triangulated, keeping
// the file's counter-clockwise winding.
func (l *OBJLoader) Load(r io.Reader, name string) (*Mesh, error) {
	b := &objBuilder{mesh: NewMesh(name), corners: make(map[objCorner]int)}

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		if err := b.statement(strings.Fields(scanner.Text())); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh := b.mesh
	mesh.CalculateBounds()
	if l.CalculateNormals && len(b.normals) == 0 {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}
	log.Debugf("obj %s: %d vertices, %d triangles", name, mesh.VertexCount(), mesh.TriangleCount())
	return mesh, nil
}

// statement applies one tokenized line. Unknown keywords (mtllib, usemtl,
// s, l, ...) are ignored.
func (b *objBuilder) statement(fields []string) error {
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	args := fields[1:]
	switch fields[0] {
	case "v":
		p, err := parseVector3(args, "vertex")
		if err != nil {
			return err
		}
		b.positions = append(b.positions, p)
	case "vt":
		uv, err := parseVector2(args, "texture coord")
		if err != nil {
			return err
		}
		b.uvs = append(b.uvs, uv)
	case "vn":
		n, err := parseVector3(args, "normal")
		if err != nil {
			return err
		}
		b.normals = append(b.normals, n.Normalize())
	case "f":
		return b.face(args)
	case "o", "g":
		if len(args) > 0 {
			b.mesh.Name = args[0]
		}
	}
	return nil
}

// face resolves every corner and appends the fan triangles.
func (b *objBuilder) face(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(corners))
	}
	idx := make([]int, len(corners))
	for i, c := range corners {
		v, err := b.vertex(c)
		if err != nil {
			return err
		}
		idx[i] = v
	}
	for i := 1; i+1 < len(idx); i++ {
		b.mesh.Faces = append(b.mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
	}
	return nil
}

// vertex returns the mesh vertex for a "v/vt/vn" corner, creating it the
// first time the triple is seen.
func (b *objBuilder) vertex(spec string) (int, error) {
	pos, uv, normal, err := parseFaceVertex(spec)
	if err != nil {
		return 0, err
	}
	c := objCorner{
		pos:    resolveIndex(pos, len(b.positions)),
		uv:     resolveIndex(uv, len(b.uvs)),
		normal: resolveIndex(normal, len(b.normals)),
	}
	if c.pos < 0 || c.pos >= len(b.positions) {
		return 0, fmt.Errorf("position index %d out of range", pos)
	}
	if uv != 0 && (c.uv < 0 || c.uv >= len(b.uvs)) {
		return 0, fmt.Errorf("texture index %d out of range", uv)
	}
	if normal != 0 && (c.normal < 0 || c.normal >= len(b.normals)) {
		return 0, fmt.Errorf("normal index %d out of range", normal)
	}

	if i, ok := b.corners[c]; ok {
		return i, nil
	}
	v := Vertex{Position: b.positions[c.pos]}
	if c.uv >= 0 {
		v.UV = b.uvs[c.uv]
	}
	if c.normal >= 0 {
		v.Normal = b.normals[c.normal]
	}
	i := len(b.mesh.Vertices)
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.corners[c] = i
	return i, nil
}

// parseFaceVertex splits a face corner written as v, v/vt, v/vt/vn or v//vn.
// Values stay 1-based as written; 0 means absent.
func parseFaceVertex(s string) (pos, uv, normal int, err error) {
	parts := strings.SplitN(s, "/", 3)
	names := [3]string{"vertex", "texture", "normal"}
	var out [3]int
	for i, p := range parts {
		if p == "" && i > 0 {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s index: %s", names[i], p)
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}

// resolveIndex turns a 1-based or negative (relative to count) OBJ index
// into a 0-based one; 0 maps to -1.
func resolveIndex(idx, count int) int {
	switch {
	case idx > 0:
		return idx - 1
	case idx < 0:
		return count + idx
	default:
		return -1
	}
}
