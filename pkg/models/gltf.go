package models

import (
	"fmt"
	"path/filepath"

	"fortio.org/log"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"gonum.org/v1/gonum/num/quat"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	CalculateNormals bool // Compute normals when the file has none
	SmoothNormals    bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
	}
}

// LoadGLTF loads a .gltf or .glb file with default options.
func LoadGLTF(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.LoadDocument(doc, filepath.Base(path))
}

// LoadDocument flattens every triangle primitive reachable from the default
// scene into one mesh, with node transforms applied.
func (l *GLTFLoader) LoadDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	switch {
	case len(doc.Scenes) > 0:
		sceneIdx := 0
		if doc.Scene != nil {
			sceneIdx = int(*doc.Scene)
		}
		if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
			return nil, fmt.Errorf("scene %d out of range (%d scenes)", sceneIdx, len(doc.Scenes))
		}
		for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
			if err := l.processNode(doc, int(nodeIdx), identity, mesh, 0); err != nil {
				return nil, err
			}
		}
	case len(doc.Nodes) > 0:
		for _, i := range rootNodes(doc) {
			if err := l.processNode(doc, i, identity, mesh, 0); err != nil {
				return nil, err
			}
		}
	default:
		// Bare geometry without a node graph
		for _, m := range doc.Meshes {
			if err := l.processMesh(doc, m, identity, mesh); err != nil {
				return nil, err
			}
		}
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if !v.Normal.IsOrigin() {
			hasNormals = true
			break
		}
	}
	if l.CalculateNormals && !hasNormals {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}

	mesh.CalculateBounds()
	log.Debugf("gltf %s: %d vertices, %d triangles", name, mesh.VertexCount(), mesh.TriangleCount())
	return mesh, nil
}

// rootNodes returns the nodes that are nobody's child.
func rootNodes(doc *gltf.Document) []int {
	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, child := range n.Children {
			if c := int(child); c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

// transform maps local positions and normals into world space. Normals come
// out unnormalized.
type transform struct {
	point  func(vector3.Vector) vector3.Vector
	normal func(vector3.Vector) vector3.Vector
}

var identity = transform{
	point:  func(v vector3.Vector) vector3.Vector { return v },
	normal: func(v vector3.Vector) vector3.Vector { return v },
}

// then returns the transform applying t first and parent second.
func (t transform) then(parent transform) transform {
	return transform{
		point:  func(v vector3.Vector) vector3.Vector { return parent.point(t.point(v)) },
		normal: func(v vector3.Vector) vector3.Vector { return parent.normal(t.normal(v)) },
	}
}

// rotateQuat rotates v by the unit quaternion q as q·v·q*.
func rotateQuat(q quat.Number, v vector3.Vector) vector3.Vector {
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return vector3.New(r.Imag, r.Jmag, r.Kmag)
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// localTransform builds a node's transform from its matrix or its
// translation, rotation and scale. Zero rotation, scale and matrix values are
// treated as unset.
func localTransform(node *gltf.Node) transform {
	if m := node.Matrix; m != identityMatrix && m != [16]float64{} {
		// Column-major 4x4
		return transform{
			point: func(v vector3.Vector) vector3.Vector {
				return vector3.New(
					m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
					m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
					m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14],
				)
			},
			normal: func(v vector3.Vector) vector3.Vector {
				return vector3.New(
					m[0]*v.X+m[4]*v.Y+m[8]*v.Z,
					m[1]*v.X+m[5]*v.Y+m[9]*v.Z,
					m[2]*v.X+m[6]*v.Y+m[10]*v.Z,
				)
			},
		}
	}

	t := vector3.New(node.Translation[0], node.Translation[1], node.Translation[2])
	s := vector3.New(1, 1, 1)
	if node.Scale != [3]float64{0, 0, 0} {
		s = vector3.New(node.Scale[0], node.Scale[1], node.Scale[2])
	}
	q := quat.Number{Real: 1}
	if r := node.Rotation; r != [4]float64{0, 0, 0, 0} {
		// glTF stores x, y, z, w
		q = quat.Number{Real: r[3], Imag: r[0], Jmag: r[1], Kmag: r[2]}
	}

	return transform{
		point: func(v vector3.Vector) vector3.Vector {
			return rotateQuat(q, v.Mul(s)).Add(t)
		},
		normal: func(v vector3.Vector) vector3.Vector {
			// Inverse transpose of R·S is R·S⁻¹
			return rotateQuat(q, v.Div(s))
		},
	}
}

// processNode recursively processes a node and its children, accumulating transforms.
// depth counts ancestors; a node graph deeper than the node count has a cycle.
func (l *GLTFLoader) processNode(doc *gltf.Document, nodeIdx int, parent transform, mesh *Mesh, depth int) error {
	if nodeIdx < 0 || nodeIdx >= len(doc.Nodes) {
		return fmt.Errorf("node %d out of range", nodeIdx)
	}
	if depth > len(doc.Nodes) {
		return fmt.Errorf("node %d: cycle in node hierarchy", nodeIdx)
	}
	node := doc.Nodes[nodeIdx]
	world := localTransform(node).then(parent)

	if node.Mesh != nil {
		meshIdx := int(*node.Mesh)
		if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
			return fmt.Errorf("node %q: mesh %d out of range", node.Name, meshIdx)
		}
		if err := l.processMesh(doc, doc.Meshes[meshIdx], world, mesh); err != nil {
			return fmt.Errorf("node %q: %w", node.Name, err)
		}
	}

	for _, childIdx := range node.Children {
		if err := l.processNode(doc, int(childIdx), world, mesh, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// accessor returns doc.Accessors[idx] or an error naming the attribute.
func accessor(doc *gltf.Document, idx int, what string) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%s accessor %d out of range", what, idx)
	}
	return doc.Accessors[idx], nil
}

// processMesh appends the triangle primitives of m to mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, xf transform, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		acr, err := accessor(doc, posIdx, "position")
		if err != nil {
			return err
		}
		positions, err := modeler.ReadPosition(doc, acr, nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
			if acr, err = accessor(doc, idx, "normal"); err != nil {
				return err
			}
			normals, err = modeler.ReadNormal(doc, acr, nil)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		var uvs [][2]float32
		if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			if acr, err = accessor(doc, idx, "texcoord"); err != nil {
				return err
			}
			uvs, err = modeler.ReadTextureCoord(doc, acr, nil)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		base := len(mesh.Vertices)
		for i, p := range positions {
			v := Vertex{Position: xf.point(vector3.FromF32(p))}
			if i < len(normals) {
				v.Normal = xf.normal(vector3.FromF32(normals[i])).Normalize()
			}
			if i < len(uvs) {
				v.UV = vector2.FromF32(uvs[i])
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []uint32
		if prim.Indices != nil {
			if acr, err = accessor(doc, int(*prim.Indices), "index"); err != nil {
				return err
			}
			indices, err = modeler.ReadIndices(doc, acr, nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for _, idx := range indices {
				if int(idx) >= len(positions) {
					return fmt.Errorf("vertex index %d out of range (%d positions)", idx, len(positions))
				}
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{V: [3]int{
				base + int(indices[i]),
				base + int(indices[i+1]),
				base + int(indices[i+2]),
			}})
		}
	}
	return nil
}
