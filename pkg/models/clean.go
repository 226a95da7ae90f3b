package models

import (
	"fortio.org/log"
)

// minFaceArea is the area below which a face counts as degenerate.
const minFaceArea = 1e-10

// faceKey creates a canonical key for a face by sorting vertex indices.
// Two faces with the same vertices (in any order) will have the same key.
func faceKey(v [3]int) [3]int {
	v0, v1, v2 := v[0], v[1], v[2]
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	return [3]int{v0, v1, v2}
}

// keepFaces replaces m.Faces with the faces for which keep returns true and
// returns how many were dropped.
func (m *Mesh) keepFaces(keep func(i int, f Face) bool) int {
	kept := make([]Face, 0, len(m.Faces))
	for i, f := range m.Faces {
		if keep(i, f) {
			kept = append(kept, f)
		}
	}
	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

// DeduplicateFaces removes faces that use the same three vertices as an
// earlier face, regardless of winding. Returns the number of faces removed.
func (m *Mesh) DeduplicateFaces() int {
	seen := make(map[[3]int]bool, len(m.Faces))
	return m.keepFaces(func(_ int, f Face) bool {
		key := faceKey(f.V)
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}

// RemoveInternalFaces removes pairs of faces sharing the same vertices with
// opposite normals. Such pairs show up where meshes were merged and enclose no
// visible surface. Returns the number of faces removed.
func (m *Mesh) RemoveInternalFaces() int {
	type faceInfo struct {
		index int
		key   [3]int
	}
	groups := make(map[[3]int][]faceInfo)
	for i, f := range m.Faces {
		key := faceKey(f.V)
		groups[key] = append(groups[key], faceInfo{index: i, key: key})
	}

	toRemove := make(map[int]bool)
	for _, faces := range groups {
		if len(faces) < 2 {
			continue
		}
		for i := range faces {
			if toRemove[faces[i].index] {
				continue
			}
			ni := m.faceNormal(m.Faces[faces[i].index]).Normalize()
			for j := i + 1; j < len(faces); j++ {
				if toRemove[faces[j].index] {
					continue
				}
				nj := m.faceNormal(m.Faces[faces[j].index]).Normalize()
				// Roughly opposite normals
				if ni.Dot(nj) < -0.99 {
					toRemove[faces[i].index] = true
					toRemove[faces[j].index] = true
					break
				}
			}
		}
	}

	if len(toRemove) == 0 {
		return 0
	}
	return m.keepFaces(func(i int, _ Face) bool { return !toRemove[i] })
}

// RemoveDegenerateFaces removes faces with repeated indices or near-zero area.
// Returns the number of faces removed.
func (m *Mesh) RemoveDegenerateFaces() int {
	return m.keepFaces(func(_ int, f Face) bool {
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			return false
		}
		return m.faceNormal(f).Len()*0.5 > minFaceArea
	})
}

// RemoveUnreferencedVertices removes vertices no face uses, compacting the
// vertex array and remapping face indices.
func (m *Mesh) RemoveUnreferencedVertices() int {
	if len(m.Faces) == 0 || len(m.Vertices) == 0 {
		return 0
	}

	referenced := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		for _, idx := range f.V {
			referenced[idx] = true
		}
	}

	newIndex := make([]int, len(m.Vertices))
	vertices := make([]Vertex, 0, len(m.Vertices))
	for i, v := range m.Vertices {
		if referenced[i] {
			newIndex[i] = len(vertices)
			vertices = append(vertices, v)
		}
	}

	for i := range m.Faces {
		for j := range m.Faces[i].V {
			m.Faces[i].V[j] = newIndex[m.Faces[i].V[j]]
		}
	}

	removed := len(m.Vertices) - len(vertices)
	m.Vertices = vertices
	return removed
}

// CleanMesh removes degenerate, internal and duplicate faces, then drops
// unreferenced vertices. Internal faces must go before deduplication, which
// would otherwise keep one face of each opposing pair.
// Returns the total number of faces removed.
func (m *Mesh) CleanMesh() int {
	removed := m.RemoveDegenerateFaces()
	removed += m.RemoveInternalFaces()
	removed += m.DeduplicateFaces()
	vertices := m.RemoveUnreferencedVertices()
	m.CalculateBounds()
	log.S(log.Debug, "cleaned mesh", log.Str("name", m.Name), log.Attr("faces_removed", removed),
		log.Attr("vertices_removed", vertices))
	return removed
}
