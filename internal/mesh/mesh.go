package mesh

import (
	"github.com/chewxy/math32"

	"arenagen/internal/layout"
)

// Mesh is triangle geometry with flat buffers: three floats per vertex in
// Vertices and Normals, three indices per triangle in Indices. This is the
// raw buffer deformation ops mutate and the exporter reads.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]float32, len(m.Vertices)),
		Normals:  make([]float32, len(m.Normals)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Normals, m.Normals)
	copy(c.Indices, m.Indices)
	return c
}

// Append merges other into m, offsetting indices.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Transform bakes the pose into the vertex buffer: Euler XYZ rotation
// (applied X, then Y, then Z) followed by translation. Normals get the
// rotation only.
func (m *Mesh) Transform(pose layout.Pose) {
	rot := eulerMatrix(pose.Rotation)
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		x, y, z := rot.apply(m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2])
		m.Vertices[i] = x + pose.Position[0]
		m.Vertices[i+1] = y + pose.Position[1]
		m.Vertices[i+2] = z + pose.Position[2]
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		m.Normals[i], m.Normals[i+1], m.Normals[i+2] =
			rot.apply(m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}
}

// Scale multiplies every vertex coordinate per axis.
func (m *Mesh) Scale(sx, sy, sz float32) {
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		m.Vertices[i] *= sx
		m.Vertices[i+1] *= sy
		m.Vertices[i+2] *= sz
	}
}

// RecomputeNormals rebuilds smooth per-vertex normals by accumulating
// area-weighted face normals. Shared vertices average across faces, which is
// what whole-mesh smooth shading expects.
func (m *Mesh) RecomputeNormals() {
	n := make([]float32, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]*3, m.Indices[i+1]*3, m.Indices[i+2]*3
		e1x := m.Vertices[b] - m.Vertices[a]
		e1y := m.Vertices[b+1] - m.Vertices[a+1]
		e1z := m.Vertices[b+2] - m.Vertices[a+2]
		e2x := m.Vertices[c] - m.Vertices[a]
		e2y := m.Vertices[c+1] - m.Vertices[a+1]
		e2z := m.Vertices[c+2] - m.Vertices[a+2]
		fx := e1y*e2z - e1z*e2y
		fy := e1z*e2x - e1x*e2z
		fz := e1x*e2y - e1y*e2x
		for _, v := range []uint32{a, b, c} {
			n[v] += fx
			n[v+1] += fy
			n[v+2] += fz
		}
	}
	for i := 0; i+2 < len(n); i += 3 {
		l := math32.Sqrt(n[i]*n[i] + n[i+1]*n[i+1] + n[i+2]*n[i+2])
		if l > 0 {
			n[i] /= l
			n[i+1] /= l
			n[i+2] /= l
		} else {
			n[i+2] = 1
		}
	}
	m.Normals = n
}

// mat3 is a row-major 3x3 rotation matrix.
type mat3 [9]float32

func (r mat3) apply(x, y, z float32) (float32, float32, float32) {
	return r[0]*x + r[1]*y + r[2]*z,
		r[3]*x + r[4]*y + r[5]*z,
		r[6]*x + r[7]*y + r[8]*z
}

func (r mat3) mul(o mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = r[i*3]*o[j] + r[i*3+1]*o[3+j] + r[i*3+2]*o[6+j]
		}
	}
	return out
}

// eulerMatrix builds Rz*Ry*Rx so rotations apply in X, Y, Z order.
func eulerMatrix(rot [3]float32) mat3 {
	sx, cx := math32.Sincos(rot[0])
	sy, cy := math32.Sincos(rot[1])
	sz, cz := math32.Sincos(rot[2])
	rx := mat3{1, 0, 0, 0, cx, -sx, 0, sx, cx}
	ry := mat3{cy, 0, sy, 0, 1, 0, -sy, 0, cy}
	rz := mat3{cz, -sz, 0, sz, cz, 0, 0, 0, 1}
	return rz.mul(ry).mul(rx)
}
