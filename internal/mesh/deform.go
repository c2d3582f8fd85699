package mesh

// Axis selects a coordinate for deformation ops.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Taper scales the two off-axis coordinates of every vertex above the base
// (positive axis coordinate) by lerp(startScale, endScale, t), where t is
// the vertex height fraction along the axis. Pillar shafts use this to
// narrow toward the top.
func Taper(m *Mesh, axis Axis, total, startScale, endScale float32) {
	if total <= 0 {
		return
	}
	a := int(axis)
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		c := m.Vertices[i+a]
		if c <= 0 {
			continue
		}
		t := c / total
		s := startScale + (endScale-startScale)*t
		for off := 0; off < 3; off++ {
			if off != a {
				m.Vertices[i+off] *= s
			}
		}
	}
	m.RecomputeNormals()
}

// Elongate scales one coordinate of every vertex, stretching icospheres into
// crystal shapes.
func Elongate(m *Mesh, axis Axis, factor float32) {
	a := int(axis)
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		m.Vertices[i+a] *= factor
	}
	m.RecomputeNormals()
}

// Jitter displaces every vertex by a bounded pseudorandom offset in
// [-magnitude, magnitude] per coordinate. The offsets come from a lattice
// hash of (vertex index, coordinate, seed), so the same seed reproduces the
// same displacement and magnitude zero is exactly the identity.
func Jitter(m *Mesh, magnitude float32, seed int64) {
	if magnitude == 0 {
		return
	}
	for i := 0; i < len(m.Vertices); i++ {
		h := jitterHash(int32(i/3), int32(i%3), int32(seed))
		m.Vertices[i] += (h*2 - 1) * magnitude
	}
	m.RecomputeNormals()
}

// jitterHash maps integer lattice coordinates to a deterministic
// pseudo-random float in [0,1].
func jitterHash(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}
