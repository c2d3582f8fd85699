package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	"arenagen/internal/layout"
)

// Kind names a primitive type the factory can build.
type Kind string

const (
	KindCylinder  Kind = "cylinder"
	KindCone      Kind = "cone"
	KindIcoSphere Kind = "icosphere"
	KindUVSphere  Kind = "uvsphere"
	KindPlane     Kind = "plane"
)

// PrimitiveSpec is the full parameter set for one primitive request. Unused
// fields for a given kind are ignored. All primitives are generated centered
// at the local origin; prisms have their caps at ±Depth/2 on the Z axis.
type PrimitiveSpec struct {
	Kind Kind

	// Sides is the wall segment count for cylinders and cones.
	Sides int
	// RadiusBottom/RadiusTop are the cap radii for cylinders and cones. A
	// cone is a cylinder whose RadiusTop is zero (apex) or smaller than the
	// bottom (frustum).
	RadiusBottom float32
	RadiusTop    float32
	Depth        float32

	// Radius is the sphere radius.
	Radius float32
	// Segments/Rings control UV sphere resolution.
	Segments int
	Rings    int
	// Subdivisions controls icosphere refinement and plane grid cuts.
	Subdivisions int

	// Size is the plane edge length.
	Size float32
}

// Generate builds the primitive the spec describes. Invalid parameters are
// an error; a valid spec always succeeds.
func Generate(spec PrimitiveSpec) (*Mesh, error) {
	switch spec.Kind {
	case KindCylinder, KindCone:
		return prism(spec.Sides, spec.RadiusBottom, spec.RadiusTop, spec.Depth)
	case KindUVSphere:
		return uvSphere(spec.Radius, spec.Segments, spec.Rings)
	case KindIcoSphere:
		return icoSphere(spec.Radius, spec.Subdivisions)
	case KindPlane:
		return plane(spec.Size, spec.Subdivisions)
	default:
		return nil, fmt.Errorf("mesh: unknown primitive kind %q", spec.Kind)
	}
}

// prism builds an n-sided cylinder (or cone when rTop is zero) centered at
// the origin with caps at ±depth/2.
func prism(sides int, rBottom, rTop, depth float32) (*Mesh, error) {
	if sides < 3 {
		return nil, fmt.Errorf("mesh: prism needs at least 3 sides, got %d", sides)
	}
	if rBottom <= 0 {
		return nil, fmt.Errorf("mesh: prism bottom radius must be positive, got %g", rBottom)
	}
	if rTop < 0 {
		return nil, fmt.Errorf("mesh: prism top radius cannot be negative, got %g", rTop)
	}
	if depth < 0 {
		return nil, fmt.Errorf("mesh: prism depth cannot be negative, got %g", depth)
	}
	h := depth / 2
	m := &Mesh{}
	apex := rTop == 0

	// Bottom ring, then top ring (or apex), then cap centers.
	for i := 0; i < sides; i++ {
		a := float32(i) * layout.Tau / float32(sides)
		s, c := math32.Sincos(a)
		m.Vertices = append(m.Vertices, c*rBottom, s*rBottom, -h)
	}
	if apex {
		m.Vertices = append(m.Vertices, 0, 0, h)
	} else {
		for i := 0; i < sides; i++ {
			a := float32(i) * layout.Tau / float32(sides)
			s, c := math32.Sincos(a)
			m.Vertices = append(m.Vertices, c*rTop, s*rTop, h)
		}
	}
	bottomCenter := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, 0, 0, -h)
	topCenter := uint32(0)
	if !apex {
		topCenter = uint32(m.VertexCount())
		m.Vertices = append(m.Vertices, 0, 0, h)
	}

	n := uint32(sides)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		if apex {
			m.Indices = append(m.Indices, i, j, n)
		} else {
			// Wall quad, outward winding.
			m.Indices = append(m.Indices, i, j, n+j)
			m.Indices = append(m.Indices, i, n+j, n+i)
			// Top cap fan.
			m.Indices = append(m.Indices, topCenter, n+i, n+j)
		}
		// Bottom cap fan, facing -Z.
		m.Indices = append(m.Indices, bottomCenter, j, i)
	}
	m.RecomputeNormals()
	return m, nil
}

// uvSphere builds a latitude/longitude sphere with `rings` horizontal bands
// and `segments` meridians.
func uvSphere(radius float32, segments, rings int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("mesh: sphere radius must be positive, got %g", radius)
	}
	if segments < 3 || rings < 2 {
		return nil, fmt.Errorf("mesh: uv sphere needs segments >= 3 and rings >= 2")
	}
	m := &Mesh{}
	// Top pole, interior latitude rings, bottom pole.
	m.Vertices = append(m.Vertices, 0, 0, radius)
	for r := 1; r < rings; r++ {
		phi := float32(r) * math32.Pi / float32(rings)
		sp, cp := math32.Sincos(phi)
		for s := 0; s < segments; s++ {
			theta := float32(s) * layout.Tau / float32(segments)
			st, ct := math32.Sincos(theta)
			m.Vertices = append(m.Vertices, radius*sp*ct, radius*sp*st, radius*cp)
		}
	}
	bottom := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, 0, 0, -radius)

	ring := func(r, s int) uint32 {
		return uint32(1 + (r-1)*segments + s%segments)
	}
	for s := 0; s < segments; s++ {
		// Pole caps.
		m.Indices = append(m.Indices, 0, ring(1, s), ring(1, s+1))
		m.Indices = append(m.Indices, bottom, ring(rings-1, s+1), ring(rings-1, s))
	}
	for r := 1; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			a, b := ring(r, s), ring(r, s+1)
			c, d := ring(r+1, s), ring(r+1, s+1)
			m.Indices = append(m.Indices, a, d, b)
			m.Indices = append(m.Indices, a, c, d)
		}
	}
	m.RecomputeNormals()
	return m, nil
}

// icosphere subdivision starts from a unit icosahedron; t is the golden
// ratio construction constant.
var icoVerts = func() [][3]float32 {
	t := (1 + math32.Sqrt(5)) / 2
	raw := [][3]float32{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range raw {
		l := math32.Sqrt(raw[i][0]*raw[i][0] + raw[i][1]*raw[i][1] + raw[i][2]*raw[i][2])
		raw[i][0] /= l
		raw[i][1] /= l
		raw[i][2] /= l
	}
	return raw
}()

var icoFaces = [][3]uint32{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// icoSphere builds an icosphere of the given radius with the given number of
// subdivision passes. Subdivision order is fixed so output is reproducible.
func icoSphere(radius float32, subdivisions int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("mesh: sphere radius must be positive, got %g", radius)
	}
	if subdivisions < 0 || subdivisions > 6 {
		return nil, fmt.Errorf("mesh: icosphere subdivisions out of range: %d", subdivisions)
	}
	verts := make([][3]float32, len(icoVerts))
	copy(verts, icoVerts)
	faces := make([][3]uint32, len(icoFaces))
	copy(faces, icoFaces)

	for s := 0; s < subdivisions; s++ {
		midCache := make(map[uint64]uint32)
		midpoint := func(a, b uint32) uint32 {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			key := uint64(lo)<<32 | uint64(hi)
			if idx, ok := midCache[key]; ok {
				return idx
			}
			va, vb := verts[a], verts[b]
			mid := [3]float32{(va[0] + vb[0]) / 2, (va[1] + vb[1]) / 2, (va[2] + vb[2]) / 2}
			l := math32.Sqrt(mid[0]*mid[0] + mid[1]*mid[1] + mid[2]*mid[2])
			mid[0] /= l
			mid[1] /= l
			mid[2] /= l
			idx := uint32(len(verts))
			verts = append(verts, mid)
			midCache[key] = idx
			return idx
		}
		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}

	m := &Mesh{}
	for _, v := range verts {
		m.Vertices = append(m.Vertices, v[0]*radius, v[1]*radius, v[2]*radius)
	}
	for _, f := range faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2])
	}
	m.RecomputeNormals()
	return m, nil
}

// plane builds a size×size grid in the XY plane at Z=0, facing +Z. cuts is
// the number of interior subdivisions per edge, so cuts=0 is a single quad.
func plane(size float32, cuts int) (*Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mesh: plane size must be positive, got %g", size)
	}
	if cuts < 0 {
		return nil, fmt.Errorf("mesh: plane cuts cannot be negative: %d", cuts)
	}
	n := cuts + 2 // vertices per side
	m := &Mesh{}
	half := size / 2
	step := size / float32(n-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			m.Vertices = append(m.Vertices, -half+float32(x)*step, -half+float32(y)*step, 0)
		}
	}
	at := func(x, y int) uint32 { return uint32(y*n + x) }
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			a, b := at(x, y), at(x+1, y)
			c, d := at(x, y+1), at(x+1, y+1)
			m.Indices = append(m.Indices, a, b, d)
			m.Indices = append(m.Indices, a, d, c)
		}
	}
	m.RecomputeNormals()
	return m, nil
}
