package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	"arenagen/internal/layout"
)

// BeveledPrism builds an n-sided uniform prism whose two cap edges are
// rounded off by a quarter-circle arc of the given width, sampled with
// `segments` arc steps. This covers what the floor needs from an edge bevel
// without a general bevel modifier: the profile is lathed around the Z axis,
// so the result keeps the prism's flat side faces.
func BeveledPrism(sides int, radius, depth, width float32, segments int) (*Mesh, error) {
	if sides < 3 {
		return nil, fmt.Errorf("mesh: bevel needs at least 3 sides, got %d", sides)
	}
	if radius <= 0 || depth <= 0 {
		return nil, fmt.Errorf("mesh: bevel needs positive radius and depth")
	}
	if segments < 1 {
		return nil, fmt.Errorf("mesh: bevel segments must be >= 1, got %d", segments)
	}
	if width <= 0 || width >= radius || width*2 >= depth {
		return nil, fmt.Errorf("mesh: bevel width %g does not fit radius %g depth %g", width, radius, depth)
	}

	h := depth / 2
	// Profile in (radial, z), bottom to top. Each cap corner (radius, ±h)
	// becomes an arc centered one bevel width inside it.
	type pt struct{ r, z float32 }
	var profile []pt
	for k := 0; k <= segments; k++ {
		a := float32(k) * (math32.Pi / 2) / float32(segments)
		s, c := math32.Sincos(a)
		profile = append(profile, pt{r: radius - width + width*s, z: -h + width - width*c})
	}
	for k := 0; k <= segments; k++ {
		a := float32(k) * (math32.Pi / 2) / float32(segments)
		s, c := math32.Sincos(a)
		profile = append(profile, pt{r: radius - width + width*c, z: h - width + width*s})
	}

	m := &Mesh{}
	for _, p := range profile {
		for i := 0; i < sides; i++ {
			a := float32(i) * layout.Tau / float32(sides)
			s, c := math32.Sincos(a)
			m.Vertices = append(m.Vertices, c*p.r, s*p.r, p.z)
		}
	}
	bottomCenter := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, 0, 0, -h)
	topCenter := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, 0, 0, h)

	n := uint32(sides)
	ringStart := func(ring int) uint32 { return uint32(ring) * n }
	rings := len(profile)
	for ring := 0; ring < rings-1; ring++ {
		lo, hi := ringStart(ring), ringStart(ring+1)
		for i := uint32(0); i < n; i++ {
			j := (i + 1) % n
			m.Indices = append(m.Indices, lo+i, lo+j, hi+j)
			m.Indices = append(m.Indices, lo+i, hi+j, hi+i)
		}
	}
	first, last := ringStart(0), ringStart(rings-1)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		m.Indices = append(m.Indices, bottomCenter, first+j, first+i)
		m.Indices = append(m.Indices, topCenter, last+i, last+j)
	}
	m.RecomputeNormals()
	return m, nil
}
