// Package csg implements the one boolean the platform needs: subtracting a
// concentric prism from a larger one to carve an annulus. General CSG is out
// of scope; restricting the difference to coaxial convex prisms keeps the
// result exact and deterministic.
package csg

import (
	"fmt"

	"github.com/chewxy/math32"

	"arenagen/internal/layout"
	"arenagen/internal/mesh"
)

// Prism describes one boolean operand: an upright n-sided prism centered on
// the shared axis.
type Prism struct {
	Sides  int
	Radius float32
	Depth  float32
}

// DegeneracyError reports operands that would produce empty or ill-defined
// geometry, e.g. an inner radius at or past the outer, or coplanar caps.
type DegeneracyError struct {
	Reason string
}

func (e *DegeneracyError) Error() string {
	return "csg: degenerate boolean: " + e.Reason
}

// Epsilon is the default cap over-extension for inner operands. The inner
// prism must protrude past both caps of the outer one; coplanar caps give
// ill-defined boolean results in most kernels, so callers add this to the
// inner depth.
const Epsilon = 0.08

// Difference subtracts inner from outer and returns the resulting annulus.
// Both prisms must share the axis and side count, the inner radius must be
// strictly smaller, and the inner depth must be strictly larger so the
// subtraction fully pierces both caps.
func Difference(outer, inner Prism) (*mesh.Mesh, error) {
	if outer.Sides < 3 {
		return nil, fmt.Errorf("csg: outer prism needs at least 3 sides, got %d", outer.Sides)
	}
	if outer.Sides != inner.Sides {
		return nil, &DegeneracyError{Reason: fmt.Sprintf("operand side counts differ: %d vs %d", outer.Sides, inner.Sides)}
	}
	if outer.Radius <= 0 || outer.Depth <= 0 {
		return nil, &DegeneracyError{Reason: "outer prism has non-positive radius or depth"}
	}
	if inner.Radius <= 0 {
		return nil, &DegeneracyError{Reason: "inner radius must be positive"}
	}
	if inner.Radius >= outer.Radius {
		return nil, &DegeneracyError{Reason: fmt.Sprintf("inner radius %g >= outer radius %g", inner.Radius, outer.Radius)}
	}
	if inner.Depth <= outer.Depth {
		return nil, &DegeneracyError{Reason: "inner operand must protrude past both outer caps"}
	}

	n := outer.Sides
	h := outer.Depth / 2
	m := &mesh.Mesh{}
	// Four rings: outer bottom, outer top, inner bottom, inner top. The
	// inner rings sit at the outer cap height; everything the inner prism
	// occupied past the caps is cut away.
	for _, ring := range []struct{ r, z float32 }{
		{outer.Radius, -h}, {outer.Radius, h},
		{inner.Radius, -h}, {inner.Radius, h},
	} {
		for i := 0; i < n; i++ {
			a := float32(i) * layout.Tau / float32(n)
			s, c := math32.Sincos(a)
			m.Vertices = append(m.Vertices, c*ring.r, s*ring.r, ring.z)
		}
	}

	un := uint32(n)
	ob := func(i uint32) uint32 { return i % un }
	ot := func(i uint32) uint32 { return un + i%un }
	ib := func(i uint32) uint32 { return 2*un + i%un }
	it := func(i uint32) uint32 { return 3*un + i%un }
	for i := uint32(0); i < un; i++ {
		j := i + 1
		// Outer wall, outward.
		m.Indices = append(m.Indices, ob(i), ob(j), ot(j))
		m.Indices = append(m.Indices, ob(i), ot(j), ot(i))
		// Inner wall, facing the hole.
		m.Indices = append(m.Indices, ib(i), it(j), ib(j))
		m.Indices = append(m.Indices, ib(i), it(i), it(j))
		// Annular caps.
		m.Indices = append(m.Indices, ot(i), ot(j), it(j))
		m.Indices = append(m.Indices, ot(i), it(j), it(i))
		m.Indices = append(m.Indices, ob(i), ib(j), ob(j))
		m.Indices = append(m.Indices, ob(i), ib(i), ib(j))
	}
	m.RecomputeNormals()
	return m, nil
}
