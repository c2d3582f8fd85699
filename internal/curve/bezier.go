// Package curve evaluates quadratic Bezier curves and chops them into short
// cylinder segments ("capsule chains"). Cracks, lava streams, hanging chains,
// and rune beams are all built this way, so the platform needs no native
// curve object from the host.
package curve

import (
	"fmt"

	"github.com/chewxy/math32"

	"arenagen/internal/layout"
)

// BezierSpec is a quadratic Bezier: start, one control point, end, plus the
// tube radius and sample count used when tessellating.
type BezierSpec struct {
	P0, P1, P2 [3]float32
	TubeRadius float32
	Samples    int
}

// Segment is one tessellated span of a curve. Start and End are the sampled
// curve points; Mid, Length, and Yaw place the cylinder that stands in for
// the span.
type Segment struct {
	Start, End [3]float32
	Mid        [3]float32
	Length     float32
	Yaw        float32
}

// Eval returns the curve point at t in [0,1]:
// B(t) = (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2.
func (b BezierSpec) Eval(t float32) [3]float32 {
	u := 1 - t
	var p [3]float32
	for i := 0; i < 3; i++ {
		p[i] = u*u*b.P0[i] + 2*u*t*b.P1[i] + t*t*b.P2[i]
	}
	return p
}

// Tessellate samples the curve at Samples uniform steps and returns one
// Segment per step. A degenerate curve (all control points equal) is
// accepted and yields zero-length segments; Samples < 1 is an error.
// Tessellation involves no randomness, so identical specs reproduce
// identical segments.
func (b BezierSpec) Tessellate() ([]Segment, error) {
	if b.Samples < 1 {
		return nil, fmt.Errorf("curve: sample count must be >= 1, got %d", b.Samples)
	}
	segs := make([]Segment, b.Samples)
	prev := b.Eval(0)
	for i := 0; i < b.Samples; i++ {
		next := b.Eval(float32(i+1) / float32(b.Samples))
		dx := next[0] - prev[0]
		dy := next[1] - prev[1]
		dz := next[2] - prev[2]
		segs[i] = Segment{
			Start: prev,
			End:   next,
			Mid: [3]float32{
				(prev[0] + next[0]) / 2,
				(prev[1] + next[1]) / 2,
				(prev[2] + next[2]) / 2,
			},
			Length: math32.Sqrt(dx*dx + dy*dy + dz*dz),
			Yaw:    math32.Atan2(dy, dx),
		}
		prev = next
	}
	return segs, nil
}

// Pose places the segment's cylinder: position at the midpoint, laid flat by
// a fixed 90° tilt about X, then yawed about the vertical axis.
func (s Segment) Pose() layout.Pose {
	return layout.Pose{
		Position: s.Mid,
		Rotation: [3]float32{math32.Pi / 2, 0, s.Yaw},
	}
}
