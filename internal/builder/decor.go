package builder

import (
	"fmt"

	"github.com/chewxy/math32"

	"arenagen/internal/curve"
	"arenagen/internal/layout"
	"arenagen/internal/material"
	"arenagen/internal/mesh"
)

const (
	skullRadius = 0.08
	hornRadius  = 0.9
	hornHeight  = 0.55
	hornTilt    = 0.4

	runeSize   = 0.35
	runeJitter = 0.05

	crackCount   = 8
	crackStartR  = 1.0
	crackLength  = 3.0
	crackRadius  = 0.05
	crackSamples = 4

	chainSag     = 0.3
	chainRadius  = 0.035
	chainSamples = 12

	beamRadius  = 0.04
	beamSamples = 6
)

// buildSkulls scatters deformed icospheres across the mid-floor disk using
// the shared seeded generator, so the layout is reproducible per seed.
func (b *Builder) buildSkulls() error {
	for i := 0; i < b.p.SkullCount; i++ {
		pt := layout.ScatterDisk(b.rng, b.p.ScatterRadius)
		skull, err := b.sc.CreatePrimitive(fmt.Sprintf("Skull_%d", i), mesh.PrimitiveSpec{
			Kind:         mesh.KindIcoSphere,
			Radius:       skullRadius,
			Subdivisions: 2,
		}, layout.At(pt.X, pt.Y, 0.05))
		if err != nil {
			return err
		}
		// Squash into a rough cranium.
		skull.Mesh.Scale(1.0, 0.8, 0.85)
		skull.Mesh.RecomputeNormals()
		b.sc.TagMaterial(skull, material.Bone)
	}
	return nil
}

// buildHorns rings the altar with small cones tilted outward, on the same
// hex offset as the floor.
func (b *Builder) buildHorns() error {
	for i, pt := range layout.RingPoints(hornRadius, b.p.HornCount, layout.HexOffset) {
		a := layout.HexOffset + float32(i)*layout.Tau/float32(b.p.HornCount)
		horn, err := b.sc.CreatePrimitive(fmt.Sprintf("Horn_%d", i), mesh.PrimitiveSpec{
			Kind:         mesh.KindCone,
			Sides:        6,
			RadiusBottom: 0.06,
			RadiusTop:    0,
			Depth:        0.35,
		}, layout.Pose{
			Position: [3]float32{pt.X, pt.Y, hornHeight},
			Rotation: [3]float32{hornTilt * math32.Sin(a), -hornTilt * math32.Cos(a), 0},
		})
		if err != nil {
			return err
		}
		b.sc.TagMaterial(horn, material.Spike)
	}
	return nil
}

// buildRunes lays glyph decals on two rings: subdivided planes jittered so
// they read hand-carved rather than grid-perfect. Jitter derives from the
// run seed plus the rune index, keeping every glyph distinct but
// reproducible.
func (b *Builder) buildRunes() error {
	p := b.p
	ringRadii := []float32{p.RingRadii[0] - 0.6, p.RingRadii[1] - 0.4}
	for ring, radius := range ringRadii {
		for i := 0; i < p.RunesPerRing; i++ {
			a := layout.HexOffset + float32(i)*layout.Tau/float32(p.RunesPerRing)
			x, y := math32.Cos(a)*radius, math32.Sin(a)*radius
			decal, err := b.sc.CreatePrimitive(fmt.Sprintf("Rune_Decal_%d_%d", ring, i), mesh.PrimitiveSpec{
				Kind:         mesh.KindPlane,
				Size:         runeSize,
				Subdivisions: 2,
			}, layout.YawedAt(x, y, 0.03, a+math32.Pi/2))
			if err != nil {
				return err
			}
			mesh.Jitter(decal.Mesh, runeJitter, p.Seed+int64(ring*p.RunesPerRing+i))
			b.sc.TagMaterial(decal, material.Rune)
		}
	}
	return nil
}

// buildLavaCracks radiates glowing cracks outward from the altar. Each crack
// is one quadratic Bezier with a small angular wobble between its control
// points for an organic look.
func (b *Builder) buildLavaCracks() error {
	const midR = crackStartR + crackLength/2
	const endR = crackStartR + crackLength
	for i := 0; i < crackCount; i++ {
		a := float32(i)*layout.Tau/crackCount + layout.HexOffset
		spec := curve.BezierSpec{
			P0:         [3]float32{math32.Cos(a) * crackStartR, math32.Sin(a) * crackStartR, 0.03},
			P1:         [3]float32{math32.Cos(a+0.08) * midR, math32.Sin(a+0.08) * midR, 0.03},
			P2:         [3]float32{math32.Cos(a-0.05) * endR, math32.Sin(a-0.05) * endR, 0.03},
			TubeRadius: crackRadius,
			Samples:    crackSamples,
		}
		if err := b.capsuleChain(fmt.Sprintf("Crack_%d", i), spec, material.Lava); err != nil {
			return err
		}
	}
	return nil
}

// buildChains hangs a sagging chain between each adjacent pair of pillar
// tops: the Bezier control point sits below the straight connecting line by
// a fixed sag offset.
func (b *Builder) buildChains(anchors []layout.Point2) error {
	zTop := b.p.PillarHeight * 0.9
	for i := range anchors {
		a, c := anchors[i], anchors[(i+1)%len(anchors)]
		spec := curve.BezierSpec{
			P0:         [3]float32{a.X, a.Y, zTop},
			P1:         [3]float32{(a.X + c.X) / 2, (a.Y + c.Y) / 2, zTop - chainSag},
			P2:         [3]float32{c.X, c.Y, zTop},
			TubeRadius: chainRadius,
			Samples:    chainSamples,
		}
		if err := b.capsuleChain(fmt.Sprintf("Chain_%d", i), spec, material.Metal); err != nil {
			return err
		}
	}
	return nil
}

// buildRuneBeams draws a straight energy beam from each pillar base toward
// the altar center; the control point at the midpoint keeps the curve a
// line.
func (b *Builder) buildRuneBeams(anchors []layout.Point2) error {
	for i, a := range anchors {
		p0 := [3]float32{a.X, a.Y, 0.05}
		p2 := [3]float32{0, 0, 0.15}
		spec := curve.BezierSpec{
			P0:         p0,
			P1:         [3]float32{(p0[0] + p2[0]) / 2, (p0[1] + p2[1]) / 2, (p0[2] + p2[2]) / 2},
			P2:         p2,
			TubeRadius: beamRadius,
			Samples:    beamSamples,
		}
		if err := b.capsuleChain(fmt.Sprintf("Rune_Beam_%d", i), spec, material.Rune); err != nil {
			return err
		}
	}
	return nil
}

// capsuleChain tessellates a Bezier and realizes each sampled span as one
// thin cylinder laid along the segment. Zero-length spans (degenerate
// curves) are skipped rather than instantiated.
func (b *Builder) capsuleChain(name string, spec curve.BezierSpec, mat string) error {
	segs, err := spec.Tessellate()
	if err != nil {
		return err
	}
	for i, seg := range segs {
		if seg.Length <= 0 {
			continue
		}
		link, err := b.sc.CreatePrimitive(fmt.Sprintf("%s_%d", name, i), mesh.PrimitiveSpec{
			Kind:         mesh.KindCylinder,
			Sides:        capsuleSides,
			RadiusBottom: spec.TubeRadius,
			RadiusTop:    spec.TubeRadius,
			Depth:        seg.Length,
		}, seg.Pose())
		if err != nil {
			return err
		}
		b.sc.TagMaterial(link, mat)
	}
	return nil
}
