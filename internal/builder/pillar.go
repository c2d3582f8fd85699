package builder

import (
	"fmt"

	"arenagen/internal/layout"
	"arenagen/internal/material"
	"arenagen/internal/mesh"
)

// Pillar recipe constants. Every pillar shares the same vertical stack; only
// the (x, y) anchor differs per instance.
const (
	pillarSides      = 12
	pillarBaseScale  = 1.5
	pillarBaseDepth  = 0.2
	pillarCapScale   = 1.2
	pillarCapDepth   = 0.12
	pillarTaperEnd   = 0.85
	brazierDepth     = 0.2
	brazierRadiusLow = 0.3
	brazierRadiusTop = 0.2
	crystalRadius    = 0.12
	crystalRise      = 0.55
	crystalStretch   = 1.4
	crystalSquash    = 0.7
)

// fireStack is the brazier flame recipe: up to three stacked orbs, rising
// and shrinking, offsets relative to the brazier rim.
var fireStack = [3]struct{ dz, r float32 }{
	{0.05, 0.15},
	{0.17, 0.11},
	{0.27, 0.08},
}

var crystalGlow = [3]float32{0.6, 0.2, 0.9}
var fireGlow = [3]float32{1.0, 0.5, 0.2}

// buildPillars raises one pillar composite at each shared anchor point.
func (b *Builder) buildPillars(anchors []layout.Point2) error {
	for i, a := range anchors {
		if err := b.buildPillar(a.X, a.Y, i); err != nil {
			return fmt.Errorf("pillar %d: %w", i, err)
		}
	}
	return nil
}

// buildPillar stacks one pillar: tapered shaft, wide base, narrow cap,
// brazier bowl with its fire orbs, a floating crystal, and the two glow
// lights.
func (b *Builder) buildPillar(x, y float32, index int) error {
	p := b.p
	h := p.PillarHeight

	shaft, err := b.sc.CreatePrimitive(fmt.Sprintf("Pillar_%d", index), mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        pillarSides,
		RadiusBottom: p.PillarRadius,
		RadiusTop:    p.PillarRadius,
		Depth:        h,
	}, layout.At(x, y, h/2))
	if err != nil {
		return err
	}
	mesh.Taper(shaft.Mesh, mesh.AxisZ, h, 1.0, pillarTaperEnd)
	b.sc.TagMaterial(shaft, material.Obsidian)

	base, err := b.sc.CreatePrimitive(fmt.Sprintf("Pillar_Base_%d", index), mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        pillarSides,
		RadiusBottom: p.PillarRadius * pillarBaseScale,
		RadiusTop:    p.PillarRadius * pillarBaseScale,
		Depth:        pillarBaseDepth,
	}, layout.At(x, y, pillarBaseDepth/2))
	if err != nil {
		return err
	}
	b.sc.TagMaterial(base, material.Obsidian)

	cap, err := b.sc.CreatePrimitive(fmt.Sprintf("Pillar_Cap_%d", index), mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        pillarSides,
		RadiusBottom: p.PillarRadius * pillarCapScale,
		RadiusTop:    p.PillarRadius * pillarCapScale,
		Depth:        pillarCapDepth,
	}, layout.At(x, y, h-pillarCapDepth/2))
	if err != nil {
		return err
	}
	b.sc.TagMaterial(cap, material.Obsidian)

	brazier, err := b.sc.CreatePrimitive(fmt.Sprintf("Brazier_%d", index), mesh.PrimitiveSpec{
		Kind:         mesh.KindCone,
		Sides:        pillarSides,
		RadiusBottom: brazierRadiusLow,
		RadiusTop:    brazierRadiusTop,
		Depth:        brazierDepth,
	}, layout.At(x, y, h+brazierDepth/2))
	if err != nil {
		return err
	}
	b.sc.TagMaterial(brazier, material.Metal)

	rim := h + brazierDepth
	for f := 0; f < p.FireSpheres; f++ {
		fire, err := b.sc.CreatePrimitive(fmt.Sprintf("Fire_Orb_%d_%d", index, f), mesh.PrimitiveSpec{
			Kind:     mesh.KindUVSphere,
			Radius:   fireStack[f].r,
			Segments: 12,
			Rings:    8,
		}, layout.At(x, y, rim+fireStack[f].dz))
		if err != nil {
			return err
		}
		b.sc.TagMaterial(fire, material.Fire)
	}

	crystal, err := b.sc.CreatePrimitive(fmt.Sprintf("Crystal_%d", index), mesh.PrimitiveSpec{
		Kind:         mesh.KindIcoSphere,
		Radius:       crystalRadius,
		Subdivisions: 2,
	}, layout.At(x, y, h+crystalRise))
	if err != nil {
		return err
	}
	mesh.Elongate(crystal.Mesh, mesh.AxisZ, crystalStretch)
	crystal.Mesh.Scale(crystalSquash, crystalSquash, 1)
	crystal.Mesh.RecomputeNormals()
	b.sc.TagMaterial(crystal, material.Crystal)

	b.sc.CreateLight(fmt.Sprintf("Crystal_Light_%d", index),
		layout.At(x, y, h+crystalRise), crystalGlow, 25)
	b.sc.CreateLight(fmt.Sprintf("Fire_Light_%d", index),
		layout.At(x, y, rim+0.15), fireGlow, 80)
	return nil
}
