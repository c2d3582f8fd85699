package builder

import (
	"arenagen/internal/layout"
	"arenagen/internal/material"
	"arenagen/internal/mesh"
)

// Altar recipe: three shrinking hex tiers, a fire column, and the soul orb.
// The tallest composite on the platform, centered at the origin and aligned
// to the same hex offset as the floor and rings.
var altarTiers = []struct {
	name   string
	radius float32
	depth  float32
	mat    string
}{
	{"Altar_Base", 1.2, 0.25, material.Obsidian},
	{"Altar_Mid", 0.8, 0.2, material.Obsidian},
	{"Altar_Top", 0.5, 0.1, material.Altar},
}

const (
	fireColumnRadius = 0.12
	fireColumnDepth  = 1.2
	soulOrbRadius    = 0.2
	soulOrbHeight    = 1.9
)

func (b *Builder) buildAltar() error {
	z := float32(0)
	for _, tier := range altarTiers {
		n, err := b.sc.CreatePrimitive(tier.name, mesh.PrimitiveSpec{
			Kind:         mesh.KindCylinder,
			Sides:        b.p.Sides,
			RadiusBottom: tier.radius,
			RadiusTop:    tier.radius,
			Depth:        tier.depth,
		}, layout.YawedAt(0, 0, z+tier.depth/2, layout.HexOffset))
		if err != nil {
			return err
		}
		b.sc.TagMaterial(n, tier.mat)
		z += tier.depth
	}

	column, err := b.sc.CreatePrimitive("Fire_Column", mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        16,
		RadiusBottom: fireColumnRadius,
		RadiusTop:    fireColumnRadius,
		Depth:        fireColumnDepth,
	}, layout.At(0, 0, z+fireColumnDepth/2))
	if err != nil {
		return err
	}
	b.sc.TagMaterial(column, material.Fire)

	orb, err := b.sc.CreatePrimitive("Soul_Orb", mesh.PrimitiveSpec{
		Kind:     mesh.KindUVSphere,
		Radius:   soulOrbRadius,
		Segments: 16,
		Rings:    12,
	}, layout.At(0, 0, soulOrbHeight))
	if err != nil {
		return err
	}
	b.sc.TagMaterial(orb, material.Soul)

	b.sc.CreateLight("Altar_Light", layout.At(0, 0, 1.5), [3]float32{1.0, 0.3, 0.1}, 120)
	return nil
}
