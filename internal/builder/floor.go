package builder

import (
	"fmt"

	"arenagen/internal/csg"
	"arenagen/internal/layout"
	"arenagen/internal/material"
	"arenagen/internal/mesh"
	"arenagen/internal/scene"
)

// Floor bevel: narrow rounded lip on the slab edges.
const (
	floorBevelWidth    = 0.08
	floorBevelSegments = 2
)

// Ring slab heights. The hex rings sit a touch prouder than the circular
// inner ring, matching the carved originals.
const (
	hexRingHeight    = 0.025
	circleRingHeight = 0.02
	// circleRingSides approximates the circular inner ring; kept deliberately
	// round against the hexagonal outer rings.
	circleRingSides = 48
)

// buildFloor creates the hexagonal slab: an n-sided prism with its top face
// at Z=0, rotated by the shared offset so a flat edge faces +X, then
// edge-beveled.
func (b *Builder) buildFloor() error {
	p := b.p
	n, err := b.sc.CreatePrimitive("Floor", mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        p.Sides,
		RadiusBottom: p.PlatformRadius,
		RadiusTop:    p.PlatformRadius,
		Depth:        p.PlatformHeight,
	}, layout.YawedAt(0, 0, -p.PlatformHeight/2, layout.HexOffset))
	if err != nil {
		return err
	}
	if err := b.sc.BevelEdges(n, floorBevelWidth, floorBevelSegments); err != nil {
		return err
	}
	b.sc.TagMaterial(n, material.Floor)
	return nil
}

// buildRings carves the three concentric ritual rings. The outer and middle
// rings share the floor's hexagonal orientation; the innermost stays
// circular for contrast.
func (b *Builder) buildRings() error {
	p := b.p
	specs := []struct {
		name   string
		sides  int
		height float32
		yaw    float32
	}{
		{"Ritual_Ring_Outer", p.Sides, hexRingHeight, layout.HexOffset},
		{"Ritual_Ring_Middle", p.Sides, hexRingHeight, layout.HexOffset},
		{"Ritual_Ring_Inner", circleRingSides, circleRingHeight, 0},
	}
	for i, s := range specs {
		if _, err := b.carveRing(s.name, s.sides, p.RingRadii[i], p.RingThickness[i], s.height, s.yaw); err != nil {
			return fmt.Errorf("ring %s: %w", s.name, err)
		}
	}
	return nil
}

// carveRing builds an annulus the boolean way: an outer prism, an inner
// prism over-extended past both caps, a difference, and the inner operand
// destroyed.
func (b *Builder) carveRing(name string, sides int, radius, thickness, height, yaw float32) (*scene.Node, error) {
	pose := layout.YawedAt(0, 0, height/2, yaw)
	outer, err := b.sc.CreatePrimitive(name, mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        sides,
		RadiusBottom: radius,
		RadiusTop:    radius,
		Depth:        height,
	}, pose)
	if err != nil {
		return nil, err
	}
	inner, err := b.sc.CreatePrimitive(name+"_Cut", mesh.PrimitiveSpec{
		Kind:         mesh.KindCylinder,
		Sides:        sides,
		RadiusBottom: radius - thickness,
		RadiusTop:    radius - thickness,
		Depth:        height + csg.Epsilon,
	}, pose)
	if err != nil {
		return nil, err
	}
	if err := b.sc.BooleanDifference(outer, inner); err != nil {
		return nil, err
	}
	b.sc.TagMaterial(outer, material.Ritual)
	return outer, nil
}
