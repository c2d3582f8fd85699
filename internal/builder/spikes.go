package builder

import (
	"fmt"

	"arenagen/internal/layout"
	"arenagen/internal/material"
	"arenagen/internal/mesh"
)

const (
	spikeRadius = 0.1
	spikeDepth  = 0.4
	spikeInset  = 0.3
	spikeLift   = 0.2
)

// buildEdgeSpikes places small cones along each hexagon edge at fractional
// positions (j+0.5)/spikesPerEdge, pulled slightly inward so they stand on
// the slab, yawed to the local edge direction.
func (b *Builder) buildEdgeSpikes() error {
	p := b.p
	verts := layout.PolygonVertices(p.PlatformRadius+0.05, p.Sides, layout.HexOffset)
	for e := 0; e < p.Sides; e++ {
		v1, v2 := verts[e], verts[(e+1)%p.Sides]
		yaw := layout.EdgeAngle(v1, v2)
		for j, pt := range layout.EdgePoints(v1, v2, p.SpikesPerEdge, spikeInset) {
			spike, err := b.sc.CreatePrimitive(fmt.Sprintf("Spike_%d_%d", e, j), mesh.PrimitiveSpec{
				Kind:         mesh.KindCone,
				Sides:        6,
				RadiusBottom: spikeRadius,
				RadiusTop:    0,
				Depth:        spikeDepth,
			}, layout.YawedAt(pt.X, pt.Y, spikeLift, yaw))
			if err != nil {
				return err
			}
			b.sc.TagMaterial(spike, material.Spike)
		}
	}
	return nil
}
