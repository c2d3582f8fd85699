// Package builder assembles the boss platform: floor, ritual rings, pillars,
// altar, edge spikes, and scatter decorations, plus the feature-flagged
// chains, lava cracks, and rune work. Each builder is a one-shot pure
// composition over the shared ParameterSet.
package builder

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"arenagen/internal/layout"
	"arenagen/internal/logger"
	"arenagen/internal/params"
	"arenagen/internal/scene"
)

// RootName is the anchor every generated object ends up parented under.
const RootName = "Boss_Platform"

// pillarInset is how far pillar anchors sit inside the platform edge.
const pillarInset = 0.7

// capsuleSides is the wall resolution of the thin cylinders that stand in
// for curve segments (cracks, chains, beams).
const capsuleSides = 12

// Builder carries the shared state of one generation run. The only mutable
// pieces are the scene being filled and the seeded generator; parameters are
// read-only throughout.
type Builder struct {
	p   params.Set
	sc  *scene.Scene
	rng *rand.Rand
	log *logrus.Entry
}

// Build validates the parameters, runs every builder, and returns the
// finished scene plus its root node. Any failure aborts immediately; there
// is no partial-success notion for procedural generation.
func Build(p params.Set) (*scene.Scene, *scene.Node, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	b := &Builder{
		p:   p,
		sc:  scene.New(),
		rng: rand.New(rand.NewSource(p.Seed)),
		log: logger.Named("builder"),
	}

	anchors := PillarAnchors(p)

	steps := []func([]layout.Point2) error{
		func([]layout.Point2) error { return b.buildFloor() },
		func([]layout.Point2) error { return b.buildRings() },
		b.buildPillars,
		func([]layout.Point2) error { return b.buildAltar() },
		func([]layout.Point2) error { return b.buildEdgeSpikes() },
		func([]layout.Point2) error { return b.buildSkulls() },
		func([]layout.Point2) error { return b.buildHorns() },
	}
	if p.Features.RuneDecals {
		steps = append(steps, func([]layout.Point2) error { return b.buildRunes() })
	}
	if p.Features.LavaCracks {
		steps = append(steps, func([]layout.Point2) error { return b.buildLavaCracks() })
	}
	if p.Features.Chains {
		steps = append(steps, b.buildChains)
	}
	if p.Features.RuneBeams {
		steps = append(steps, b.buildRuneBeams)
	}
	for _, step := range steps {
		if err := step(anchors); err != nil {
			return nil, nil, err
		}
	}

	root, err := b.sc.Assemble(RootName)
	if err != nil {
		return nil, nil, err
	}
	b.log.Debugf("built %d nodes", len(b.sc.Nodes()))
	return b.sc, root, nil
}

// PillarAnchors returns the shared pillar positions: one ring of points just
// inside the platform edge, with zero angular offset so the first pillar
// lands on the +X axis. Pillars, chains, and rune beams all read the same
// slice so the three stay aligned.
func PillarAnchors(p params.Set) []layout.Point2 {
	return layout.RingPoints(p.PlatformRadius-pillarInset, p.PillarCount, 0)
}

// Census counts generated objects by semantic group, for logging and for
// asserting the exact expected scene contents.
type Census struct {
	Floors        int
	Rings         int
	PillarMeshes  int
	AltarMeshes   int
	Spikes        int
	Skulls        int
	Horns         int
	Runes         int
	CrackSegments int
	ChainSegments int
	BeamSegments  int
	Lights        int
	MeshTotal     int
}

// TakeCensus classifies the live scene nodes by name.
func TakeCensus(sc *scene.Scene) Census {
	var c Census
	for _, n := range sc.Nodes() {
		if n.Kind == scene.NodeLight {
			c.Lights++
			continue
		}
		if n.Kind != scene.NodeMesh {
			continue
		}
		c.MeshTotal++
		switch {
		case n.Name == "Floor":
			c.Floors++
		case strings.HasPrefix(n.Name, "Ritual_Ring"):
			c.Rings++
		case strings.HasPrefix(n.Name, "Pillar") ||
			strings.HasPrefix(n.Name, "Brazier") ||
			strings.HasPrefix(n.Name, "Crystal") ||
			strings.HasPrefix(n.Name, "Fire_Orb"):
			c.PillarMeshes++
		case strings.HasPrefix(n.Name, "Altar") ||
			n.Name == "Fire_Column" || n.Name == "Soul_Orb":
			c.AltarMeshes++
		case strings.HasPrefix(n.Name, "Spike"):
			c.Spikes++
		case strings.HasPrefix(n.Name, "Skull"):
			c.Skulls++
		case strings.HasPrefix(n.Name, "Horn"):
			c.Horns++
		case strings.HasPrefix(n.Name, "Rune_Decal"):
			c.Runes++
		case strings.HasPrefix(n.Name, "Crack"):
			c.CrackSegments++
		case strings.HasPrefix(n.Name, "Chain"):
			c.ChainSegments++
		case strings.HasPrefix(n.Name, "Rune_Beam"):
			c.BeamSegments++
		}
	}
	return c
}
