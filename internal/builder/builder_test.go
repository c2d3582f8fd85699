package builder

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"arenagen/internal/params"
)

func TestBuildDefaultCensus(t *testing.T) {
	sc, root, err := Build(params.Default())
	require.NoError(t, err)
	require.NotNil(t, root)

	c := TakeCensus(sc)
	require.Equal(t, 1, c.Floors)
	require.Equal(t, 3, c.Rings)
	// 6 meshes per pillar: shaft, base, cap, brazier, one fire orb, crystal.
	require.Equal(t, 36, c.PillarMeshes)
	// Three tiers, fire column, soul orb.
	require.Equal(t, 5, c.AltarMeshes)
	require.Equal(t, 18, c.Spikes)
	require.Equal(t, 8, c.Skulls)
	require.Equal(t, 6, c.Horns)
	require.Equal(t, 77, c.MeshTotal)
	// Two lights per pillar plus the altar light.
	require.Equal(t, 13, c.Lights)

	// The canonical configuration carries none of the flagged extras.
	require.Zero(t, c.Runes)
	require.Zero(t, c.CrackSegments)
	require.Zero(t, c.ChainSegments)
	require.Zero(t, c.BeamSegments)
}

func TestBuildAllFeatures(t *testing.T) {
	p := params.Default()
	p.Features = params.Features{Chains: true, LavaCracks: true, RuneBeams: true, RuneDecals: true}
	sc, _, err := Build(p)
	require.NoError(t, err)

	c := TakeCensus(sc)
	require.Equal(t, 2*p.RunesPerRing, c.Runes)
	require.Equal(t, 8*4, c.CrackSegments)
	require.Equal(t, p.PillarCount*12, c.ChainSegments)
	require.Equal(t, p.PillarCount*6, c.BeamSegments)
}

func TestBuildFireSpheresScaleBraziers(t *testing.T) {
	p := params.Default()
	p.FireSpheres = 3
	sc, _, err := Build(p)
	require.NoError(t, err)
	c := TakeCensus(sc)
	// Two extra orbs per pillar over the default census.
	require.Equal(t, 36+2*p.PillarCount, c.PillarMeshes)
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	p := params.Default()
	p.RingRadii = [3]float32{1, 2, 3}
	_, _, err := Build(p)
	require.Error(t, err)
	var perr *params.Error
	require.ErrorAs(t, err, &perr)
}

func TestBuildDeterministicPerSeed(t *testing.T) {
	p := params.Default()
	a, _, err := Build(p)
	require.NoError(t, err)
	b, _, err := Build(p)
	require.NoError(t, err)

	an, bn := a.MeshNodes(), b.MeshNodes()
	require.Equal(t, len(an), len(bn))
	for i := range an {
		require.Equal(t, an[i].Name, bn[i].Name)
		require.Equal(t, an[i].Pose, bn[i].Pose)
		require.Equal(t, an[i].Mesh.Vertices, bn[i].Mesh.Vertices, "node %s", an[i].Name)
		require.Equal(t, an[i].Mesh.Indices, bn[i].Mesh.Indices, "node %s", an[i].Name)
	}

	p.Seed = 43
	c, _, err := Build(p)
	require.NoError(t, err)
	// A different seed moves the scatter.
	moved := false
	cn := c.MeshNodes()
	for i := range an {
		if strings.HasPrefix(an[i].Name, "Skull") && an[i].Pose != cn[i].Pose {
			moved = true
		}
	}
	require.True(t, moved)
}

func TestBuildScatterStaysOnPlatform(t *testing.T) {
	p := params.Default()
	sc, _, err := Build(p)
	require.NoError(t, err)
	for _, n := range sc.MeshNodes() {
		if !strings.HasPrefix(n.Name, "Skull") {
			continue
		}
		d := math32.Hypot(n.Pose.Position[0], n.Pose.Position[1])
		require.LessOrEqual(t, d, p.ScatterRadius)
	}
}

func TestBuildAssemblesUnderSingleRoot(t *testing.T) {
	sc, root, err := Build(params.Default())
	require.NoError(t, err)
	require.Equal(t, RootName, root.Name)
	for _, n := range sc.Nodes() {
		if n == root {
			require.Nil(t, n.Parent())
			continue
		}
		require.Same(t, root, n.Parent(), "node %s", n.Name)
	}
}

func TestBuildRingNodesAreCarved(t *testing.T) {
	sc, _, err := Build(params.Default())
	require.NoError(t, err)
	rings := 0
	for _, n := range sc.MeshNodes() {
		if strings.HasPrefix(n.Name, "Ritual_Ring") {
			rings++
			require.True(t, n.Carved, "node %s", n.Name)
			require.False(t, strings.HasSuffix(n.Name, "_Cut"), "cut operand survived")
		}
		if n.Name == "Floor" {
			require.True(t, n.Beveled)
		}
	}
	require.Equal(t, 3, rings)
}

func TestPillarAnchors(t *testing.T) {
	p := params.Default()
	anchors := PillarAnchors(p)
	require.Len(t, anchors, p.PillarCount)

	want := p.PlatformRadius - 0.7
	for _, a := range anchors {
		require.InDelta(t, want, math32.Hypot(a.X, a.Y), 1e-5)
	}
	// Zero angular offset: the first anchor sits on +X.
	require.InDelta(t, want, anchors[0].X, 1e-5)
	require.InDelta(t, 0, anchors[0].Y, 1e-5)
}

func TestBuildSceneIsolation(t *testing.T) {
	// Two concurrent builds must not share node state.
	sc1, _, err := Build(params.Default())
	require.NoError(t, err)
	sc2, _, err := Build(params.Default())
	require.NoError(t, err)

	n1, n2 := sc1.MeshNodes()[0], sc2.MeshNodes()[0]
	n1.Mesh.Vertices[0] += 100
	require.NotEqual(t, n1.Mesh.Vertices[0], n2.Mesh.Vertices[0])
}

func TestTakeCensusIgnoresAnchors(t *testing.T) {
	sc, _, err := Build(params.Default())
	require.NoError(t, err)
	c := TakeCensus(sc)
	total := c.Floors + c.Rings + c.PillarMeshes + c.AltarMeshes +
		c.Spikes + c.Skulls + c.Horns + c.Runes +
		c.CrackSegments + c.ChainSegments + c.BeamSegments
	require.Equal(t, c.MeshTotal, total, "every mesh is classified")

	require.Len(t, sc.Nodes(), c.MeshTotal+c.Lights+1, "meshes, lights, one root")
}
