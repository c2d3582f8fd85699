package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePrismCounts(t *testing.T) {
	m, err := Generate(PrimitiveSpec{
		Kind: KindCylinder, Sides: 6, RadiusBottom: 1, RadiusTop: 1, Depth: 0.5,
	})
	require.NoError(t, err)
	// Two rings plus two cap centers; two wall triangles and two cap fan
	// triangles per side.
	require.Equal(t, 14, m.VertexCount())
	require.Equal(t, 24, m.TriangleCount())

	cone, err := Generate(PrimitiveSpec{
		Kind: KindCone, Sides: 6, RadiusBottom: 1, RadiusTop: 0, Depth: 0.5,
	})
	require.NoError(t, err)
	// One ring, apex, bottom center; one wall and one cap triangle per side.
	require.Equal(t, 8, cone.VertexCount())
	require.Equal(t, 12, cone.TriangleCount())
}

func TestPrismExtents(t *testing.T) {
	m, err := Generate(PrimitiveSpec{
		Kind: KindCylinder, Sides: 8, RadiusBottom: 2, RadiusTop: 2, Depth: 1.5,
	})
	require.NoError(t, err)
	minZ, maxZ := zExtents(m)
	require.InDelta(t, -0.75, minZ, 1e-6)
	require.InDelta(t, 0.75, maxZ, 1e-6)
}

func TestGenerateUVSphereCounts(t *testing.T) {
	m, err := Generate(PrimitiveSpec{
		Kind: KindUVSphere, Radius: 0.2, Segments: 8, Rings: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 1+3*8+1, m.VertexCount())
	// 8 triangles per pole cap plus two per quad on the interior bands.
	require.Equal(t, 2*8+2*2*8, m.TriangleCount())
}

func TestGenerateIcoSphereCounts(t *testing.T) {
	cases := []struct {
		subdivisions int
		verts, tris  int
	}{
		{0, 12, 20},
		{1, 42, 80},
		{2, 162, 320},
	}
	for _, tc := range cases {
		m, err := Generate(PrimitiveSpec{
			Kind: KindIcoSphere, Radius: 1, Subdivisions: tc.subdivisions,
		})
		require.NoError(t, err)
		require.Equal(t, tc.verts, m.VertexCount(), "subdivisions %d", tc.subdivisions)
		require.Equal(t, tc.tris, m.TriangleCount(), "subdivisions %d", tc.subdivisions)
	}
}

func TestIcoSphereVerticesOnSphere(t *testing.T) {
	const radius = 0.12
	m, err := Generate(PrimitiveSpec{Kind: KindIcoSphere, Radius: radius, Subdivisions: 2})
	require.NoError(t, err)
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		require.InDelta(t, radius*radius, x*x+y*y+z*z, 1e-5)
	}
}

func TestGeneratePlaneCounts(t *testing.T) {
	m, err := Generate(PrimitiveSpec{Kind: KindPlane, Size: 0.35})
	require.NoError(t, err)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.TriangleCount())

	m, err = Generate(PrimitiveSpec{Kind: KindPlane, Size: 0.35, Subdivisions: 2})
	require.NoError(t, err)
	require.Equal(t, 16, m.VertexCount())
	require.Equal(t, 18, m.TriangleCount())
}

func TestGenerateRejectsInvalidSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec PrimitiveSpec
	}{
		{"unknown kind", PrimitiveSpec{Kind: "torus"}},
		{"two sided prism", PrimitiveSpec{Kind: KindCylinder, Sides: 2, RadiusBottom: 1, RadiusTop: 1, Depth: 1}},
		{"zero radius prism", PrimitiveSpec{Kind: KindCylinder, Sides: 6, RadiusBottom: 0, RadiusTop: 1, Depth: 1}},
		{"negative top radius", PrimitiveSpec{Kind: KindCylinder, Sides: 6, RadiusBottom: 1, RadiusTop: -1, Depth: 1}},
		{"negative depth", PrimitiveSpec{Kind: KindCylinder, Sides: 6, RadiusBottom: 1, RadiusTop: 1, Depth: -1}},
		{"flat uv sphere", PrimitiveSpec{Kind: KindUVSphere, Radius: 1, Segments: 2, Rings: 4}},
		{"zero radius sphere", PrimitiveSpec{Kind: KindIcoSphere, Radius: 0, Subdivisions: 1}},
		{"absurd subdivisions", PrimitiveSpec{Kind: KindIcoSphere, Radius: 1, Subdivisions: 9}},
		{"zero size plane", PrimitiveSpec{Kind: KindPlane, Size: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.spec)
			require.Error(t, err)
		})
	}
}

func zExtents(m *Mesh) (minZ, maxZ float32) {
	minZ, maxZ = m.Vertices[2], m.Vertices[2]
	for i := 2; i < len(m.Vertices); i += 3 {
		if m.Vertices[i] < minZ {
			minZ = m.Vertices[i]
		}
		if m.Vertices[i] > maxZ {
			maxZ = m.Vertices[i]
		}
	}
	return minZ, maxZ
}
