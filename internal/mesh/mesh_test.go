package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"arenagen/internal/layout"
)

func quad() *Mesh {
	return &Mesh{
		Vertices: []float32{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestAppendOffsetsIndices(t *testing.T) {
	a, b := quad(), quad()
	a.Append(b)
	require.Equal(t, 8, a.VertexCount())
	require.Equal(t, 4, a.TriangleCount())
	require.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, a.Indices)
}

func TestCloneIsIndependent(t *testing.T) {
	a := quad()
	a.RecomputeNormals()
	c := a.Clone()
	c.Vertices[0] = 99
	c.Indices[0] = 3
	require.Equal(t, float32(-1), a.Vertices[0])
	require.Equal(t, uint32(0), a.Indices[0])
}

func TestTransformTranslates(t *testing.T) {
	m := quad()
	m.RecomputeNormals()
	m.Transform(layout.At(10, -2, 5))
	require.InDelta(t, 9, m.Vertices[0], 1e-6)
	require.InDelta(t, -3, m.Vertices[1], 1e-6)
	require.InDelta(t, 5, m.Vertices[2], 1e-6)
	// Translation leaves normals alone.
	require.InDelta(t, 1, m.Normals[2], 1e-6)
}

func TestTransformYawRotates(t *testing.T) {
	m := &Mesh{Vertices: []float32{1, 0, 0}, Normals: []float32{1, 0, 0}}
	m.Transform(layout.YawedAt(0, 0, 0, math32.Pi/2))
	require.InDelta(t, 0, m.Vertices[0], 1e-6)
	require.InDelta(t, 1, m.Vertices[1], 1e-6)
	require.InDelta(t, 0, m.Vertices[2], 1e-6)
	require.InDelta(t, 0, m.Normals[0], 1e-6)
	require.InDelta(t, 1, m.Normals[1], 1e-6)
}

func TestTransformEulerOrder(t *testing.T) {
	// Rotations apply X then Y then Z: a +Z vector pitched about X by 90°
	// lands on -Y, then a yaw about Z keeps it on -Y... rotating -Y by 90°
	// about Z gives +X.
	m := &Mesh{Vertices: []float32{0, 0, 1}}
	m.Transform(layout.Pose{Rotation: [3]float32{math32.Pi / 2, 0, math32.Pi / 2}})
	require.InDelta(t, 1, m.Vertices[0], 1e-6)
	require.InDelta(t, 0, m.Vertices[1], 1e-6)
	require.InDelta(t, 0, m.Vertices[2], 1e-6)
}

func TestScale(t *testing.T) {
	m := quad()
	m.Scale(2, 3, 4)
	require.InDelta(t, -2, m.Vertices[0], 1e-6)
	require.InDelta(t, -3, m.Vertices[1], 1e-6)
}

func TestRecomputeNormalsPlanar(t *testing.T) {
	m := quad()
	m.RecomputeNormals()
	require.Len(t, m.Normals, len(m.Vertices))
	for i := 0; i+2 < len(m.Normals); i += 3 {
		require.InDelta(t, 0, m.Normals[i], 1e-6)
		require.InDelta(t, 0, m.Normals[i+1], 1e-6)
		require.InDelta(t, 1, m.Normals[i+2], 1e-6)
	}
}

func TestRecomputeNormalsUnitLength(t *testing.T) {
	m, err := Generate(PrimitiveSpec{Kind: KindUVSphere, Radius: 1, Segments: 12, Rings: 8})
	require.NoError(t, err)
	for i := 0; i+2 < len(m.Normals); i += 3 {
		l := math32.Sqrt(m.Normals[i]*m.Normals[i] +
			m.Normals[i+1]*m.Normals[i+1] +
			m.Normals[i+2]*m.Normals[i+2])
		require.InDelta(t, 1, l, 1e-4)
	}
}
