package layout

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func TestRingPointsSpacing(t *testing.T) {
	const radius = 7.0
	for _, n := range []int{1, 3, 6, 48} {
		pts := RingPoints(radius, n, 0)
		require.Len(t, pts, n)
		for i, p := range pts {
			d := math32.Hypot(p.X, p.Y)
			require.InDelta(t, radius, d, 1e-5, "point %d radius", i)
		}
		// Consecutive points subtend equal angles.
		for i := range pts {
			q := pts[(i+1)%n]
			a := math32.Atan2(pts[i].Y, pts[i].X)
			b := math32.Atan2(q.Y, q.X)
			diff := b - a
			for diff < 0 {
				diff += Tau
			}
			if n == 1 {
				continue
			}
			require.InDelta(t, Tau/float32(n), diff, 1e-5)
		}
	}
}

func TestHexAnchorPositions(t *testing.T) {
	// With zero offset the first anchor lands on +X and the rest follow at
	// 60 degree steps.
	const r = 6.3
	pts := RingPoints(r, 6, 0)
	half := float32(r) / 2
	root3 := r * math32.Sqrt(3) / 2
	want := []Point2{
		{r, 0}, {half, root3}, {-half, root3},
		{-r, 0}, {-half, -root3}, {half, -root3},
	}
	for i := range want {
		require.InDelta(t, want[i].X, pts[i].X, 1e-5, "anchor %d x", i)
		require.InDelta(t, want[i].Y, pts[i].Y, 1e-5, "anchor %d y", i)
	}
}

func TestEdgePointsStayInsideEdge(t *testing.T) {
	verts := PolygonVertices(7, 6, HexOffset)
	for e := 0; e < 6; e++ {
		v1, v2 := verts[e], verts[(e+1)%6]
		pts := EdgePoints(v1, v2, 3, 0)
		require.Len(t, pts, 3)
		edgeLen := v1.Dist(v2)
		for _, p := range pts {
			// Strictly between the endpoints, never on a vertex.
			require.Greater(t, p.Dist(v1), float32(0.1))
			require.Greater(t, p.Dist(v2), float32(0.1))
			require.Less(t, p.Dist(v1), edgeLen)
			require.Less(t, p.Dist(v2), edgeLen)
		}
	}
}

func TestEdgePointsInsetPullsInward(t *testing.T) {
	v1, v2 := Point2{7, 0}, Point2{3.5, 6.06}
	plain := EdgePoints(v1, v2, 3, 0)
	inset := EdgePoints(v1, v2, 3, 0.3)
	for i := range plain {
		d0 := math32.Hypot(plain[i].X, plain[i].Y)
		d1 := math32.Hypot(inset[i].X, inset[i].Y)
		require.InDelta(t, d0-0.3, d1, 1e-5)
	}
}

func TestEdgeAngle(t *testing.T) {
	require.InDelta(t, 0, EdgeAngle(Point2{0, 0}, Point2{5, 0}), 1e-6)
	require.InDelta(t, math32.Pi/2, EdgeAngle(Point2{1, 1}, Point2{1, 3}), 1e-6)
}

func TestScatterDiskBoundsAndDeterminism(t *testing.T) {
	const radius = 4.8
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		p := ScatterDisk(rng, radius)
		require.LessOrEqual(t, math32.Hypot(p.X, p.Y), float32(radius))
	}

	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		require.Equal(t, ScatterDisk(a, radius), ScatterDisk(b, radius))
	}
}

func TestPoseConstructors(t *testing.T) {
	p := At(1, 2, 3)
	require.Equal(t, [3]float32{1, 2, 3}, p.Position)
	require.Equal(t, [3]float32{0, 0, 0}, p.Rotation)

	y := YawedAt(1, 2, 3, 0.5)
	require.Equal(t, [3]float32{0, 0, 0.5}, y.Rotation)
}
