package curve

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func arc() BezierSpec {
	return BezierSpec{
		P0:         [3]float32{0, 0, 0},
		P1:         [3]float32{1, 2, 0},
		P2:         [3]float32{2, 0, 0},
		TubeRadius: 0.05,
		Samples:    4,
	}
}

func TestEvalEndpoints(t *testing.T) {
	b := arc()
	require.Equal(t, b.P0, b.Eval(0))
	require.Equal(t, b.P2, b.Eval(1))

	// At the midpoint the control point pulls the curve halfway up.
	mid := b.Eval(0.5)
	require.InDelta(t, 1, mid[0], 1e-6)
	require.InDelta(t, 1, mid[1], 1e-6)
}

func TestTessellateContinuity(t *testing.T) {
	b := arc()
	segs, err := b.Tessellate()
	require.NoError(t, err)
	require.Len(t, segs, b.Samples)

	require.Equal(t, b.P0, segs[0].Start)
	require.Equal(t, b.P2, segs[len(segs)-1].End)
	for i := 0; i < len(segs)-1; i++ {
		require.Equal(t, segs[i].End, segs[i+1].Start)
	}
	for _, s := range segs {
		require.Greater(t, s.Length, float32(0))
		for i := 0; i < 3; i++ {
			require.InDelta(t, (s.Start[i]+s.End[i])/2, s.Mid[i], 1e-6)
		}
	}
}

func TestTessellateDeterministic(t *testing.T) {
	a, err := arc().Tessellate()
	require.NoError(t, err)
	b, err := arc().Tessellate()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestTessellateDegenerateCurve(t *testing.T) {
	// All three control points coincide: accepted, yields zero-length
	// segments the builder then skips.
	p := [3]float32{1, 2, 3}
	b := BezierSpec{P0: p, P1: p, P2: p, TubeRadius: 0.05, Samples: 5}
	segs, err := b.Tessellate()
	require.NoError(t, err)
	require.Len(t, segs, 5)
	for _, s := range segs {
		require.Equal(t, float32(0), s.Length)
		require.Equal(t, p, s.Mid)
	}
}

func TestTessellateRejectsNoSamples(t *testing.T) {
	b := arc()
	b.Samples = 0
	_, err := b.Tessellate()
	require.Error(t, err)
}

func TestSegmentPose(t *testing.T) {
	b := BezierSpec{
		P0:      [3]float32{0, 0, 1},
		P1:      [3]float32{0, 1, 1},
		P2:      [3]float32{0, 2, 1},
		Samples: 1,
	}
	segs, err := b.Tessellate()
	require.NoError(t, err)
	pose := segs[0].Pose()

	// Midpoint position, fixed 90° tilt, yaw toward +Y.
	require.Equal(t, [3]float32{0, 1, 1}, pose.Position)
	require.InDelta(t, math32.Pi/2, pose.Rotation[0], 1e-6)
	require.InDelta(t, 0, pose.Rotation[1], 1e-6)
	require.InDelta(t, math32.Pi/2, pose.Rotation[2], 1e-6)
}
