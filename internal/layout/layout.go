package layout

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// HexOffset is the angular offset that turns the default vertex-right hexagon
// into a flat-topped one. Floor, rings, altar tiers, and horn placement all
// share this offset; pillar anchors deliberately use 0 so they land on the
// rotated hexagon's vertices.
const HexOffset = math32.Pi / 6

// Tau is one full turn.
const Tau = 2 * math32.Pi

// Point2 is a position in the ground plane.
type Point2 struct {
	X, Y float32
}

// Dist returns the Euclidean distance to q.
func (p Point2) Dist(q Point2) float32 {
	return math32.Hypot(q.X-p.X, q.Y-p.Y)
}

// Pose places a primitive: position plus XYZ Euler rotation in radians,
// applied in X, Y, Z order. Value type, copied freely.
type Pose struct {
	Position [3]float32
	Rotation [3]float32
}

// At returns a pose at (x, y, z) with no rotation.
func At(x, y, z float32) Pose {
	return Pose{Position: [3]float32{x, y, z}}
}

// YawedAt returns a pose at (x, y, z) rotated about the vertical axis.
func YawedAt(x, y, z, yaw float32) Pose {
	return Pose{Position: [3]float32{x, y, z}, Rotation: [3]float32{0, 0, yaw}}
}

// RingPoints returns n points evenly spaced by Tau/n on a circle of the given
// radius, starting at the angular offset. n must be >= 1.
func RingPoints(radius float32, n int, offset float32) []Point2 {
	pts := make([]Point2, n)
	for i := 0; i < n; i++ {
		a := offset + float32(i)*Tau/float32(n)
		pts[i] = Point2{X: math32.Cos(a) * radius, Y: math32.Sin(a) * radius}
	}
	return pts
}

// PolygonVertices is RingPoints for a polygon outline; with offset HexOffset
// and sides 6 it yields the flat-topped hexagon the whole platform aligns to.
func PolygonVertices(radius float32, sides int, offset float32) []Point2 {
	return RingPoints(radius, sides, offset)
}

// EdgePoints interpolates count points along the segment v1->v2 at fractional
// positions (j+0.5)/count, so the points sit strictly inside the edge and
// never on a vertex. A positive inset then pulls each point toward the origin
// by that distance, keeping perimeter decorations on the platform.
func EdgePoints(v1, v2 Point2, count int, inset float32) []Point2 {
	pts := make([]Point2, count)
	for j := 0; j < count; j++ {
		t := (float32(j) + 0.5) / float32(count)
		x := v1.X + (v2.X-v1.X)*t
		y := v1.Y + (v2.Y-v1.Y)*t
		if inset > 0 {
			d := math32.Hypot(x, y)
			if d > inset {
				x *= (d - inset) / d
				y *= (d - inset) / d
			}
		}
		pts[j] = Point2{X: x, Y: y}
	}
	return pts
}

// EdgeAngle returns the direction of the edge v1->v2 in the ground plane.
func EdgeAngle(v1, v2 Point2) float32 {
	return math32.Atan2(v2.Y-v1.Y, v2.X-v1.X)
}

// ScatterDisk draws a point uniformly distributed by area inside a disk of
// the given radius. The square root on the radial draw is what makes the
// density uniform per area rather than per radius.
func ScatterDisk(rng *rand.Rand, radius float32) Point2 {
	a := float32(rng.Float64()) * Tau
	r := radius * math32.Sqrt(float32(rng.Float64()))
	return Point2{X: math32.Cos(a) * r, Y: math32.Sin(a) * r}
}
