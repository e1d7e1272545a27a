package kinetic

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertices is an ordered sequence of 2D points describing a polygon
// boundary. Shapes validated by the kernel require counter-clockwise winding
// and strict convexity; the helpers here let callers build and check such
// input.
type Vertices []mgl64.Vec2

// Copy returns an independent copy of the sequence.
func (vs Vertices) Copy() Vertices {
	out := make(Vertices, len(vs))
	copy(out, vs)
	return out
}

// Area returns the signed area enclosed by the sequence. Positive for
// counter-clockwise winding.
func (vs Vertices) Area() float64 {
	area := 0.0
	for i := 0; i < len(vs); i++ {
		j := (i + 1) % len(vs)
		area += Vec2Cross(vs[i], vs[j])
	}
	return 0.5 * area
}

// Centroid returns the area centroid of the polygon. The polygon must
// enclose a non-zero area.
func (vs Vertices) Centroid() mgl64.Vec2 {
	Assert(len(vs) >= 3)

	c := mgl64.Vec2{}
	area := 0.0
	inv3 := 1.0 / 3.0

	// Fan triangulation from the local origin.
	for i := 0; i < len(vs); i++ {
		p2 := vs[i]
		p3 := vs[(i+1)%len(vs)]

		triangleArea := 0.5 * Vec2Cross(p2, p3)
		area += triangleArea

		// Area weighted centroid
		c = c.Add(p2.Add(p3).Mul(triangleArea * inv3))
	}

	Assert(area > Epsilon)
	return c.Mul(1.0 / area)
}

// IsCounterClockwise reports whether the sequence winds counter-clockwise.
func (vs Vertices) IsCounterClockwise() bool {
	return vs.Area() > 0.0
}

// ForceCounterClockwise reverses the sequence in place if it winds
// clockwise.
func (vs Vertices) ForceCounterClockwise() {
	if len(vs) < 3 || vs.IsCounterClockwise() {
		return
	}
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// IsConvex reports whether every vertex lies strictly inside the half-plane
// of every non-incident edge. Collinear vertices fail the test.
func (vs Vertices) IsConvex() bool {
	if len(vs) < 3 {
		return false
	}

	for i := 0; i < len(vs); i++ {
		i2 := (i + 1) % len(vs)
		edge := vs[i2].Sub(vs[i])

		for j := 0; j < len(vs); j++ {
			if j == i || j == i2 {
				continue
			}
			r := vs[j].Sub(vs[i])
			if Vec2Cross(edge, r) <= 0.0 {
				return false
			}
		}
	}

	return true
}

// Translate offsets every vertex in place.
func (vs Vertices) Translate(d mgl64.Vec2) {
	for i := range vs {
		vs[i] = vs[i].Add(d)
	}
}

// Scale multiplies every vertex component-wise in place.
func (vs Vertices) Scale(s mgl64.Vec2) {
	for i := range vs {
		vs[i] = mgl64.Vec2{vs[i].X() * s.X(), vs[i].Y() * s.Y()}
	}
}

// Rotate rotates every vertex about the local origin in place.
func (vs Vertices) Rotate(anglerad float64) {
	q := MakeRotFromAngle(anglerad)
	for i := range vs {
		vs[i] = RotVec2Mul(q, vs[i])
	}
}
