package kinetic

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PolygonShape is a solid convex polygon. The interior of the polygon is to
// the left of each edge: vertices must wind counter-clockwise. A 2-vertex
// polygon degenerates to a line segment with zero mass.
//
// The shape exclusively owns its vertex and normal sequences: Set copies the
// caller's vertices, and Clone deep-copies them again.
type PolygonShape struct {
	Shape

	M_vertices Vertices
	M_normals  Vertices
	M_area     float64
	M_massData MassData
}

// MakePolygonShape returns an empty polygon with the given density. Call Set
// (or SetAsBox / SetAsEdge) before using it.
func MakePolygonShape(density float64) PolygonShape {
	return PolygonShape{
		Shape: Shape{
			M_type:    ShapeType.E_polygon,
			M_radius:  PolygonRadius,
			M_density: density,
		},
	}
}

func NewPolygonShape(density float64) *PolygonShape {
	res := MakePolygonShape(density)
	return &res
}

// NewPolygonShapeFromVertices builds a polygon and assigns its vertices in
// one step.
func NewPolygonShapeFromVertices(vertices Vertices, density float64) *PolygonShape {
	res := MakePolygonShape(density)
	res.Set(vertices)
	return &res
}

func (poly *PolygonShape) VertexCount() int {
	return len(poly.M_vertices)
}

func (poly *PolygonShape) GetVertex(index int) mgl64.Vec2 {
	Assert(0 <= index && index < len(poly.M_vertices))
	return poly.M_vertices[index]
}

// GetNormal returns the outward unit normal of the edge from vertex index to
// the next vertex.
func (poly *PolygonShape) GetNormal(index int) mgl64.Vec2 {
	Assert(0 <= index && index < len(poly.M_normals))
	return poly.M_normals[index]
}

// Area returns the polygon area computed by the last Set.
func (poly *PolygonShape) Area() float64 {
	return poly.M_area
}

// MassData returns the mass, centroid and rotational inertia computed by the
// last Set. The inertia is about the local origin.
func (poly *PolygonShape) MassData() MassData {
	return poly.M_massData
}

// SetDensity changes the density and recomputes the mass properties.
func (poly *PolygonShape) SetDensity(density float64) {
	poly.M_density = density
	if len(poly.M_vertices) > 0 {
		poly.computeProperties()
	}
}

// Set replaces the polygon's vertices. The vertices are copied, so the
// caller's slice may be reused afterwards. The count must be in the range
// [2, MaxPolygonVertices] and the vertices must form a strictly convex
// counter-clockwise polygon with non-degenerate edges; malformed input is a
// caller bug and trips an assertion (winding and convexity only when Debug
// is enabled).
func (poly *PolygonShape) Set(vertices Vertices) {
	n := len(vertices)
	Assert(2 <= n && n <= MaxPolygonVertices)

	poly.M_vertices = vertices.Copy()
	poly.M_normals = make(Vertices, n)

	// Compute normals. Ensure the edges have non-zero length.
	for i := 0; i < n; i++ {
		i2 := (i + 1) % n
		edge := poly.M_vertices[i2].Sub(poly.M_vertices[i])
		Assert(edge.LenSqr() > Epsilon*Epsilon)
		poly.M_normals[i] = Vec2CrossVectorScalar(edge, 1.0).Normalize()
	}

	if Debug && n > 2 {
		Assert(poly.M_vertices.IsCounterClockwise())
		Assert(poly.M_vertices.IsConvex())
	}

	poly.computeProperties()
}

// SetAsBox builds the polygon as an axis-aligned box with the given half
// extents, centered on the local origin.
func (poly *PolygonShape) SetAsBox(hx, hy float64) {
	poly.Set(Vertices{
		{-hx, -hy},
		{hx, -hy},
		{hx, hy},
		{-hx, hy},
	})
}

// SetAsEdge builds the polygon as a degenerate 2-vertex segment.
func (poly *PolygonShape) SetAsEdge(v1, v2 mgl64.Vec2) {
	poly.Set(Vertices{v1, v2})
}

// computeProperties recomputes area, mass, centroid and inertia.
//
// Let rho be the polygon density in mass per unit area. Then:
// mass = rho * int(dA)
// centroid = (1/mass) * rho * int((x, y) * dA)
// I = rho * int((x*x + y*y) * dA)
//
// The integrals are evaluated by summing over a fan of triangles rooted at
// the local origin, with a change of variables to the (u,v) coordinates of
// each triangle: p = e1*u + e2*v, 0 <= u, 0 <= v, u + v <= 1. The Jacobian
// of the transformation is D = cross(e1, e2).
func (poly *PolygonShape) computeProperties() {
	n := len(poly.M_vertices)

	if n == 2 {
		// A segment has no interior: zero mass, zero inertia, midpoint
		// center.
		poly.M_area = 0.0
		poly.M_massData.Mass = 0.0
		poly.M_massData.Center = poly.M_vertices[0].Add(poly.M_vertices[1]).Mul(0.5)
		poly.M_massData.I = 0.0
		return
	}

	Assert(n >= 3)

	center := mgl64.Vec2{}
	area := 0.0
	I := 0.0
	inv3 := 1.0 / 3.0

	for i := 0; i < n; i++ {
		// Triangle edge vectors from the local origin.
		e1 := poly.M_vertices[i]
		e2 := poly.M_vertices[(i+1)%n]

		D := Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		center = center.Add(e1.Add(e2).Mul(triangleArea * inv3))

		ex1, ey1 := e1.X(), e1.Y()
		ex2, ey2 := e2.X(), e2.Y()

		intx2 := ex1*ex1 + ex2*ex1 + ex2*ex2
		inty2 := ey1*ey1 + ey2*ey1 + ey2*ey2

		I += (0.25 * inv3 * D) * (intx2 + inty2)
	}

	// Zero or negative area means degenerate or clockwise input slipped
	// through.
	Assert(area > Epsilon)

	poly.M_area = area
	poly.M_massData.Mass = poly.M_density * area
	poly.M_massData.Center = center.Mul(1.0 / area)
	poly.M_massData.I = poly.M_density * I
}

// TestPoint tests the world point p against the exact polygon; the skin
// radius is ignored.
func (poly *PolygonShape) TestPoint(xf Transform, p mgl64.Vec2) bool {
	pLocal := RotVec2MulT(xf.Q, p.Sub(xf.P))

	for i := 0; i < len(poly.M_vertices); i++ {
		dot := poly.M_normals[i].Dot(pLocal.Sub(poly.M_vertices[i]))
		if dot > 0.0 {
			return false
		}
	}

	return true
}

// RayCast casts a segment against the polygon. Because the polygon is
// solid, rays that start inside do not hit: the normal is not defined.
func (poly *PolygonShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform) bool {
	// Put the ray into the polygon's frame of reference.
	p1 := RotVec2MulT(xf.Q, input.P1.Sub(xf.P))
	p2 := RotVec2MulT(xf.Q, input.P2.Sub(xf.P))
	d := p2.Sub(p1)

	if len(poly.M_vertices) == 2 {
		return poly.rayCastSegment(output, input, xf, p1, d)
	}

	lower, upper := 0.0, input.MaxFraction

	index := -1

	for i := 0; i < len(poly.M_vertices); i++ {
		// p = p1 + a * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + a * dot(normal, d) = 0
		numerator := poly.M_normals[i].Dot(poly.M_vertices[i].Sub(p1))
		denominator := poly.M_normals[i].Dot(d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				// Parallel and outside this half-plane.
				return false
			}
		} else {
			// Note: we want this predicate without division:
			// lower < numerator / denominator, where denominator < 0
			// Since denominator < 0, we have to flip the inequality:
			// lower < numerator / denominator <==> denominator * lower > numerator.
			if denominator < 0.0 && numerator < lower*denominator {
				// Increase lower. The segment enters this half-plane.
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				// Decrease upper. The segment exits this half-plane.
				upper = numerator / denominator
			}
		}

		if upper < lower {
			// The ray exits the polygon before fully entering it.
			return false
		}
	}

	Assert(0.0 <= lower && lower <= input.MaxFraction)

	if index >= 0 {
		output.Fraction = lower
		output.Normal = RotVec2Mul(xf.Q, poly.M_normals[index])
		return true
	}

	return false
}

// rayCastSegment handles the degenerate 2-vertex polygon: solve the
// parametric intersection of the ray with the single edge.
//
// p = p1 + t * d
// v = v1 + s * e
func (poly *PolygonShape) rayCastSegment(output *RayCastOutput, input RayCastInput, xf Transform, p1, d mgl64.Vec2) bool {
	v1 := poly.M_vertices[0]
	v2 := poly.M_vertices[1]
	e := v2.Sub(v1)
	normal := mgl64.Vec2{e.Y(), -e.X()}.Normalize()

	// q = p1 + t * d
	// dot(normal, q - v1) = 0
	// dot(normal, p1 - v1) + t * dot(normal, d) = 0
	numerator := normal.Dot(v1.Sub(p1))
	denominator := normal.Dot(d)

	if denominator == 0.0 {
		return false
	}

	t := numerator / denominator
	if t < 0.0 || input.MaxFraction < t {
		return false
	}

	q := p1.Add(d.Mul(t))

	// q = v1 + s * e
	// s = dot(q - v1, e) / dot(e, e)
	ee := e.Dot(e)
	if ee == 0.0 {
		return false
	}

	s := q.Sub(v1).Dot(e) / ee
	if s < 0.0 || 1.0 < s {
		return false
	}

	output.Fraction = t
	// Orient the normal to oppose the incoming ray.
	if numerator > 0.0 {
		output.Normal = RotVec2Mul(xf.Q, normal).Mul(-1.0)
	} else {
		output.Normal = RotVec2Mul(xf.Q, normal)
	}

	return true
}

// ComputeAABB returns the world-space bounding box, expanded by the skin
// radius in both directions so broad-phase queries never miss the padded
// boundary.
func (poly *PolygonShape) ComputeAABB(xf Transform) AABB {
	lower := TransformVec2Mul(xf, poly.M_vertices[0])
	upper := lower

	for i := 1; i < len(poly.M_vertices); i++ {
		v := TransformVec2Mul(xf, poly.M_vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	r := mgl64.Vec2{poly.M_radius, poly.M_radius}
	return AABB{
		LowerBound: lower.Sub(r),
		UpperBound: upper.Add(r),
	}
}

// Clone returns an independent deep copy.
func (poly *PolygonShape) Clone() ShapeInterface {
	clone := NewPolygonShape(poly.M_density)
	clone.M_radius = poly.M_radius
	clone.M_vertices = poly.M_vertices.Copy()
	clone.M_normals = poly.M_normals.Copy()
	clone.M_area = poly.M_area
	clone.M_massData = poly.M_massData
	return clone
}
