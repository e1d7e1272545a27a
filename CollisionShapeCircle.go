package kinetic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CircleShape is a circle centered on a local-frame position. For circles
// the skin radius and the geometric radius coincide.
type CircleShape struct {
	Shape

	M_p        mgl64.Vec2
	M_massData MassData
}

func MakeCircleShape(radius, density float64) CircleShape {
	res := CircleShape{
		Shape: Shape{
			M_type:    ShapeType.E_circle,
			M_radius:  radius,
			M_density: density,
		},
		M_p: mgl64.Vec2{},
	}
	res.computeProperties()
	return res
}

func NewCircleShape(radius, density float64) *CircleShape {
	res := MakeCircleShape(radius, density)
	return &res
}

// SetPosition moves the circle center in the local frame and recomputes the
// mass properties.
func (shape *CircleShape) SetPosition(p mgl64.Vec2) {
	shape.M_p = p
	shape.computeProperties()
}

func (shape *CircleShape) GetPosition() mgl64.Vec2 {
	return shape.M_p
}

func (shape *CircleShape) MassData() MassData {
	return shape.M_massData
}

func (shape *CircleShape) SetDensity(density float64) {
	shape.M_density = density
	shape.computeProperties()
}

func (shape *CircleShape) computeProperties() {
	shape.M_massData.Mass = shape.M_density * Pi * shape.M_radius * shape.M_radius
	shape.M_massData.Center = shape.M_p

	// Inertia about the local origin.
	shape.M_massData.I = shape.M_massData.Mass * (0.5*shape.M_radius*shape.M_radius + shape.M_p.Dot(shape.M_p))
}

func (shape *CircleShape) TestPoint(xf Transform, p mgl64.Vec2) bool {
	center := xf.P.Add(RotVec2Mul(xf.Q, shape.M_p))
	d := p.Sub(center)
	return d.Dot(d) <= shape.M_radius*shape.M_radius
}

// RayCast intersects the segment with the circle.
//
// Collision Detection in Interactive 3D Environments by Gino van den Bergen
// From Section 3.1.2
// x = s + a * r
// norm(x) = radius
func (shape *CircleShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform) bool {
	position := xf.P.Add(RotVec2Mul(xf.Q, shape.M_p))
	s := input.P1.Sub(position)
	b := s.Dot(s) - shape.M_radius*shape.M_radius

	// Solve quadratic equation.
	r := input.P2.Sub(input.P1)
	c := s.Dot(r)
	rr := r.Dot(r)
	sigma := c*c - rr*b

	// Check for negative discriminant and short segment.
	if sigma < 0.0 || rr < Epsilon {
		return false
	}

	// Find the point of intersection of the line with the circle.
	a := -(c + math.Sqrt(sigma))

	// Is the intersection point on the segment?
	if 0.0 <= a && a <= input.MaxFraction*rr {
		a /= rr
		output.Fraction = a
		output.Normal = s.Add(r.Mul(a)).Normalize()
		return true
	}

	return false
}

func (shape *CircleShape) ComputeAABB(xf Transform) AABB {
	p := xf.P.Add(RotVec2Mul(xf.Q, shape.M_p))
	r := mgl64.Vec2{shape.M_radius, shape.M_radius}
	return AABB{
		LowerBound: p.Sub(r),
		UpperBound: p.Add(r),
	}
}

func (shape *CircleShape) Clone() ShapeInterface {
	clone := NewCircleShape(shape.M_radius, shape.M_density)
	clone.M_p = shape.M_p
	clone.M_massData = shape.M_massData
	return clone
}
