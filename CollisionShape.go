package kinetic

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MassData holds the mass properties computed for a shape.
type MassData struct {
	// The mass of the shape, usually in kilograms.
	Mass float64

	// The position of the shape's centroid relative to the shape's origin.
	Center mgl64.Vec2

	// The rotational inertia of the shape about the local origin. Callers
	// needing the inertia about the centroid must apply the parallel-axis
	// shift themselves.
	I float64
}

func MakeMassData() MassData {
	return MassData{
		Mass:   0.0,
		Center: mgl64.Vec2{},
		I:      0.0,
	}
}

// AABB is an axis aligned bounding box. Derived from shape state, never
// persisted.
type AABB struct {
	LowerBound mgl64.Vec2
	UpperBound mgl64.Vec2
}

func MakeAABB() AABB {
	return AABB{}
}

// GetCenter returns the center of the AABB.
func (bb AABB) GetCenter() mgl64.Vec2 {
	return bb.LowerBound.Add(bb.UpperBound).Mul(0.5)
}

// GetExtents returns the half-widths of the AABB.
func (bb AABB) GetExtents() mgl64.Vec2 {
	return bb.UpperBound.Sub(bb.LowerBound).Mul(0.5)
}

// GetPerimeter returns the perimeter length.
func (bb AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X() - bb.LowerBound.X()
	wy := bb.UpperBound.Y() - bb.LowerBound.Y()
	return 2.0 * (wx + wy)
}

// CombineTwoInPlace sets this box to the union of two boxes.
func (bb *AABB) CombineTwoInPlace(aabb1, aabb2 AABB) {
	bb.LowerBound = Vec2Min(aabb1.LowerBound, aabb2.LowerBound)
	bb.UpperBound = Vec2Max(aabb1.UpperBound, aabb2.UpperBound)
}

// Contains reports whether this box fully contains the given box.
func (bb AABB) Contains(aabb AABB) bool {
	result := true
	result = result && bb.LowerBound.X() <= aabb.LowerBound.X()
	result = result && bb.LowerBound.Y() <= aabb.LowerBound.Y()
	result = result && aabb.UpperBound.X() <= bb.UpperBound.X()
	result = result && aabb.UpperBound.Y() <= bb.UpperBound.Y()
	return result
}

// TestOverlap reports whether two boxes intersect.
func TestOverlap(a, b AABB) bool {
	d1 := b.LowerBound.Sub(a.UpperBound)
	d2 := a.LowerBound.Sub(b.UpperBound)

	if d1.X() > 0.0 || d1.Y() > 0.0 {
		return false
	}

	if d2.X() > 0.0 || d2.Y() > 0.0 {
		return false
	}

	return true
}

// RayCastInput describes a cast along the segment p1 to p2, cut off at
// MaxFraction along it. Partial-segment casts use MaxFraction < 1.
type RayCastInput struct {
	P1, P2      mgl64.Vec2
	MaxFraction float64
}

// RayCastOutput reports a hit at p1 + fraction * (p2 - p1) with the surface
// outward normal at the hit point. Only valid when the cast reports success.
type RayCastOutput struct {
	Normal   mgl64.Vec2
	Fraction float64
}

var ShapeType = struct {
	E_circle  uint8
	E_polygon uint8
}{
	E_circle:  0,
	E_polygon: 1,
}

// ShapeInterface is the contract shared by all collision shape variants.
// All queries are pure functions of shape state and the input transform;
// they are safe to call concurrently as long as nothing mutates the shape.
type ShapeInterface interface {
	// GetType returns the shape type. You can use this to down cast to the
	// concrete shape.
	GetType() uint8

	// GetRadius returns the skin radius around the exact geometry.
	GetRadius() float64

	GetDensity() float64

	// SetDensity sets the density and recomputes the mass properties.
	SetDensity(density float64)

	// MassData returns the mass properties last computed for this shape.
	MassData() MassData

	// TestPoint tests a point given in world coordinates for exact
	// containment. The skin radius is ignored.
	TestPoint(xf Transform, p mgl64.Vec2) bool

	// RayCast casts a segment against the shape. Returns true and fills
	// output on a hit.
	RayCast(output *RayCastOutput, input RayCastInput, xf Transform) bool

	// ComputeAABB returns the axis aligned bounding box of the shape under
	// the given transform, expanded by the skin radius.
	ComputeAABB(xf Transform) AABB

	// Clone returns an independent deep copy of the concrete shape.
	Clone() ShapeInterface
}

// Shape is the state common to all shape variants.
type Shape struct {
	M_type    uint8
	M_radius  float64
	M_density float64
}

func (shape Shape) GetType() uint8 {
	return shape.M_type
}

func (shape Shape) GetRadius() float64 {
	return shape.M_radius
}

func (shape Shape) GetDensity() float64 {
	return shape.M_density
}
