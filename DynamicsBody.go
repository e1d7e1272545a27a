package kinetic

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the rigid-body collaborator the kernel constrains. Only the state
// consumed and produced by shapes and joints lives here: the container that
// steps, collides and sleeps bodies is external to this package.
//
// Rotation is the unwrapped total rotation: accumulated full turns are kept,
// not normalized away, so angular joints see wind-up as real error.
type Body struct {
	Position mgl64.Vec2

	// Rotation in radians, unwrapped.
	Rotation float64

	Velocity        mgl64.Vec2
	AngularVelocity float64

	// Inverse mass and inverse rotational inertia about the center of
	// mass. Zero means immovable on that degree of freedom.
	InvMass float64
	InvI    float64

	disposed bool
}

func NewBody() *Body {
	return &Body{}
}

// SetMassFromShape consumes the shape's mass properties. The shape reports
// inertia about its local origin; the parallel-axis shift to the centroid
// happens here, in the body.
func (body *Body) SetMassFromShape(shape ShapeInterface) {
	md := shape.MassData()

	if md.Mass > 0.0 {
		body.InvMass = 1.0 / md.Mass
	} else {
		body.InvMass = 0.0
	}

	centerI := md.I - md.Mass*md.Center.Dot(md.Center)
	if centerI > 0.0 {
		body.InvI = 1.0 / centerI
	} else {
		body.InvI = 0.0
	}
}

// GetTransform returns the local-to-world transform for the body's shapes.
func (body *Body) GetTransform() Transform {
	return MakeTransformFromPositionAndAngle(body.Position, body.Rotation)
}

// ApplyAngularImpulse changes the angular velocity by InvI * impulse.
func (body *Body) ApplyAngularImpulse(impulse float64) {
	body.AngularVelocity += body.InvI * impulse
}

// ApplyImpulse changes the linear velocity by InvMass * impulse.
func (body *Body) ApplyImpulse(impulse mgl64.Vec2) {
	body.Velocity = body.Velocity.Add(impulse.Mul(body.InvMass))
}

// Advance integrates the current velocities over dt. The owning world
// normally does this once per tick, after the joints have updated the
// velocities.
func (body *Body) Advance(dt float64) {
	body.Position = body.Position.Add(body.Velocity.Mul(dt))
	body.Rotation += body.AngularVelocity * dt
}

// Dispose marks the body destroyed. Joints referencing it self-dispose on
// their next Validate.
func (body *Body) Dispose() {
	body.disposed = true
}

func (body *Body) IsDisposed() bool {
	return body.disposed
}
