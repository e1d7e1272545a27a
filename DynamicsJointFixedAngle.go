package kinetic

// FixedAngleJoint drives one body toward an absolute world-frame angle with
// a 1-D angular sequential impulse.
//
// The error is left unwrapped: a body that has wound up several full turns
// past the target is corrected through all of them, not through the nearest
// equivalent angle.
//
// C = rotation - target
// Cdot = w
// impulse = (bias - w) * (1 - softness) / invI
type FixedAngleJoint struct {
	Joint

	M_body        *Body
	M_targetAngle float64

	// Solver temp, recomputed every PreStep.
	M_massFactor   float64
	M_velocityBias float64
}

func NewFixedAngleJoint(body *Body, targetAngle float64) *FixedAngleJoint {
	return &FixedAngleJoint{
		Joint:         MakeJoint(JointType.E_fixedAngleJoint),
		M_body:        body,
		M_targetAngle: targetAngle,
	}
}

func (joint *FixedAngleJoint) GetBody() *Body {
	return joint.M_body
}

func (joint *FixedAngleJoint) GetTargetAngle() float64 {
	return joint.M_targetAngle
}

func (joint *FixedAngleJoint) SetTargetAngle(targetAngle float64) {
	joint.M_targetAngle = targetAngle
}

// Validate disposes the joint if the referenced body has been destroyed.
func (joint *FixedAngleJoint) Validate() {
	if joint.M_disposed {
		return
	}
	if joint.M_body.IsDisposed() {
		joint.Dispose()
	}
}

// PreStep computes the constraint error and the per-step solver terms. The
// body must have finite non-zero inverse inertia; excluding static bodies is
// the caller's responsibility.
func (joint *FixedAngleJoint) PreStep(invDt float64) {
	if joint.M_disposed {
		return
	}

	joint.M_jointError = joint.M_body.Rotation - joint.M_targetAngle
	joint.checkBreakpoint()
	if joint.M_disposed {
		return
	}

	joint.M_velocityBias = -joint.M_biasFactor * invDt * joint.M_jointError
	joint.M_massFactor = (1.0 - joint.M_softness) / joint.M_body.InvI
}

// Update applies the clamped angular impulse. The clamp bounds the impulse
// magnitude, not the resulting velocity delta.
func (joint *FixedAngleJoint) Update() {
	if joint.M_disposed {
		return
	}

	impulse := (joint.M_velocityBias - joint.M_body.AngularVelocity) * joint.M_massFactor
	impulse = FloatClamp(impulse, -joint.M_maxImpulse, joint.M_maxImpulse)

	joint.M_body.AngularVelocity += joint.M_body.InvI * impulse
}
