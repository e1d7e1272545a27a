package kinetic

// AngleJoint holds the relative angle between two bodies at a target value.
// The same 1-D angular constraint as FixedAngleJoint, with the effective
// mass split across both bodies and equal-and-opposite impulses.
//
// C = rotationB - rotationA - target
// Cdot = wB - wA
type AngleJoint struct {
	Joint

	M_bodyA       *Body
	M_bodyB       *Body
	M_targetAngle float64

	// Solver temp, recomputed every PreStep.
	M_massFactor   float64
	M_velocityBias float64
}

func NewAngleJoint(bodyA, bodyB *Body, targetAngle float64) *AngleJoint {
	Assert(bodyA != bodyB)
	return &AngleJoint{
		Joint:         MakeJoint(JointType.E_angleJoint),
		M_bodyA:       bodyA,
		M_bodyB:       bodyB,
		M_targetAngle: targetAngle,
	}
}

func (joint *AngleJoint) GetBodyA() *Body {
	return joint.M_bodyA
}

func (joint *AngleJoint) GetBodyB() *Body {
	return joint.M_bodyB
}

func (joint *AngleJoint) GetTargetAngle() float64 {
	return joint.M_targetAngle
}

func (joint *AngleJoint) SetTargetAngle(targetAngle float64) {
	joint.M_targetAngle = targetAngle
}

// Validate disposes the joint if either referenced body has been destroyed.
func (joint *AngleJoint) Validate() {
	if joint.M_disposed {
		return
	}
	if joint.M_bodyA.IsDisposed() || joint.M_bodyB.IsDisposed() {
		joint.Dispose()
	}
}

func (joint *AngleJoint) PreStep(invDt float64) {
	if joint.M_disposed {
		return
	}

	joint.M_jointError = joint.M_bodyB.Rotation - joint.M_bodyA.Rotation - joint.M_targetAngle
	joint.checkBreakpoint()
	if joint.M_disposed {
		return
	}

	joint.M_velocityBias = -joint.M_biasFactor * invDt * joint.M_jointError
	joint.M_massFactor = (1.0 - joint.M_softness) / (joint.M_bodyA.InvI + joint.M_bodyB.InvI)
}

func (joint *AngleJoint) Update() {
	if joint.M_disposed {
		return
	}

	cdot := joint.M_bodyB.AngularVelocity - joint.M_bodyA.AngularVelocity
	impulse := (joint.M_velocityBias - cdot) * joint.M_massFactor
	impulse = FloatClamp(impulse, -joint.M_maxImpulse, joint.M_maxImpulse)

	joint.M_bodyA.AngularVelocity -= joint.M_bodyA.InvI * impulse
	joint.M_bodyB.AngularVelocity += joint.M_bodyB.InvI * impulse
}
