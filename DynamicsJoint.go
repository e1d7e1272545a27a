package kinetic

var JointType = struct {
	E_unknownJoint    uint8
	E_fixedAngleJoint uint8
	E_angleJoint      uint8
}{
	E_unknownJoint:    0,
	E_fixedAngleJoint: 1,
	E_angleJoint:      2,
}

// JointInterface is the per-step contract the world stepper drives, once per
// fixed tick and in this order across all active joints:
//
//	Validate() -> PreStep(invDt) -> Update()
//
// Validate lets a joint self-dispose when a referenced body has been
// destroyed. After disposal every call is a no-op; disposed joints are never
// revived and the stepper is expected to eventually reap them.
type JointInterface interface {
	GetType() uint8

	Validate()
	PreStep(invDt float64)
	Update()

	IsDisposed() bool
	Dispose()

	// GetError returns the signed constraint error computed by the last
	// PreStep. Diagnostic only.
	GetError() float64

	GetSoftness() float64
	SetSoftness(softness float64)

	GetBiasFactor() float64
	SetBiasFactor(biasFactor float64)

	GetBreakpoint() float64
	SetBreakpoint(breakpoint float64)

	GetMaxImpulse() float64
	SetMaxImpulse(maxImpulse float64)
}

// Joint is the state common to all joint variants.
//
// Softness is in [0,1]: 0 is rigid, values approaching 1 leave the
// constraint negligibly enforced. BiasFactor is the fraction of the
// positional error corrected per step (Baumgarte stabilization). Breakpoint
// and MaxImpulse default to unbounded, so joints never break or clamp unless
// configured to.
type Joint struct {
	M_type       uint8
	M_softness   float64
	M_biasFactor float64
	M_breakpoint float64
	M_maxImpulse float64
	M_jointError float64
	M_disposed   bool
}

func MakeJoint(jointType uint8) Joint {
	return Joint{
		M_type:       jointType,
		M_softness:   0.0,
		M_biasFactor: 0.2,
		M_breakpoint: MaxFloat,
		M_maxImpulse: MaxFloat,
	}
}

func (j *Joint) GetType() uint8 {
	return j.M_type
}

// Dispose makes the joint permanently inert.
func (j *Joint) Dispose() {
	j.M_disposed = true
}

func (j *Joint) IsDisposed() bool {
	return j.M_disposed
}

func (j *Joint) GetError() float64 {
	return j.M_jointError
}

func (j *Joint) GetSoftness() float64 {
	return j.M_softness
}

func (j *Joint) SetSoftness(softness float64) {
	j.M_softness = softness
}

func (j *Joint) GetBiasFactor() float64 {
	return j.M_biasFactor
}

func (j *Joint) SetBiasFactor(biasFactor float64) {
	j.M_biasFactor = biasFactor
}

func (j *Joint) GetBreakpoint() float64 {
	return j.M_breakpoint
}

func (j *Joint) SetBreakpoint(breakpoint float64) {
	j.M_breakpoint = breakpoint
}

func (j *Joint) GetMaxImpulse() float64 {
	return j.M_maxImpulse
}

func (j *Joint) SetMaxImpulse(maxImpulse float64) {
	j.M_maxImpulse = maxImpulse
}

// checkBreakpoint disposes the joint once the constraint error exceeds the
// configured breakpoint.
func (j *Joint) checkBreakpoint() {
	if j.M_jointError > j.M_breakpoint || -j.M_jointError > j.M_breakpoint {
		j.Dispose()
	}
}
