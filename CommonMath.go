package kinetic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The kernel uses mgl64.Vec2 as its vector type. This file adds the 2D
// rigid-body operations mathgl does not provide: scalar cross products,
// sin/cos rotations and the rigid transform.

// IsValidFloat ensures that a floating point number is not a NaN or infinity.
func IsValidFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Vec2IsValid reports whether both coordinates are finite.
func Vec2IsValid(v mgl64.Vec2) bool {
	return IsValidFloat(v.X()) && IsValidFloat(v.Y())
}

// Vec2Cross performs the cross product on two vectors. In 2D this produces a
// scalar.
func Vec2Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Vec2CrossVectorScalar performs the cross product on a vector and a scalar.
// In 2D this produces a vector.
func Vec2CrossVectorScalar(a mgl64.Vec2, s float64) mgl64.Vec2 {
	return mgl64.Vec2{s * a.Y(), -s * a.X()}
}

// Vec2CrossScalarVector performs the cross product on a scalar and a vector.
// In 2D this produces a vector.
func Vec2CrossScalarVector(s float64, a mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-s * a.Y(), s * a.X()}
}

// Vec2Skew returns the skew vector such that dot(skew_vec, other) ==
// cross(vec, other).
func Vec2Skew(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

func Vec2Min(a, b mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y())}
}

func Vec2Max(a, b mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y())}
}

func Vec2Abs(a mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Abs(a.X()), math.Abs(a.Y())}
}

func FloatClamp(a, low, high float64) float64 {
	return math.Max(low, math.Min(a, high))
}

// Rot is a rotation stored as sine and cosine.
type Rot struct {
	S, C float64
}

// MakeRot returns the identity rotation.
func MakeRot() Rot {
	return Rot{S: 0.0, C: 1.0}
}

// MakeRotFromAngle initializes from an angle in radians.
func MakeRotFromAngle(anglerad float64) Rot {
	return Rot{
		S: math.Sin(anglerad),
		C: math.Cos(anglerad),
	}
}

// Set using an angle in radians.
func (r *Rot) Set(anglerad float64) {
	r.S = math.Sin(anglerad)
	r.C = math.Cos(anglerad)
}

// SetIdentity sets to the identity rotation.
func (r *Rot) SetIdentity() {
	r.S = 0.0
	r.C = 1.0
}

// GetAngle returns the angle in radians.
func (r Rot) GetAngle() float64 {
	return math.Atan2(r.S, r.C)
}

// GetXAxis returns the x-axis.
func (r Rot) GetXAxis() mgl64.Vec2 {
	return mgl64.Vec2{r.C, r.S}
}

// GetYAxis returns the y-axis.
func (r Rot) GetYAxis() mgl64.Vec2 {
	return mgl64.Vec2{-r.S, r.C}
}

// RotMul multiplies two rotations: q * r
func RotMul(q, r Rot) Rot {
	return Rot{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

// RotMulT transpose-multiplies two rotations: qT * r
func RotMulT(q, r Rot) Rot {
	return Rot{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

// RotVec2Mul rotates a vector.
func RotVec2Mul(q Rot, v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		q.C*v.X() - q.S*v.Y(),
		q.S*v.X() + q.C*v.Y(),
	}
}

// RotVec2MulT inverse-rotates a vector.
func RotVec2MulT(q Rot, v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		q.C*v.X() + q.S*v.Y(),
		-q.S*v.X() + q.C*v.Y(),
	}
}

// Transform contains translation and rotation. It is used to represent the
// position and orientation of rigid frames; it maps local shape space to
// world space.
type Transform struct {
	P mgl64.Vec2
	Q Rot
}

// MakeTransform returns the identity transform.
func MakeTransform() Transform {
	return Transform{
		P: mgl64.Vec2{},
		Q: MakeRot(),
	}
}

// MakeTransformFromPositionAndAngle initializes using a position vector and
// an angle in radians.
func MakeTransformFromPositionAndAngle(position mgl64.Vec2, anglerad float64) Transform {
	return Transform{
		P: position,
		Q: MakeRotFromAngle(anglerad),
	}
}

// SetIdentity sets this to the identity transform.
func (t *Transform) SetIdentity() {
	t.P = mgl64.Vec2{}
	t.Q.SetIdentity()
}

// Set this based on the position and angle.
func (t *Transform) Set(position mgl64.Vec2, anglerad float64) {
	t.P = position
	t.Q.Set(anglerad)
}

// TransformVec2Mul maps a local point to world space.
func TransformVec2Mul(T Transform, v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(T.Q.C*v.X() - T.Q.S*v.Y()) + T.P.X(),
		(T.Q.S*v.X() + T.Q.C*v.Y()) + T.P.Y(),
	}
}

// TransformVec2MulT maps a world point to local space. The translation is
// removed first in world space, then the rotation is inverted.
func TransformVec2MulT(T Transform, v mgl64.Vec2) mgl64.Vec2 {
	px := v.X() - T.P.X()
	py := v.Y() - T.P.Y()

	return mgl64.Vec2{
		T.Q.C*px + T.Q.S*py,
		-T.Q.S*px + T.Q.C*py,
	}
}

func TransformMul(A, B Transform) Transform {
	return Transform{
		P: RotVec2Mul(A.Q, B.P).Add(A.P),
		Q: RotMul(A.Q, B.Q),
	}
}

func TransformMulT(A, B Transform) Transform {
	return Transform{
		P: RotVec2MulT(A.Q, B.P.Sub(A.P)),
		Q: RotMulT(A.Q, B.Q),
	}
}
