package kinetic

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Helper functions
func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func vec2Equal(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance &&
		math.Abs(a.Y()-b.Y()) <= tolerance
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected assertion panic", name)
		}
	}()
	fn()
}

func unitSquare() Vertices {
	return Vertices{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestPolygonSetNormals(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)

	expected := []mgl64.Vec2{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if poly.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", poly.VertexCount())
	}
	for i, want := range expected {
		if got := poly.GetNormal(i); !vec2Equal(got, want, 1e-12) {
			t.Errorf("GetNormal(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPolygonSetCopiesInput(t *testing.T) {
	input := unitSquare()
	poly := NewPolygonShapeFromVertices(input, 1.0)

	// Mutating the caller's slice must not reach the shape.
	input[0] = mgl64.Vec2{-100, -100}

	if got := poly.GetVertex(0); !vec2Equal(got, mgl64.Vec2{0, 0}, 0) {
		t.Errorf("GetVertex(0) = %v after caller mutation, want (0,0)", got)
	}
}

func TestPolygonSetContractViolations(t *testing.T) {
	expectPanic(t, "too few vertices", func() {
		NewPolygonShape(1.0).Set(Vertices{{0, 0}})
	})
	expectPanic(t, "too many vertices", func() {
		vs := make(Vertices, MaxPolygonVertices+1)
		for i := range vs {
			a := 2.0 * Pi * float64(i) / float64(len(vs))
			vs[i] = mgl64.Vec2{math.Cos(a), math.Sin(a)}
		}
		NewPolygonShape(1.0).Set(vs)
	})
	expectPanic(t, "degenerate edge", func() {
		NewPolygonShape(1.0).Set(Vertices{{0, 0}, {0, 0}, {1, 1}})
	})
}

func TestPolygonMassProperties(t *testing.T) {
	tests := []struct {
		name       string
		vertices   Vertices
		density    float64
		wantArea   float64
		wantMass   float64
		wantCenter mgl64.Vec2
		wantI      float64
	}{
		{
			name:       "unit square density 1",
			vertices:   unitSquare(),
			density:    1.0,
			wantArea:   1.0,
			wantMass:   1.0,
			wantCenter: mgl64.Vec2{0.5, 0.5},
			// int(x^2+y^2) over [0,1]^2 about the local origin.
			wantI: 2.0 / 3.0,
		},
		{
			name:       "centered 2x2 box density 2",
			vertices:   Vertices{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
			density:    2.0,
			wantArea:   4.0,
			wantMass:   8.0,
			wantCenter: mgl64.Vec2{0, 0},
			// (m/12)*(w^2+h^2) = (8/12)*8
			wantI: 16.0 / 3.0,
		},
		{
			name:       "right triangle",
			vertices:   Vertices{{0, 0}, {1, 0}, {0, 1}},
			density:    1.0,
			wantArea:   0.5,
			wantMass:   0.5,
			wantCenter: mgl64.Vec2{1.0 / 3.0, 1.0 / 3.0},
			// int(x^2+y^2) over the triangle = 1/6.
			wantI: 1.0 / 6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := NewPolygonShapeFromVertices(tt.vertices, tt.density)
			md := poly.MassData()

			if !floatEqual(poly.Area(), tt.wantArea, 1e-12) {
				t.Errorf("Area() = %v, want %v", poly.Area(), tt.wantArea)
			}
			if !floatEqual(md.Mass, tt.wantMass, 1e-12) {
				t.Errorf("Mass = %v, want %v", md.Mass, tt.wantMass)
			}
			if !vec2Equal(md.Center, tt.wantCenter, 1e-12) {
				t.Errorf("Center = %v, want %v", md.Center, tt.wantCenter)
			}
			if !floatEqual(md.I, tt.wantI, 1e-12) {
				t.Errorf("I = %v, want %v", md.I, tt.wantI)
			}
		})
	}
}

func TestPolygonSetDensityRecomputes(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)
	poly.SetDensity(3.0)

	if md := poly.MassData(); !floatEqual(md.Mass, 3.0, 1e-12) {
		t.Errorf("Mass after SetDensity(3) = %v, want 3", md.Mass)
	}
}

func TestPolygonSegmentProperties(t *testing.T) {
	poly := NewPolygonShape(1.0)
	poly.SetAsEdge(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0})

	md := poly.MassData()
	if md.Mass != 0.0 || md.I != 0.0 {
		t.Errorf("segment mass/I = %v/%v, want 0/0", md.Mass, md.I)
	}
	if !vec2Equal(md.Center, mgl64.Vec2{1, 0}, 1e-12) {
		t.Errorf("segment center = %v, want midpoint (1,0)", md.Center)
	}
}

func TestPolygonTestPoint(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)
	identity := MakeTransform()

	tests := []struct {
		name string
		xf   Transform
		p    mgl64.Vec2
		want bool
	}{
		{"center", identity, mgl64.Vec2{0.5, 0.5}, true},
		{"outside", identity, mgl64.Vec2{2, 2}, false},
		{"on vertex", identity, mgl64.Vec2{0, 0}, true},
		{"just outside an edge", identity, mgl64.Vec2{1.001, 0.5}, false},
		{"translated", MakeTransformFromPositionAndAngle(mgl64.Vec2{10, 0}, 0), mgl64.Vec2{10.5, 0.5}, true},
		{"rotated quarter turn", MakeTransformFromPositionAndAngle(mgl64.Vec2{}, 0.5*Pi), mgl64.Vec2{-0.5, 0.5}, true},
		{"rotated quarter turn miss", MakeTransformFromPositionAndAngle(mgl64.Vec2{}, 0.5*Pi), mgl64.Vec2{0.5, 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := poly.TestPoint(tt.xf, tt.p); got != tt.want {
				t.Errorf("TestPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPolygonComputeAABBContainsVertices(t *testing.T) {
	vertices := Vertices{{-0.3, 0}, {0.8, -0.2}, {1, 1}, {0, 0.9}}
	poly := NewPolygonShapeFromVertices(vertices, 1.0)
	xf := MakeTransformFromPositionAndAngle(mgl64.Vec2{3, -2}, 0.7)

	aabb := poly.ComputeAABB(xf)

	// Shrunk by the skin radius, the box still contains every transformed
	// vertex.
	r := mgl64.Vec2{poly.GetRadius(), poly.GetRadius()}
	lower := aabb.LowerBound.Add(r)
	upper := aabb.UpperBound.Sub(r)

	for i, v := range vertices {
		w := TransformVec2Mul(xf, v)
		if w.X() < lower.X()-1e-12 || w.Y() < lower.Y()-1e-12 ||
			w.X() > upper.X()+1e-12 || w.Y() > upper.Y()+1e-12 {
			t.Errorf("vertex %d at %v escapes shrunk AABB [%v, %v]", i, w, lower, upper)
		}
	}
}

func TestPolygonComputeAABBIdentity(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)
	aabb := poly.ComputeAABB(MakeTransform())

	r := poly.GetRadius()
	if !vec2Equal(aabb.LowerBound, mgl64.Vec2{-r, -r}, 1e-12) {
		t.Errorf("LowerBound = %v, want (-%v, -%v)", aabb.LowerBound, r, r)
	}
	if !vec2Equal(aabb.UpperBound, mgl64.Vec2{1 + r, 1 + r}, 1e-12) {
		t.Errorf("UpperBound = %v, want (1+%v, 1+%v)", aabb.UpperBound, r, r)
	}
}

func TestPolygonRayCast(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)
	identity := MakeTransform()

	tests := []struct {
		name         string
		input        RayCastInput
		wantHit      bool
		wantFraction float64
		wantNormal   mgl64.Vec2
	}{
		{
			name:         "left to right",
			input:        RayCastInput{P1: mgl64.Vec2{-1, 0.5}, P2: mgl64.Vec2{2, 0.5}, MaxFraction: 1},
			wantHit:      true,
			wantFraction: 1.0 / 3.0,
			wantNormal:   mgl64.Vec2{-1, 0},
		},
		{
			name:         "bottom up",
			input:        RayCastInput{P1: mgl64.Vec2{0.5, -1}, P2: mgl64.Vec2{0.5, 2}, MaxFraction: 1},
			wantHit:      true,
			wantFraction: 1.0 / 3.0,
			wantNormal:   mgl64.Vec2{0, -1},
		},
		{
			name:    "starts inside",
			input:   RayCastInput{P1: mgl64.Vec2{0.5, 0.5}, P2: mgl64.Vec2{2, 0.5}, MaxFraction: 1},
			wantHit: false,
		},
		{
			name:    "parallel outside",
			input:   RayCastInput{P1: mgl64.Vec2{-1, 2}, P2: mgl64.Vec2{2, 2}, MaxFraction: 1},
			wantHit: false,
		},
		{
			name:    "max fraction cutoff",
			input:   RayCastInput{P1: mgl64.Vec2{-1, 0.5}, P2: mgl64.Vec2{2, 0.5}, MaxFraction: 0.25},
			wantHit: false,
		},
		{
			name:    "points away",
			input:   RayCastInput{P1: mgl64.Vec2{-1, 0.5}, P2: mgl64.Vec2{-2, 0.5}, MaxFraction: 1},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output RayCastOutput
			hit := poly.RayCast(&output, tt.input, identity)

			if hit != tt.wantHit {
				t.Fatalf("RayCast() = %v, want %v", hit, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if !floatEqual(output.Fraction, tt.wantFraction, 1e-12) {
				t.Errorf("Fraction = %v, want %v", output.Fraction, tt.wantFraction)
			}
			if !vec2Equal(output.Normal, tt.wantNormal, 1e-12) {
				t.Errorf("Normal = %v, want %v", output.Normal, tt.wantNormal)
			}
		})
	}
}

func TestPolygonRayCastIdempotent(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 1.0)
	xf := MakeTransformFromPositionAndAngle(mgl64.Vec2{0.5, -0.25}, 0.3)
	input := RayCastInput{P1: mgl64.Vec2{-2, 0.4}, P2: mgl64.Vec2{3, 0.6}, MaxFraction: 1}

	var first, second RayCastOutput
	hit1 := poly.RayCast(&first, input, xf)
	hit2 := poly.RayCast(&second, input, xf)

	if hit1 != hit2 || first != second {
		t.Errorf("RayCast not deterministic: (%v, %+v) vs (%v, %+v)", hit1, first, hit2, second)
	}
}

func TestPolygonRayCastSegment(t *testing.T) {
	poly := NewPolygonShape(1.0)
	poly.SetAsEdge(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0})
	identity := MakeTransform()

	tests := []struct {
		name         string
		input        RayCastInput
		wantHit      bool
		wantFraction float64
		wantNormal   mgl64.Vec2
	}{
		{
			name:         "from above",
			input:        RayCastInput{P1: mgl64.Vec2{1, 1}, P2: mgl64.Vec2{1, -1}, MaxFraction: 1},
			wantHit:      true,
			wantFraction: 0.5,
			wantNormal:   mgl64.Vec2{0, 1},
		},
		{
			name:         "from below flips normal",
			input:        RayCastInput{P1: mgl64.Vec2{1, -1}, P2: mgl64.Vec2{1, 1}, MaxFraction: 1},
			wantHit:      true,
			wantFraction: 0.5,
			wantNormal:   mgl64.Vec2{0, -1},
		},
		{
			name:    "parallel to edge",
			input:   RayCastInput{P1: mgl64.Vec2{-1, 1}, P2: mgl64.Vec2{3, 1}, MaxFraction: 1},
			wantHit: false,
		},
		{
			name:    "misses the segment span",
			input:   RayCastInput{P1: mgl64.Vec2{3, 1}, P2: mgl64.Vec2{3, -1}, MaxFraction: 1},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output RayCastOutput
			hit := poly.RayCast(&output, tt.input, identity)

			if hit != tt.wantHit {
				t.Fatalf("RayCast() = %v, want %v", hit, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if !floatEqual(output.Fraction, tt.wantFraction, 1e-12) {
				t.Errorf("Fraction = %v, want %v", output.Fraction, tt.wantFraction)
			}
			if !vec2Equal(output.Normal, tt.wantNormal, 1e-12) {
				t.Errorf("Normal = %v, want %v", output.Normal, tt.wantNormal)
			}
		})
	}
}

func TestPolygonCloneIsIndependent(t *testing.T) {
	poly := NewPolygonShapeFromVertices(unitSquare(), 2.0)
	clone := poly.Clone().(*PolygonShape)

	if clone.GetDensity() != 2.0 || clone.VertexCount() != 4 {
		t.Fatalf("clone lost state: density %v, count %d", clone.GetDensity(), clone.VertexCount())
	}
	if clone.MassData() != poly.MassData() {
		t.Fatalf("clone mass data %+v != %+v", clone.MassData(), poly.MassData())
	}

	// Re-assigning the original must not touch the clone.
	poly.SetAsBox(5, 5)
	if !vec2Equal(clone.GetVertex(2), mgl64.Vec2{1, 1}, 0) {
		t.Errorf("clone vertex changed after original Set: %v", clone.GetVertex(2))
	}
}
