package kinetic

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Debug enables the expensive geometry validation performed in Set
// (convexity, winding). Contract assertions stay on regardless.
const Debug = false

// Assert panics on a broken caller contract. Malformed geometry is a caller
// bug, not runtime data.
func Assert(a bool) {
	if !a {
		panic("kinetic.Assert")
	}
}

const MaxFloat = math.MaxFloat64
const Pi = math.Pi

// Tunable constants based on meters-kilograms-seconds (MKS) units.
// These can be overridden for your application, see SetTuning.

// A small length used as a collision and constraint tolerance. Usually it is
// chosen to be numerically significant, but visually insignificant.
var LinearSlop = 0.005

// The radius of the polygon skin. Making this smaller means polygons will
// have an insufficient buffer for contact persistence. Making it larger may
// create artifacts for vertex collision.
var PolygonRadius = 2.0 * LinearSlop

// The maximum number of vertices on a convex polygon.
var MaxPolygonVertices = 8

// Threshold below which an edge length is considered degenerate.
var Epsilon = 1.1920928955078125e-7

// Tuning is the yaml-loadable view of the shared settings surface.
type Tuning struct {
	LinearSlop         float64 `yaml:"linear_slop"`
	PolygonRadius      float64 `yaml:"polygon_radius"`
	MaxPolygonVertices int     `yaml:"max_polygon_vertices"`
	Epsilon            float64 `yaml:"epsilon"`
}

// DefaultTuning returns the built-in constants.
func DefaultTuning() Tuning {
	return Tuning{
		LinearSlop:         0.005,
		PolygonRadius:      0.01,
		MaxPolygonVertices: 8,
		Epsilon:            1.1920928955078125e-7,
	}
}

// TuningFromYAML decodes a tuning document. Keys absent from the document
// keep their default values. Tuning files are runtime data, so malformed
// input is an error, not an assertion.
func TuningFromYAML(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("kinetic: decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values that would break the kernel's invariants.
func (t Tuning) Validate() error {
	if !(t.LinearSlop > 0.0) {
		return fmt.Errorf("kinetic: linear_slop must be positive, got %v", t.LinearSlop)
	}
	if !(t.PolygonRadius > 0.0) {
		return fmt.Errorf("kinetic: polygon_radius must be positive, got %v", t.PolygonRadius)
	}
	if t.MaxPolygonVertices < 3 {
		return fmt.Errorf("kinetic: max_polygon_vertices must be at least 3, got %v", t.MaxPolygonVertices)
	}
	if !(t.Epsilon > 0.0) {
		return fmt.Errorf("kinetic: epsilon must be positive, got %v", t.Epsilon)
	}
	return nil
}

// SetTuning installs t as the shared settings surface. Call before any
// shapes are built; the kernel reads these on every geometry operation and
// performs no locking.
func SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	LinearSlop = t.LinearSlop
	PolygonRadius = t.PolygonRadius
	MaxPolygonVertices = t.MaxPolygonVertices
	Epsilon = t.Epsilon
	return nil
}
