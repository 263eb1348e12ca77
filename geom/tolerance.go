// Package geom holds the primitive model for arc-polygon boundaries: points,
// edges (circular arcs and straight segments sharing one representation),
// circles, bounding rectangles, and the centralized tolerances that every
// geometric predicate in this module goes through.
package geom

import "math"

// Floating point comparisons never use exact equality here. Instead there is a
// single epsilon hierarchy:
//
//	machine epsilon (~2.2e-16) < DivisionEpsilon < GeometricEpsilon
//
// DivisionEpsilon guards near-zero denominators produced by degenerate
// geometry (tiny direction vectors, coincident centers). GeometricEpsilon is
// the working tolerance for geometric predicates; it is far above machine
// epsilon because it has to absorb error accumulated over several chained
// operations, not a single rounding step.
const (
	DivisionEpsilon  = 1e-12
	GeometricEpsilon = 1e-10
)

// Named aliases for GeometricEpsilon. They all share one value today, but
// call sites say which kind of comparison they are making.
const (
	// PointTolerance decides whether two points are the same location.
	PointTolerance = GeometricEpsilon
	// CircleTolerance decides whether two circles coincide.
	CircleTolerance = GeometricEpsilon
	// CollinearityTolerance bounds cross products in sidedness tests.
	CollinearityTolerance = GeometricEpsilon
	// AngularTolerance bounds turn-angle comparisons, in radians.
	AngularTolerance = GeometricEpsilon
)

// Equal reports whether two scalars coincide within GeometricEpsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < GeometricEpsilon
}
