// Package approx compares floating-point values for approximate equality by
// absolute delta, relative delta or distance in units in the last place (ULPs).
//
// A comparison passes when at least one configured test passes. NaN never
// compares approximately equal to anything, itself included.
//
// When no tolerance is configured the defaults apply: an absolute delta of
// DefaultDelta (1e-15) together with DefaultULPs (10).
//
//	a, b := 0.1, 0.2
//	approx.Equal(a+b, 0.3)                                 // true (ULP test)
//	approx.Equal(1, 1.001, approx.WithRelativeDelta(1e-2)) // true
//
// Build an Options value once with New when comparing many values with the
// same policy, e.g. every coefficient of a multivector.
package approx
