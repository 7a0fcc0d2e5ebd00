// Package quat configuration constants
package quat

// Formatting
const (
	// Digits after the decimal point in String
	FormatPrecision = 2
)

// Numerical constants
const (
	// Machine epsilon for float64
	Float64Epsilon = 2.220446049250313e-16

	// Maximum ULP difference for float64 comparisons
	MaxULPDiff = 16
)

// Verification defaults
const (
	// Seed used by the sample generators when none is given
	DefaultSeed uint64 = 12345

	// Number of samples checked by the property suite
	DefaultSampleCount = 1000

	// Coordinate range for generated samples
	DefaultSampleMin = -10.0
	DefaultSampleMax = 10.0
)
