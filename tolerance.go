// Package quat tolerance-based verification for floating-point comparisons
package quat

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int64

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		RelTol:   1e-9,
		ULPTol:   MaxULPDiff,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns strict tolerance configuration for high precision
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-15,
		RelTol:   4 * Float64Epsilon,
		ULPTol:   2,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns relaxed tolerance for accumulated operations
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-9,
		RelTol:   1e-6,
		ULPTol:   1024,
		CheckNaN: true,
		CheckInf: true,
	}
}

// ToleranceByName returns the named preset: "strict", "default", "relaxed"
// or "arch", the loosest architecture-specific tolerance for this GOARCH.
func ToleranceByName(name string) (ToleranceConfig, error) {
	switch name {
	case "strict":
		return StrictTolerance(), nil
	case "", "default":
		return DefaultTolerance(), nil
	case "relaxed":
		return RelaxedTolerance(), nil
	case "arch":
		return GetArchTolerance(TranscendentalArchTolerance), nil
	}
	return ToleranceConfig{}, NewInvalidArgError("ToleranceByName", fmt.Sprintf("unknown tolerance %q", name))
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true
		}
	}

	// Exact equality also covers ±0
	if a == b {
		return true
	}

	// A single infinity, or two of opposite sign, is never near anything
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 {
		if Float64ULPDiff(a, b) <= tol.ULPTol {
			return true
		}
	}

	return false
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxInt64
	}

	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	// Different signs: only ±0 are close
	if (aBits^bBits)&(1<<63) != 0 {
		if a == b {
			return 0
		}
		return math.MaxInt64
	}

	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// ApproxEqual reports whether p and q are within tolerance of each other,
// measured on the norm of their difference: |p - q| <= AbsTol or
// |p - q| <= RelTol · max(|p|, |q|).
func ApproxEqual(p, q Quaternion, tol ToleranceConfig) bool {
	diff := p.Sub(q).Abs()
	if diff <= tol.AbsTol {
		return true
	}
	return diff <= math.Max(p.Abs(), q.Abs())*tol.RelTol
}

// RelativeError returns |expected - actual| / max(1, |expected|).
func RelativeError(expected, actual Quaternion) float64 {
	return expected.Sub(actual).Abs() / math.Max(1, expected.Abs())
}

// VerificationResult summarises a coordinate-wise comparison of two
// quaternion slices.
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyQuaternions compares two quaternion slices coordinate by coordinate
// and returns detailed results
func VerifyQuaternions(expected, actual []Quaternion, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		want, got := expected[i].Coords(), actual[i].Coords()
		failed := false
		for k := range want {
			if Float64NearEqual(want[k], got[k], tol) {
				continue
			}
			failed = true

			absDiff := math.Abs(want[k] - got[k])
			if absDiff > result.MaxAbsError {
				result.MaxAbsError = absDiff
			}
			if want[k] != 0 {
				relDiff := absDiff / math.Abs(want[k])
				if relDiff > result.MaxRelError {
					result.MaxRelError = relDiff
				}
			}
			ulpDiff := Float64ULPDiff(want[k], got[k])
			if ulpDiff > result.MaxULPError {
				result.MaxULPError = ulpDiff
			}
		}
		if failed {
			result.NumErrors++
			if result.FirstError == -1 {
				result.FirstError = i
			}
		}
	}

	return result
}

// IsAcceptable returns true if the verification result is within tolerance
func (r VerificationResult) IsAcceptable(tol ToleranceConfig) bool {
	return r.NumErrors == 0 ||
		(r.MaxAbsError <= tol.AbsTol &&
			r.MaxRelError <= tol.RelTol &&
			r.MaxULPError <= tol.ULPTol)
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}
