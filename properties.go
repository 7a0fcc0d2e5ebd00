package quat

import (
	"fmt"
	"math"
	"strings"
)

// PropertyResult holds the outcome of one algebraic property over a sample.
type PropertyResult struct {
	Name         string  `json:"name"`
	Checked      int     `json:"checked"`
	Skipped      int     `json:"skipped"`
	Failed       int     `json:"failed"`
	MaxError     float64 `json:"max_error"`
	FirstFailure int     `json:"first_failure"` // Sample index, -1 if none
}

// Passed reports whether no checked sample failed.
func (r PropertyResult) Passed() bool {
	return r.Failed == 0
}

func (r *PropertyResult) record(i int, expected, actual Quaternion, tol ToleranceConfig) {
	r.Checked++
	if e := RelativeError(expected, actual); e > r.MaxError {
		r.MaxError = e
	}
	if !ApproxEqual(expected, actual, tol) {
		r.fail(i)
	}
}

func (r *PropertyResult) recordExact(i int, expected, actual Quaternion) {
	r.Checked++
	if expected != actual {
		r.MaxError = math.Max(r.MaxError, RelativeError(expected, actual))
		r.fail(i)
	}
}

func (r *PropertyResult) fail(i int) {
	r.Failed++
	if r.FirstFailure == -1 {
		r.FirstFailure = i
	}
}

// PropertyReport is the result of CheckProperties.
type PropertyReport struct {
	Samples   int              `json:"samples"`
	Tolerance ToleranceConfig  `json:"tolerance"`
	Results   []PropertyResult `json:"results"`
}

// Passed reports whether every property held on every checked sample.
func (r PropertyReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Result returns the named property result.
func (r PropertyReport) Result(name string) (PropertyResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return PropertyResult{}, false
}

// String formats the report for display
func (r PropertyReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d samples\n", r.Samples)
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "  %-24s %s checked=%d skipped=%d failed=%d max_error=%.3e\n",
			res.Name, status, res.Checked, res.Skipped, res.Failed, res.MaxError)
	}
	return sb.String()
}

// Property names reported by CheckProperties.
const (
	PropRealConstruction   = "real-construction"
	PropAdditiveInverse    = "additive-inverse"
	PropMultiplicativeInv  = "multiplicative-inverse"
	PropAssociativity      = "associativity"
	PropUnitMagnitude      = "unit-magnitude"
	PropConjInvolution     = "conjugate-involution"
	PropExpLnRoundTrip     = "exp-ln-round-trip"
	PropDivisionIsInvMul   = "division-is-inverse-mul"
	PropConjugateProduct   = "conjugate-product"
	PropMagnitudeIsProduct = "magnitude-multiplicative"
)

// CheckProperties verifies the algebraic laws of the quaternion type over
// samples. Triples for associativity are taken cyclically from the sample.
// Zero quaternions are skipped where the law needs an inverse, and values on
// the negative real axis are skipped for the exp/ln round trip.
func CheckProperties(samples []Quaternion, tol ToleranceConfig) PropertyReport {
	names := []string{
		PropRealConstruction,
		PropAdditiveInverse,
		PropMultiplicativeInv,
		PropAssociativity,
		PropUnitMagnitude,
		PropConjInvolution,
		PropExpLnRoundTrip,
		PropDivisionIsInvMul,
		PropConjugateProduct,
		PropMagnitudeIsProduct,
	}
	results := make(map[string]*PropertyResult, len(names))
	report := PropertyReport{
		Samples:   len(samples),
		Tolerance: tol,
		Results:   make([]PropertyResult, len(names)),
	}
	for i, name := range names {
		report.Results[i] = PropertyResult{Name: name, FirstFailure: -1}
		results[name] = &report.Results[i]
	}

	n := len(samples)
	for i, q := range samples {
		p := samples[(i+1)%n]
		r := samples[(i+2)%n]

		seq, err := New([]float64{q.a, 0, 0, 0})
		if err != nil {
			results[PropRealConstruction].fail(i)
		} else {
			results[PropRealConstruction].recordExact(i, FromReal(q.a), seq)
		}

		res := results[PropAdditiveInverse]
		res.Checked++
		if sum := q.Add(q.Neg()).Abs(); sum > tol.AbsTol {
			res.MaxError = math.Max(res.MaxError, sum)
			res.fail(i)
		}

		results[PropAssociativity].record(i, q.Mul(p).Mul(r), q.Mul(p.Mul(r)), tol)
		results[PropConjInvolution].recordExact(i, q, q.Conj().Conj())
		results[PropConjugateProduct].record(i, q.Mul(p).Conj(), p.Conj().Mul(q.Conj()), tol)

		res = results[PropMagnitudeIsProduct]
		res.Checked++
		if want, got := q.Abs()*p.Abs(), q.Mul(p).Abs(); !Float64NearEqual(want, got, tol) {
			res.MaxError = math.Max(res.MaxError, math.Abs(want-got)/math.Max(1, want))
			res.fail(i)
		}

		if inv, err := q.Inv(); err != nil {
			results[PropMultiplicativeInv].Skipped++
		} else {
			results[PropMultiplicativeInv].record(i, FromReal(1), q.Mul(inv), tol)
		}

		if u, err := q.Unit(); err != nil {
			results[PropUnitMagnitude].Skipped++
		} else {
			res := results[PropUnitMagnitude]
			res.Checked++
			if got := u.Abs(); !Float64NearEqual(1, got, tol) {
				res.MaxError = math.Max(res.MaxError, math.Abs(got-1))
				res.fail(i)
			}
		}

		if quo, err := p.Div(q); err != nil {
			results[PropDivisionIsInvMul].Skipped++
		} else {
			inv, _ := q.Inv()
			results[PropDivisionIsInvMul].recordExact(i, p.Mul(inv), quo)
		}

		if onNegativeRealAxis(q) {
			results[PropExpLnRoundTrip].Skipped++
		} else if l, err := q.Ln(); err != nil {
			results[PropExpLnRoundTrip].Skipped++
		} else if e, err := l.Exp(); err != nil {
			results[PropExpLnRoundTrip].Checked++
			results[PropExpLnRoundTrip].fail(i)
		} else {
			results[PropExpLnRoundTrip].record(i, q, e, tol)
		}
	}

	return report
}

// onNegativeRealAxis reports whether q lies on the branch cut of Ln.
func onNegativeRealAxis(q Quaternion) bool {
	return q.a < 0 && q.b == 0 && q.c == 0 && q.d == 0
}
