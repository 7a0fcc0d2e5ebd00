package quat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPropertiesHolds(t *testing.T) {
	samples := append(GenerateQuaternions(DefaultSampleCount, DefaultSeed), EdgeCaseQuaternions()...)
	report := CheckProperties(samples, DefaultTolerance())

	assert.Equal(t, len(samples), report.Samples)
	assert.Len(t, report.Results, 10)
	for _, res := range report.Results {
		assert.True(t, res.Passed(), "%s failed %d times, first at %d, max error %g",
			res.Name, res.Failed, res.FirstFailure, res.MaxError)
		assert.Equal(t, -1, res.FirstFailure, res.Name)
		assert.Equal(t, len(samples), res.Checked+res.Skipped, res.Name)
	}
	assert.True(t, report.Passed())
}

func TestCheckPropertiesSkips(t *testing.T) {
	samples := []Quaternion{{}, FromReal(-2), FromCoords(1, 2, 3, 4)}
	report := CheckProperties(samples, DefaultTolerance())
	require.True(t, report.Passed(), report.String())

	inv, ok := report.Result(PropMultiplicativeInv)
	require.True(t, ok)
	assert.Equal(t, 1, inv.Skipped)
	assert.Equal(t, 2, inv.Checked)

	unit, _ := report.Result(PropUnitMagnitude)
	assert.Equal(t, 1, unit.Skipped)

	// only the zero sample is used as a divisor
	div, _ := report.Result(PropDivisionIsInvMul)
	assert.Equal(t, 1, div.Skipped)

	// zero has no logarithm and -2 is on the branch cut
	rt, _ := report.Result(PropExpLnRoundTrip)
	assert.Equal(t, 2, rt.Skipped)
	assert.Equal(t, 1, rt.Checked)

	_, ok = report.Result("commutativity")
	assert.False(t, ok)
}

func TestCheckPropertiesEmpty(t *testing.T) {
	report := CheckProperties(nil, DefaultTolerance())
	assert.Equal(t, 0, report.Samples)
	assert.True(t, report.Passed())
}

func TestPropertyReportString(t *testing.T) {
	report := PropertyReport{
		Samples: 2,
		Results: []PropertyResult{
			{Name: PropAssociativity, Checked: 2, FirstFailure: -1},
			{Name: PropUnitMagnitude, Checked: 2, Failed: 1, FirstFailure: 1, MaxError: 0.5},
		},
	}
	assert.False(t, report.Passed())

	s := report.String()
	assert.True(t, strings.HasPrefix(s, "2 samples\n"))
	assert.Contains(t, s, PropAssociativity)
	assert.Contains(t, s, "PASS")
	assert.Contains(t, s, "FAIL checked=2 skipped=0 failed=1")
}
