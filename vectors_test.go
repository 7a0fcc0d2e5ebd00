package quat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceVectors(t *testing.T) {
	vectors, err := LoadVectorsFile("testdata/vectors.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, vectors)

	for _, res := range RunVectors(vectors, DefaultTolerance()) {
		t.Run(res.Name, func(t *testing.T) {
			assert.True(t, res.Passed, "%s (got %s)", res.Message, res.Got)
		})
	}
}

func TestLoadVectorsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"Unknown_Op", "vectors:\n  - {name: x, op: pow, args: [1, 2], want: [1, 0, 0, 0]}\n", `unknown op "pow"`},
		{"Unknown_Error", "vectors:\n  - {name: x, op: inv, args: [0], want_err: Overflow}\n", `unknown error type "Overflow"`},
		{"Unknown_Field", "vectors:\n  - {name: x, op: inv, args: [1], expect: [1, 0, 0, 0]}\n", "expect"},
		{"Malformed", "vectors: [\n", "failed to decode vectors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadVectors(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadVectorsFileMissing(t *testing.T) {
	_, err := LoadVectorsFile("testdata/does-not-exist.yaml")
	assert.ErrorContains(t, err, "failed to open vectors")
}

func TestVectorRunReportsMismatch(t *testing.T) {
	scalar := 4.0
	tests := []struct {
		name string
		v    Vector
		want string
	}{
		{
			name: "Wrong_Value",
			v:    Vector{Name: "x", Op: "mul", Args: []interface{}{[]interface{}{0, 0, 1, 0}, []interface{}{0, 1, 0, 0}}, Want: []float64{0, 0, 0, 1}},
			want: "expected (0.00)+(0.00)i+(0.00)j+(1.00)k, got (0.00)+(0.00)i+(0.00)j+(-1.00)k",
		},
		{
			name: "Missing_Error",
			v:    Vector{Name: "x", Op: "inv", Args: []interface{}{1}, WantErr: "DivisionByZero"},
			want: "expected DivisionByZero error",
		},
		{
			name: "Wrong_Error",
			v:    Vector{Name: "x", Op: "new", Args: []interface{}{"a"}, WantErr: "InvalidLength"},
			want: "expected InvalidLength error, got quat UnsupportedType",
		},
		{
			name: "Unexpected_Error",
			v:    Vector{Name: "x", Op: "unit", Args: []interface{}{0}, Want: []float64{1, 0, 0, 0}},
			want: "unexpected error",
		},
		{
			name: "Wrong_Arity",
			v:    Vector{Name: "x", Op: "add", Args: []interface{}{1}, Want: []float64{1, 0, 0, 0}},
			want: `op "add" takes 2 args, got 1`,
		},
		{
			name: "Scalar_From_Quaternion_Op",
			v:    Vector{Name: "x", Op: "neg", Args: []interface{}{1}, WantScalar: &scalar},
			want: "does not produce a real number",
		},
		{
			name: "Wrong_Scalar",
			v:    Vector{Name: "x", Op: "abs", Args: []interface{}{[]interface{}{0, 3, 0, 4}}, WantScalar: &scalar},
			want: "expected 4, got 5",
		},
		{
			name: "Wrong_String",
			v:    Vector{Name: "x", Op: "string", Args: []interface{}{1}, WantString: "(1.0)+(0.0)i+(0.0)j+(0.0)k"},
			want: `expected "(1.0)+(0.0)i+(0.0)j+(0.0)k"`,
		},
		{
			name: "No_Expectation",
			v:    Vector{Name: "x", Op: "pos", Args: []interface{}{1}},
			want: "vector has no expectation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.v.Run(DefaultTolerance())
			assert.False(t, res.Passed)
			assert.Contains(t, res.Message, tt.want)
		})
	}
}

func TestVectorEvaluateScalar(t *testing.T) {
	q, scalar, err := Vector{Op: "abs", Args: []interface{}{[]float64{0, 3, 0, 4}}}.Evaluate()
	require.NoError(t, err)
	assert.True(t, scalar)
	assert.InDelta(t, 5, q.Real(), 1e-12)
}

func TestReferenceVectorsArchTolerance(t *testing.T) {
	vectors, err := LoadVectorsFile("testdata/vectors.yaml")
	require.NoError(t, err)
	for _, res := range RunVectorsArch(vectors) {
		assert.True(t, res.Passed, "%s: %s", res.Name, res.Message)
	}
}
