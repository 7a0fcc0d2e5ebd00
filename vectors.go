package quat

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Vector is one named reference case: an operation applied to coerced
// arguments and the result it must produce. Exactly one of Want, WantScalar,
// WantString or WantErr is normally set; Want and WantString may be combined.
type Vector struct {
	Name string        `yaml:"name"`
	Op   string        `yaml:"op"`
	Args []interface{} `yaml:"args"`

	Want       []float64 `yaml:"want,omitempty"`
	WantScalar *float64  `yaml:"want_scalar,omitempty"`
	WantString string    `yaml:"want_string,omitempty"`
	WantErr    string    `yaml:"want_err,omitempty"`
}

// VectorFile is the top-level document of a reference vector file.
type VectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// VectorResult is the outcome of running one Vector.
type VectorResult struct {
	Name    string
	Passed  bool
	Got     string
	Message string
}

// LoadVectors decodes a reference vector document.
func LoadVectors(r io.Reader) ([]Vector, error) {
	var f VectorFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode vectors: %w", err)
	}
	for i, v := range f.Vectors {
		if _, ok := vectorArity[v.Op]; !ok {
			return nil, NewInvalidArgError("LoadVectors", fmt.Sprintf("vector %d (%s): unknown op %q", i, v.Name, v.Op))
		}
		if v.WantErr != "" {
			if _, ok := ParseErrorType(v.WantErr); !ok {
				return nil, NewInvalidArgError("LoadVectors", fmt.Sprintf("vector %d (%s): unknown error type %q", i, v.Name, v.WantErr))
			}
		}
	}
	return f.Vectors, nil
}

// LoadVectorsFile reads and decodes the reference vector file at path.
func LoadVectorsFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vectors: %w", err)
	}
	defer f.Close()
	return LoadVectors(f)
}

var vectorArity = map[string]int{
	"new":    1,
	"neg":    1,
	"pos":    1,
	"abs":    1,
	"conj":   1,
	"unit":   1,
	"vect":   1,
	"scal":   1,
	"inv":    1,
	"exp":    1,
	"ln":     1,
	"string": 1,
	"add":    2,
	"sub":    2,
	"mul":    2,
	"div":    2,
	"radd":   2,
	"rsub":   2,
	"rmul":   2,
	"rdiv":   2,
	"sum":    2,
}

// Evaluate applies the vector's operation. Ops that yield a real number
// (abs) return it as the real part of a Quaternion with scalar set.
func (v Vector) Evaluate() (q Quaternion, scalar bool, err error) {
	arity, ok := vectorArity[v.Op]
	if !ok {
		return Quaternion{}, false, NewInvalidArgError("Vector", fmt.Sprintf("unknown op %q", v.Op))
	}
	if len(v.Args) != arity {
		return Quaternion{}, false, NewInvalidArgError("Vector",
			fmt.Sprintf("op %q takes %d args, got %d", v.Op, arity, len(v.Args)))
	}

	if v.Op == "sum" {
		q, err = Sum(v.Args[0], v.Args[1])
		return q, false, err
	}

	x, err := New(v.Args[0])
	if err != nil {
		return Quaternion{}, false, err
	}

	switch v.Op {
	case "new", "string":
		return x, false, nil
	case "neg":
		return x.Neg(), false, nil
	case "pos":
		return x.Pos(), false, nil
	case "abs":
		return Quaternion{a: x.Abs()}, true, nil
	case "conj":
		return x.Conj(), false, nil
	case "unit":
		q, err = x.Unit()
	case "vect":
		return x.Vect(), false, nil
	case "scal":
		return x.Scal(), false, nil
	case "inv":
		q, err = x.Inv()
	case "exp":
		q, err = x.Exp()
	case "ln":
		q, err = x.Ln()
	case "add":
		q, err = x.AddValue(v.Args[1])
	case "sub":
		q, err = x.SubValue(v.Args[1])
	case "mul":
		q, err = x.MulValue(v.Args[1])
	case "div":
		q, err = x.DivValue(v.Args[1])
	case "radd":
		q, err = x.RAdd(v.Args[1])
	case "rsub":
		q, err = x.RSub(v.Args[1])
	case "rmul":
		q, err = x.RMul(v.Args[1])
	case "rdiv":
		q, err = x.RDiv(v.Args[1])
	}
	return q, false, err
}

// Run evaluates the vector and checks the outcome against its expectation.
func (v Vector) Run(tol ToleranceConfig) VectorResult {
	res := VectorResult{Name: v.Name}
	q, scalar, err := v.Evaluate()

	if v.WantErr != "" {
		want, _ := ParseErrorType(v.WantErr)
		switch {
		case err == nil:
			res.Got = q.String()
			res.Message = fmt.Sprintf("expected %s error, got %s", v.WantErr, q)
		case !isType(err, want):
			res.Got = err.Error()
			res.Message = fmt.Sprintf("expected %s error, got %v", v.WantErr, err)
		default:
			res.Got = err.Error()
			res.Passed = true
		}
		return res
	}

	if err != nil {
		res.Got = err.Error()
		res.Message = fmt.Sprintf("unexpected error: %v", err)
		return res
	}

	if scalar {
		res.Got = fmt.Sprintf("%g", q.a)
	} else {
		res.Got = q.String()
	}

	switch {
	case v.WantScalar != nil:
		if !scalar {
			res.Message = fmt.Sprintf("op %q does not produce a real number", v.Op)
			return res
		}
		if !Float64NearEqual(*v.WantScalar, q.a, tol) {
			res.Message = fmt.Sprintf("expected %g, got %g", *v.WantScalar, q.a)
			return res
		}
	case v.Want != nil:
		want, err := New(v.Want)
		if err != nil {
			res.Message = fmt.Sprintf("invalid expectation: %v", err)
			return res
		}
		if !ApproxEqual(want, q, tol) {
			res.Message = fmt.Sprintf("expected %s, got %s", want, q)
			return res
		}
	case v.WantString == "":
		res.Message = "vector has no expectation"
		return res
	}

	if v.WantString != "" && q.String() != v.WantString {
		res.Message = fmt.Sprintf("expected %q, got %q", v.WantString, q.String())
		return res
	}

	res.Passed = true
	return res
}

// RunVectorsArch runs every vector with the architecture-specific tolerance
// of its operation.
func RunVectorsArch(vectors []Vector) []VectorResult {
	results := make([]VectorResult, len(vectors))
	for i, v := range vectors {
		results[i] = v.Run(GetOperationTolerance(v.Op))
	}
	return results
}

// RunVectors runs every vector and returns the results in order.
func RunVectors(vectors []Vector, tol ToleranceConfig) []VectorResult {
	results := make([]VectorResult, len(vectors))
	for i, v := range vectors {
		results[i] = v.Run(tol)
	}
	return results
}
