package quat

import (
	"fmt"
	"math"
	"reflect"
)

// Quaternion is the number a + b·i + c·j + d·k.
//
// The zero value is the zero quaternion. Coordinates are unexported so a
// Quaternion can only change by building a new one.
type Quaternion struct {
	a, b, c, d float64
}

// New coerces value into a Quaternion. It accepts
//   - a real number of any integer or float kind n, giving (n, 0, 0, 0)
//   - a slice or array of exactly four real numbers, used as (a, b, c, d)
//   - a Quaternion or non-nil *Quaternion, whose coordinates are copied
//
// A sequence of any other length fails with ErrTypeInvalidLength, any other
// kind of value with ErrTypeUnsupportedType and a NaN or infinite coordinate
// with ErrTypeNonFinite.
func New(value interface{}) (Quaternion, error) {
	return coerce("New", value)
}

// Must is like New but panics if value cannot be coerced.
func Must(value interface{}) Quaternion {
	q, err := New(value)
	if err != nil {
		panic(err)
	}
	return q
}

// FromReal returns the real quaternion (n, 0, 0, 0).
// It panics if n is NaN or infinite.
func FromReal(n float64) Quaternion {
	return FromCoords(n, 0, 0, 0)
}

// FromCoords returns a + b·i + c·j + d·k.
// It panics if any coordinate is NaN or infinite.
func FromCoords(a, b, c, d float64) Quaternion {
	q, err := fromCoords("FromCoords", [4]float64{a, b, c, d})
	if err != nil {
		panic(err)
	}
	return q
}

func fromCoords(op string, v [4]float64) (Quaternion, error) {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Quaternion{}, NewNonFiniteError(op, v)
		}
	}
	return Quaternion{a: v[0], b: v[1], c: v[2], d: v[3]}, nil
}

// coerce is the single conversion routine behind New and every operator
// that accepts a non-Quaternion operand.
func coerce(op string, value interface{}) (Quaternion, error) {
	switch v := value.(type) {
	case Quaternion:
		return v, nil
	case *Quaternion:
		if v == nil {
			return Quaternion{}, NewUnsupportedTypeError(op, value)
		}
		return *v, nil
	case nil:
		return Quaternion{}, NewUnsupportedTypeError(op, value)
	}

	rv := reflect.ValueOf(value)
	if n, ok := realValue(rv); ok {
		return fromCoords(op, [4]float64{n, 0, 0, 0})
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() != 4 {
			return Quaternion{}, NewInvalidLengthError(op, rv.Len())
		}
		var coords [4]float64
		for i := range coords {
			n, ok := realValue(rv.Index(i))
			if !ok {
				return Quaternion{}, NewUnsupportedTypeError(op, value)
			}
			coords[i] = n
		}
		return fromCoords(op, coords)
	}

	return Quaternion{}, NewUnsupportedTypeError(op, value)
}

// realValue reads rv as a real number. Interface elements, as produced by
// decoders into []interface{}, are unwrapped first.
func realValue(rv reflect.Value) (float64, bool) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Real returns the real coordinate a.
func (q Quaternion) Real() float64 { return q.a }

// I returns the i coordinate b.
func (q Quaternion) I() float64 { return q.b }

// J returns the j coordinate c.
func (q Quaternion) J() float64 { return q.c }

// K returns the k coordinate d.
func (q Quaternion) K() float64 { return q.d }

// Coords returns (a, b, c, d).
func (q Quaternion) Coords() [4]float64 {
	return [4]float64{q.a, q.b, q.c, q.d}
}

// String renders q with two decimals per coordinate, for example
// "(1.00)+(1.00)i+(0.00)j+(0.00)k". It is meant for display, not parsing.
func (q Quaternion) String() string {
	const p = FormatPrecision
	return fmt.Sprintf("(%.*f)+(%.*f)i+(%.*f)j+(%.*f)k", p, q.a, p, q.b, p, q.c, p, q.d)
}

// GoString returns the same text as String.
func (q Quaternion) GoString() string {
	return q.String()
}
