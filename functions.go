package quat

import "math"

// Abs returns the Euclidean norm sqrt(a²+b²+c²+d²).
func (q Quaternion) Abs() float64 {
	return math.Hypot(math.Hypot(q.a, q.b), math.Hypot(q.c, q.d))
}

// Conj returns the conjugate (a, -b, -c, -d).
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.a, -q.b, -q.c, -q.d}
}

// Vect returns the vector part (0, b, c, d).
func (q Quaternion) Vect() Quaternion {
	return Quaternion{0, q.b, q.c, q.d}
}

// Scal returns the scalar part (a, 0, 0, 0).
func (q Quaternion) Scal() Quaternion {
	return Quaternion{a: q.a}
}

// normParts splits |q| into m·n, where m is the largest coordinate magnitude
// and n = |q/m| lies in [1, 2]. Neither factor overflows or underflows for
// finite non-zero q. Both are 0 for the zero quaternion.
func (q Quaternion) normParts() (m, n float64) {
	m = math.Max(math.Max(math.Abs(q.a), math.Abs(q.b)), math.Max(math.Abs(q.c), math.Abs(q.d)))
	if m == 0 {
		return 0, 0
	}
	return m, q.divide(m).Abs()
}

// divide divides every coordinate by the real k.
func (q Quaternion) divide(k float64) Quaternion {
	return Quaternion{q.a / k, q.b / k, q.c / k, q.d / k}
}

// finite returns q, or an ErrTypeNonFinite error for op when a coordinate
// overflowed.
func (q Quaternion) finite(op string) (Quaternion, error) {
	for _, x := range q.Coords() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Quaternion{}, NewNonFiniteError(op, q.Coords())
		}
	}
	return q, nil
}

// Unit returns q / Abs(q). The zero quaternion has no direction and
// fails with ErrTypeDivisionByZero.
func (q Quaternion) Unit() (Quaternion, error) {
	m, n := q.normParts()
	if m == 0 {
		return Quaternion{}, NewDivisionByZeroError("Unit", "zero quaternion has no unit quaternion")
	}
	return q.divide(m).divide(n).finite("Unit")
}

// Inv returns the multiplicative inverse Conj(q) / Abs(q)².
// The zero quaternion fails with ErrTypeDivisionByZero; an inverse too large
// for float64 fails with ErrTypeNonFinite.
func (q Quaternion) Inv() (Quaternion, error) {
	return q.inv("Inv")
}

func (q Quaternion) inv(op string) (Quaternion, error) {
	m, n := q.normParts()
	if m == 0 {
		return Quaternion{}, NewDivisionByZeroError(op, "zero quaternion has no inverse")
	}
	return q.divide(m).Conj().divide(n * n).divide(m).finite(op)
}

// Exp returns e**q. With v the vector part of q,
//
//	exp(q) = e**a · (cos|v| + v/|v| · sin|v|)
//
// which reduces to the real e**a when v is zero. When e**a overflows float64
// Exp fails with ErrTypeNonFinite.
func (q Quaternion) Exp() (Quaternion, error) {
	e := math.Exp(q.a)
	if math.IsInf(e, 0) {
		return Quaternion{}, NewNonFiniteError("Exp", [4]float64{e, 0, 0, 0})
	}
	v := q.Vect()
	m, n := v.normParts()
	if m == 0 {
		return Quaternion{a: e}, nil
	}
	s, c := math.Sincos(m * n)
	return Quaternion{a: c}.Add(v.divide(m).divide(n).scale(s)).scale(e).finite("Exp")
}

// Ln returns the natural logarithm of q. With v the vector part of q,
//
//	ln(q) = ln|q| + v/|v| · acos(a/|q|)
//
// and the real ln|q| when v is zero. The result is always a Quaternion.
// A negative real q yields ln|q|, the same branch as the formula with v = 0.
// The zero quaternion fails with ErrTypeDivisionByZero.
func (q Quaternion) Ln() (Quaternion, error) {
	m, n := q.normParts()
	if m == 0 {
		return Quaternion{}, NewDivisionByZeroError("Ln", "logarithm of the zero quaternion")
	}
	l := math.Log(m) + math.Log(n)
	v := q.Vect()
	vm, vn := v.normParts()
	if vm == 0 {
		return Quaternion{a: l}, nil
	}
	// atan2(|v|, a) equals acos(a/|q|) and stays accurate when |v| << a.
	// Both arguments are divided by vm so neither overflows.
	theta := math.Atan2(vn, q.a/vm)
	return Quaternion{a: l}.Add(v.divide(vm).divide(vn).scale(theta)), nil
}
