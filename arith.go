package quat

// Add returns q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q.a + p.a, q.b + p.b, q.c + p.c, q.d + p.d}
}

// Sub returns q - p, defined as q + (-p).
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return q.Add(p.Neg())
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.a, -q.b, -q.c, -q.d}
}

// Pos returns q unchanged.
func (q Quaternion) Pos() Quaternion {
	return q
}

// Mul returns the Hamilton product q·p. It is associative but not
// commutative.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	a1, b1, c1, d1 := q.a, q.b, q.c, q.d
	a2, b2, c2, d2 := p.a, p.b, p.c, p.d
	return Quaternion{
		a: a1*a2 - b1*b2 - c1*c2 - d1*d2,
		b: a1*b2 + b1*a2 + c1*d2 - d1*c2,
		c: a1*c2 - b1*d2 + c1*a2 + d1*b2,
		d: a1*d2 + b1*c2 - c1*b2 + d1*a2,
	}
}

// Div returns q·inv(p). The order matters since multiplication does not
// commute. A zero divisor fails with ErrTypeDivisionByZero and a quotient
// too large for float64 with ErrTypeNonFinite.
func (q Quaternion) Div(p Quaternion) (Quaternion, error) {
	inv, err := p.inv("Div")
	if err != nil {
		return Quaternion{}, err
	}
	return q.Mul(inv).finite("Div")
}

// scale multiplies every coordinate by the real k.
func (q Quaternion) scale(k float64) Quaternion {
	return Quaternion{k * q.a, k * q.b, k * q.c, k * q.d}
}

// AddValue returns q + v, with v coerced as in New.
func (q Quaternion) AddValue(v interface{}) (Quaternion, error) {
	p, err := coerce("Add", v)
	if err != nil {
		return Quaternion{}, err
	}
	return q.Add(p), nil
}

// SubValue returns q - v, with v coerced as in New.
func (q Quaternion) SubValue(v interface{}) (Quaternion, error) {
	p, err := coerce("Sub", v)
	if err != nil {
		return Quaternion{}, err
	}
	return q.Sub(p), nil
}

// MulValue returns q·v, with v coerced as in New.
func (q Quaternion) MulValue(v interface{}) (Quaternion, error) {
	p, err := coerce("Mul", v)
	if err != nil {
		return Quaternion{}, err
	}
	return q.Mul(p), nil
}

// DivValue returns q / v, with v coerced as in New.
func (q Quaternion) DivValue(v interface{}) (Quaternion, error) {
	p, err := coerce("Div", v)
	if err != nil {
		return Quaternion{}, err
	}
	return q.Div(p)
}

// RAdd returns v + q. Addition commutes, so this is q.AddValue(v).
func (q Quaternion) RAdd(v interface{}) (Quaternion, error) {
	return q.AddValue(v)
}

// RSub returns v - q.
func (q Quaternion) RSub(v interface{}) (Quaternion, error) {
	p, err := coerce("Sub", v)
	if err != nil {
		return Quaternion{}, err
	}
	return p.Sub(q), nil
}

// RMul returns q.MulValue(v), not v·q. The two agree only when v is real.
func (q Quaternion) RMul(v interface{}) (Quaternion, error) {
	return q.MulValue(v)
}

// RDiv returns v / q.
func (q Quaternion) RDiv(v interface{}) (Quaternion, error) {
	p, err := coerce("Div", v)
	if err != nil {
		return Quaternion{}, err
	}
	return p.Div(q)
}

// Sum returns x + y after coercing both operands as in New. It is
// symmetric: Sum(x, y) and Sum(y, x) give the same result.
func Sum(x, y interface{}) (Quaternion, error) {
	p, err := coerce("Add", x)
	if err != nil {
		return Quaternion{}, err
	}
	return p.AddValue(y)
}
