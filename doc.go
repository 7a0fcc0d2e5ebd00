// Copyright ©2024 The Quat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quat provides a quaternion number type, q = a + b·i + c·j + d·k.
//
// Quaternion values are immutable: every operator and function returns a new
// value and never modifies its operands, so values may be shared freely
// between goroutines.
//
// Go has no operator overloading, so the algebra is exposed as methods:
//   - Add, Sub, Mul, Div for two Quaternions
//   - AddValue, SubValue, MulValue, DivValue for a right operand that is
//     coerced with the same rules as New (real number, 4-element sequence
//     or another Quaternion)
//   - RAdd, RSub, RMul, RDiv for a coerced left operand
//   - Neg and Pos for the unary operators
//
// Multiplication is the Hamilton product and is not commutative. RMul is
// defined as q.MulValue(v), which is only order-correct when v is real; this
// mirrors the scalar-multiplication shortcut the type has always had.
//
// Operations that divide by the magnitude (Unit, Inv, Div and Ln) return an
// error of type ErrTypeDivisionByZero for the zero quaternion instead of
// producing infinities.
//
// The package also carries the numerical verification tooling used by its
// tests and by cmd/quatcheck: tolerance comparison, deterministic sample
// generation, an algebraic property suite and YAML reference vectors.
package quat
