// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import (
	"math"
	"unsafe"
)

// Construction is a single Cayley-Dickson doubling of a parent algebra
// A: an ordered pair (a, b) of parent values, with arithmetic defined
// recursively in terms of A's own Add, Mul, Conj and Scale. Applying
// Construction to itself n times over the base field R builds the
// level-n algebra; see the named aliases in types.go for the
// conventional levels.
type Construction[A Value[A, F], F Field] struct {
	a, b A
}

// cons builds the pair (a, b) as a level-n+1 Construction, where A is
// the level-n parent algebra.
func cons[A Value[A, F], F Field](a, b A) Construction[A, F] {
	return Construction[A, F]{a: a, b: b}
}

// Real returns the real part of x: the real part of its first
// component.
func (x Construction[A, F]) Real() F {
	return x.a.Real()
}

// Imag returns the imaginary vector part of x: x with its leading real
// coefficient zeroed.
func (x Construction[A, F]) Imag() Construction[A, F] {
	return cons(x.a.Imag(), x.b)
}

// Level reports the doubling depth of the algebra.
func (x Construction[A, F]) Level() int {
	return x.a.Level() + 1
}

// Dimensions reports the number of scalar coefficients of x.
func (x Construction[A, F]) Dimensions() int {
	return x.a.Dimensions() * 2
}

// Scale returns x with every coefficient scaled by f.
func (x Construction[A, F]) Scale(f F) Construction[A, F] {
	return cons(x.a.Scale(f), x.b.Scale(f))
}

// Neg returns the negation of x.
func (x Construction[A, F]) Neg() Construction[A, F] {
	return cons(x.a.Neg(), x.b.Neg())
}

// Conj returns the Cayley-Dickson conjugate of x: conj(a, b) = (conj(a), -b).
func (x Construction[A, F]) Conj() Construction[A, F] {
	return cons(x.a.Conj(), x.b.Neg())
}

// Add returns the sum of x and y, component-wise.
func (x Construction[A, F]) Add(y Construction[A, F]) Construction[A, F] {
	return cons(x.a.Add(y.a), x.b.Add(y.b))
}

// Sub returns the difference x-y.
func (x Construction[A, F]) Sub(y Construction[A, F]) Construction[A, F] {
	return x.Add(y.Neg())
}

// Mul returns the Cayley-Dickson product of x=(a,b) and y=(c,d):
//
//	x*y = (a*c - conj(d)*b, d*a + b*conj(c))
//
// This is the canonical doubling formula; the conjugation of the
// right-hand operand's second component is load-bearing and must not
// be swapped for a different placement, which would yield a
// non-equivalent algebra from level 2 upward.
func (x Construction[A, F]) Mul(y Construction[A, F]) Construction[A, F] {
	a, b := x.a, x.b
	c, d := y.a, y.b
	return cons(
		a.Mul(c).Add(d.Conj().Mul(b).Neg()),
		d.Mul(a).Add(b.Mul(c.Conj())),
	)
}

// Elems returns the flattened coefficients of x, parent a's
// coefficients followed by parent b's, as a slice backed by the
// receiver's own storage. The Construction[A, F] struct has no fields
// beyond its two A-typed components, and A is in turn either the base
// field or another such pair, so the whole value is laid out as a
// contiguous array of F with no padding; this lets every level share
// one flattening implementation instead of each level concatenating
// its parent's slice.
func (x Construction[A, F]) Elems() []F {
	var zero F
	return unsafe.Slice((*F)(unsafe.Pointer(&x)), unsafe.Sizeof(x)/unsafe.Sizeof(zero))
}

// Norm2 returns the squared norm of x, real(conj(x)*x).
func Norm2[A Value[A, F], F Field](x A) F {
	return x.Conj().Mul(x).Real()
}

// Abs returns the norm (modulus) of x.
func Abs[A Value[A, F], F Field](x A) F {
	return F(math.Sqrt(float64(Norm2(x))))
}

// Inverse returns the multiplicative inverse of x: conj(x)/norm2(x).
// If x has zero norm, the result follows the base field's own
// division-by-zero behavior (typically infinities or NaN) rather than
// panicking.
func Inverse[A Value[A, F], F Field](x A) A {
	n := Norm2(x)
	return x.Conj().Scale(1 / n)
}

// Div returns the quotient x/y, computed as x*Inverse(y).
func Div[A Value[A, F], F Field](x, y A) A {
	return x.Mul(Inverse(y))
}

// Pow returns x raised to the integer power k. Pow(x, 0) is the
// multiplicative identity regardless of x. For k>0 it is x multiplied
// by itself k times; for k<0 it is Inverse(x) multiplied by itself |k|
// times. No fast exponentiation is attempted, matching the recursive
// spirit of the construction; callers needing speed over many calls
// should cache the result.
func Pow[A Value[A, F], F Field](x A, k int) A {
	one := One[A, F]()
	if k == 0 {
		return one
	}
	base := x
	n := k
	if k < 0 {
		base = Inverse(x)
		n = -k
	}
	result := one
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	return result
}

// Zero returns the additive identity of the algebra A.
func Zero[A Value[A, F], F Field]() A {
	var z A
	return z
}

// One returns the multiplicative identity of the algebra A: the
// element with real part 1 and all other coefficients 0.
func One[A Value[A, F], F Field]() A {
	var one F = 1
	return Lift[A](one)
}

// Lift returns the element of algebra A with real part f and all
// other coefficients zero.
func Lift[A Value[A, F], F Field](f F) A {
	var zero A
	e := zero.Elems()
	e[0] = f
	return *(*A)(unsafe.Pointer(&e[0]))
}
