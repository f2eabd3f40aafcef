// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cd implements the Cayley–Dickson construction, the recursive
// doubling procedure that builds the complex numbers, quaternions,
// octonions, sedenions and their higher-dimensional relatives from a
// chosen real base field.
//
// Starting from a base scalar, each doubling produces an algebra of
// twice the dimension of its parent, with addition, multiplication,
// conjugation, norm and inverse all defined in terms of the parent
// algebra's own operations. This package exposes that construction as
// a generic type, [Construction], together with named aliases for the
// eight conventional doubling levels (complex numbers through voudons)
// and the introspection machinery needed to enumerate basis elements,
// build Cayley multiplication tables and analyze the signed
// permutation structure of basis rotations.
package cd

import "unsafe"

// Field is the set of scalar types usable as the base of a
// Cayley-Dickson construction. The canonical base is float64; float32
// is also supported for lower-precision use.
type Field interface {
	~float32 | ~float64
}

// Value is the capability set required of every level of a
// Cayley-Dickson algebra, from the base field itself up through any
// number of doublings. A is the value's own type; this self-reference
// is what lets [Construction] be defined generically over its parent
// algebra's arithmetic without knowing the parent's concrete shape.
type Value[A any, F Field] interface {
	// Real returns the real part of the value.
	Real() F
	// Imag returns the imaginary vector part of the value, i.e. the
	// value with its real part zeroed.
	Imag() A

	// Level reports the doubling depth of the algebra: 0 for the base
	// field, 1 for its first doubling (complex numbers), and so on.
	Level() int
	// Dimensions reports the number of scalar coefficients the value
	// carries, equal to 2^Level.
	Dimensions() int

	// Scale returns the value with every coefficient scaled by f.
	Scale(f F) A
	// Neg returns the negation of the value.
	Neg() A
	// Conj returns the Cayley-Dickson conjugate of the value.
	Conj() A
	// Add returns the sum of the value and a.
	Add(a A) A
	// Mul returns the Cayley-Dickson product of the value and a.
	Mul(a A) A

	// Elems returns the flattened coefficients of the value, real part
	// first. The returned slice must not alias storage the caller can
	// mutate to affect the receiver.
	Elems() []F

	comparable
}

// R is the base-field adapter: the level-0 Cayley-Dickson algebra. It
// wraps a single scalar and defines trivial conjugation.
type R[F Field] struct {
	v F
}

// NewR returns the level-0 element wrapping f.
func NewR[F Field](f F) R[F] { return R[F]{v: f} }

// Real returns the scalar itself.
func (x R[F]) Real() F { return x.v }

// Imag returns the zero element; the base field has no imaginary part.
func (x R[F]) Imag() R[F] { return R[F]{} }

// Level is always 0 for the base field.
func (x R[F]) Level() int { return 0 }

// Dimensions is always 1 for the base field.
func (x R[F]) Dimensions() int { return 1 }

// Scale returns x scaled by f.
func (x R[F]) Scale(f F) R[F] { return R[F]{v: x.v * f} }

// Neg returns the negation of x.
func (x R[F]) Neg() R[F] { return R[F]{v: -x.v} }

// Conj returns x unchanged; the base field conjugates to itself.
func (x R[F]) Conj() R[F] { return x }

// Add returns x+y.
func (x R[F]) Add(y R[F]) R[F] { return R[F]{v: x.v + y.v} }

// Mul returns x*y.
func (x R[F]) Mul(y R[F]) R[F] { return R[F]{v: x.v * y.v} }

// Elems returns the single coefficient of x as a slice backed by the
// receiver's own storage; see [Construction.Elems] for the convention
// this supports at higher levels.
func (x R[F]) Elems() []F {
	var zero F
	return unsafe.Slice((*F)(unsafe.Pointer(&x)), unsafe.Sizeof(x)/unsafe.Sizeof(zero))
}
