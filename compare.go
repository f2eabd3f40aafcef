// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

// Equal reports whether x and y are exactly component-wise equal. The
// Cayley-Dickson equality recursion (a==c) ∧ (b==d) is exactly Go's
// struct equality for [Construction], since comparable is part of the
// [Value] capability set.
func Equal[A Value[A, F], F Field](x, y A) bool {
	return x == y
}

// Less reports whether x orders before y by squared norm. This is
// only a pre-order: elements of equal norm compare equal under Less
// and Greater even when they are not == under Equal.
func Less[A Value[A, F], F Field](x, y A) bool {
	return Norm2(x) < Norm2(y)
}

// Greater reports whether x orders after y by squared norm.
func Greater[A Value[A, F], F Field](x, y A) bool {
	return Norm2(x) > Norm2(y)
}

// Bool reports whether x is non-zero: true iff any coefficient of x
// is non-zero.
func Bool[A Value[A, F], F Field](x A) bool {
	for _, v := range x.Elems() {
		if v != 0 {
			return true
		}
	}
	return false
}

// ToFloat narrows x to its underlying scalar type, succeeding only if
// every coefficient beyond the real part is zero.
func ToFloat[A Value[A, F], F Field](x A) (F, error) {
	e := x.Elems()
	for _, v := range e[1:] {
		if v != 0 {
			return 0, ErrNarrowing
		}
	}
	return e[0], nil
}

// ToComplex narrows x to a complex128, succeeding only if every
// coefficient beyond the first two is zero.
func ToComplex[A Value[A, F], F Field](x A) (complex128, error) {
	e := x.Elems()
	if len(e) < 2 {
		return complex(float64(e[0]), 0), nil
	}
	for _, v := range e[2:] {
		if v != 0 {
			return 0, ErrNarrowing
		}
	}
	return complex(float64(e[0]), float64(e[1])), nil
}
