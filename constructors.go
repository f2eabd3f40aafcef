// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "unsafe"

// FromCoefficients builds an element of algebra A from a flat
// coefficient sequence, real part first. A sequence shorter than A's
// dimension is padded with zeros; a sequence longer than A's
// dimension is a shape error.
func FromCoefficients[A Value[A, F], F Field](coeffs []F) (A, error) {
	var zero A
	e := zero.Elems()
	if len(coeffs) > len(e) {
		return zero, &shapeError{have: len(coeffs), want: len(e)}
	}
	copy(e, coeffs)
	return *(*A)(unsafe.Pointer(&e[0])), nil
}

// FromPair builds the level-n+1 element (a, b) from two level-n
// elements. It is the recursive primitive the rest of the construction
// is built from.
func FromPair[A Value[A, F], F Field](a, b A) Construction[A, F] {
	return cons(a, b)
}

// FromScalar builds the element of algebra A whose real part is f and
// whose remaining coefficients are zero.
func FromScalar[A Value[A, F], F Field](f F) A {
	return Lift[A](f)
}

// FromLower builds an element of algebra A by padding the coefficients
// of a lower- (or equal-) level element b with zeros. It is a shape
// error for b to carry more coefficients than A has room for.
func FromLower[A Value[A, F], F Field, B Value[B, F]](b B) (A, error) {
	return FromCoefficients[A](b.Elems())
}
