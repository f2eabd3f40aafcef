// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

// Real, Complex, Quaternion, ..., Voudon are the conventional named
// levels of the Cayley-Dickson construction over the IEEE-754 double
// base field, built by repeated doubling: level n wraps two values of
// level n-1. This package supports levels 0 through 8 (1 through 256
// dimensions); see ErrNotSupported for the boundary.
type (
	Real       = R[float64]
	Complex    = Construction[Real, float64]
	Quaternion = Construction[Complex, float64]
	Octonion   = Construction[Quaternion, float64]
	Sedenion   = Construction[Octonion, float64]
	Pathion    = Construction[Sedenion, float64]
	Chingon    = Construction[Pathion, float64]
	Routon     = Construction[Chingon, float64]
	Voudon     = Construction[Routon, float64]
)

// NewReal returns the base-field element wrapping f.
func NewReal(f float64) Real { return NewR(f) }

// NewComplex builds a Complex from up to 2 coefficients, real part
// first, padding any missing trailing coefficients with zero. It
// returns a *shapeError wrapping ErrShape if more than 2 coefficients
// are given.
func NewComplex(coeffs ...float64) (Complex, error) {
	return FromCoefficients[Complex](coeffs)
}

// NewQuaternion builds a Quaternion from up to 4 coefficients, real
// part first.
func NewQuaternion(coeffs ...float64) (Quaternion, error) {
	return FromCoefficients[Quaternion](coeffs)
}

// NewOctonion builds an Octonion from up to 8 coefficients, real part
// first.
func NewOctonion(coeffs ...float64) (Octonion, error) {
	return FromCoefficients[Octonion](coeffs)
}

// NewSedenion builds a Sedenion from up to 16 coefficients, real part
// first.
func NewSedenion(coeffs ...float64) (Sedenion, error) {
	return FromCoefficients[Sedenion](coeffs)
}

// NewPathion builds a Pathion from up to 32 coefficients, real part
// first.
func NewPathion(coeffs ...float64) (Pathion, error) {
	return FromCoefficients[Pathion](coeffs)
}

// NewChingon builds a Chingon from up to 64 coefficients, real part
// first.
func NewChingon(coeffs ...float64) (Chingon, error) {
	return FromCoefficients[Chingon](coeffs)
}

// NewRouton builds a Routon from up to 128 coefficients, real part
// first.
func NewRouton(coeffs ...float64) (Routon, error) {
	return FromCoefficients[Routon](coeffs)
}

// NewVoudon builds a Voudon from up to 256 coefficients, real part
// first.
func NewVoudon(coeffs ...float64) (Voudon, error) {
	return FromCoefficients[Voudon](coeffs)
}
