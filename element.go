// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

// Element is a level-agnostic, runtime view of a Cayley-Dickson value:
// its doubling level and flattened coefficients, real part first. It
// is the common currency of the introspection, product and rotation
// machinery (basis.go, products.go, rotation/), which must operate
// uniformly across levels that Go's generic [Construction] type cannot
// itself range over at runtime: a func accepting "any level" needs a
// concrete instantiation per level, and Element is the value that
// instantiation is built from and flattened back into.
type Element struct {
	level  int
	coeffs []float64
}

// NewElement returns the Element at the given doubling level with the
// given coefficients, real part first, zero-padded or truncated to
// the level's dimension 2^level.
func NewElement(level int, coeffs []float64) Element {
	dim := 1 << uint(level)
	c := make([]float64, dim)
	copy(c, coeffs)
	return Element{level: level, coeffs: c}
}

// Level reports the doubling depth of e.
func (e Element) Level() int { return e.level }

// Dimensions reports the number of coefficients of e.
func (e Element) Dimensions() int { return len(e.coeffs) }

// Coefficients returns a copy of e's flattened coefficients.
func (e Element) Coefficients() []float64 {
	c := make([]float64, len(e.coeffs))
	copy(c, e.coeffs)
	return c
}

// At returns the k-th coefficient of e, or 0 if k is out of range.
func (e Element) At(k int) float64 {
	if k < 0 || k >= len(e.coeffs) {
		return 0
	}
	return e.coeffs[k]
}

// Flatten converts a generically-typed algebra value into its runtime
// Element view.
func Flatten[A Value[A, F], F Field](x A) Element {
	src := x.Elems()
	coeffs := make([]float64, len(src))
	for i, v := range src {
		coeffs[i] = float64(v)
	}
	return Element{level: x.Level(), coeffs: coeffs}
}

// Unflatten rebuilds a generically-typed algebra value from an
// Element's coefficients. The Element must carry no more coefficients
// than A's dimension.
func Unflatten[A Value[A, F], F Field](e Element) (A, error) {
	coeffs := make([]F, len(e.coeffs))
	for i, v := range e.coeffs {
		coeffs[i] = F(v)
	}
	return FromCoefficients[A](coeffs)
}

// conjElement and the other *Element functions below form the
// level-to-concrete-type dispatch table every element-level operation
// in this package is built from: Go generics give us one
// algorithm per concrete type, so a runtime "apply this to whichever
// level the caller names" surface needs one case per supported level.
// Levels 0 through 8 are Real through Voudon; see types.go.
func conjElement(x Element) (Element, error) {
	switch x.level {
	case 0:
		return dispatchUnary[Real](x, func(a Real) Real { return a.Conj() })
	case 1:
		return dispatchUnary[Complex](x, func(a Complex) Complex { return a.Conj() })
	case 2:
		return dispatchUnary[Quaternion](x, func(a Quaternion) Quaternion { return a.Conj() })
	case 3:
		return dispatchUnary[Octonion](x, func(a Octonion) Octonion { return a.Conj() })
	case 4:
		return dispatchUnary[Sedenion](x, func(a Sedenion) Sedenion { return a.Conj() })
	case 5:
		return dispatchUnary[Pathion](x, func(a Pathion) Pathion { return a.Conj() })
	case 6:
		return dispatchUnary[Chingon](x, func(a Chingon) Chingon { return a.Conj() })
	case 7:
		return dispatchUnary[Routon](x, func(a Routon) Routon { return a.Conj() })
	case 8:
		return dispatchUnary[Voudon](x, func(a Voudon) Voudon { return a.Conj() })
	default:
		return Element{}, ErrNotSupported
	}
}

func mulElement(x, y Element) (Element, error) {
	if x.level != y.level {
		return Element{}, &TypeError{Operand: y}
	}
	switch x.level {
	case 0:
		return dispatchBinary[Real](x, y, func(a, b Real) Real { return a.Mul(b) })
	case 1:
		return dispatchBinary[Complex](x, y, func(a, b Complex) Complex { return a.Mul(b) })
	case 2:
		return dispatchBinary[Quaternion](x, y, func(a, b Quaternion) Quaternion { return a.Mul(b) })
	case 3:
		return dispatchBinary[Octonion](x, y, func(a, b Octonion) Octonion { return a.Mul(b) })
	case 4:
		return dispatchBinary[Sedenion](x, y, func(a, b Sedenion) Sedenion { return a.Mul(b) })
	case 5:
		return dispatchBinary[Pathion](x, y, func(a, b Pathion) Pathion { return a.Mul(b) })
	case 6:
		return dispatchBinary[Chingon](x, y, func(a, b Chingon) Chingon { return a.Mul(b) })
	case 7:
		return dispatchBinary[Routon](x, y, func(a, b Routon) Routon { return a.Mul(b) })
	case 8:
		return dispatchBinary[Voudon](x, y, func(a, b Voudon) Voudon { return a.Mul(b) })
	default:
		return Element{}, ErrNotSupported
	}
}

func addElement(x, y Element) (Element, error) {
	if x.level != y.level {
		return Element{}, &TypeError{Operand: y}
	}
	switch x.level {
	case 0:
		return dispatchBinary[Real](x, y, func(a, b Real) Real { return a.Add(b) })
	case 1:
		return dispatchBinary[Complex](x, y, func(a, b Complex) Complex { return a.Add(b) })
	case 2:
		return dispatchBinary[Quaternion](x, y, func(a, b Quaternion) Quaternion { return a.Add(b) })
	case 3:
		return dispatchBinary[Octonion](x, y, func(a, b Octonion) Octonion { return a.Add(b) })
	case 4:
		return dispatchBinary[Sedenion](x, y, func(a, b Sedenion) Sedenion { return a.Add(b) })
	case 5:
		return dispatchBinary[Pathion](x, y, func(a, b Pathion) Pathion { return a.Add(b) })
	case 6:
		return dispatchBinary[Chingon](x, y, func(a, b Chingon) Chingon { return a.Add(b) })
	case 7:
		return dispatchBinary[Routon](x, y, func(a, b Routon) Routon { return a.Add(b) })
	case 8:
		return dispatchBinary[Voudon](x, y, func(a, b Voudon) Voudon { return a.Add(b) })
	default:
		return Element{}, ErrNotSupported
	}
}

func negElement(x Element) (Element, error) {
	switch x.level {
	case 0:
		return dispatchUnary[Real](x, func(a Real) Real { return a.Neg() })
	case 1:
		return dispatchUnary[Complex](x, func(a Complex) Complex { return a.Neg() })
	case 2:
		return dispatchUnary[Quaternion](x, func(a Quaternion) Quaternion { return a.Neg() })
	case 3:
		return dispatchUnary[Octonion](x, func(a Octonion) Octonion { return a.Neg() })
	case 4:
		return dispatchUnary[Sedenion](x, func(a Sedenion) Sedenion { return a.Neg() })
	case 5:
		return dispatchUnary[Pathion](x, func(a Pathion) Pathion { return a.Neg() })
	case 6:
		return dispatchUnary[Chingon](x, func(a Chingon) Chingon { return a.Neg() })
	case 7:
		return dispatchUnary[Routon](x, func(a Routon) Routon { return a.Neg() })
	case 8:
		return dispatchUnary[Voudon](x, func(a Voudon) Voudon { return a.Neg() })
	default:
		return Element{}, ErrNotSupported
	}
}

func scaleElement(x Element, f float64) (Element, error) {
	switch x.level {
	case 0:
		return dispatchUnary[Real](x, func(a Real) Real { return a.Scale(f) })
	case 1:
		return dispatchUnary[Complex](x, func(a Complex) Complex { return a.Scale(f) })
	case 2:
		return dispatchUnary[Quaternion](x, func(a Quaternion) Quaternion { return a.Scale(f) })
	case 3:
		return dispatchUnary[Octonion](x, func(a Octonion) Octonion { return a.Scale(f) })
	case 4:
		return dispatchUnary[Sedenion](x, func(a Sedenion) Sedenion { return a.Scale(f) })
	case 5:
		return dispatchUnary[Pathion](x, func(a Pathion) Pathion { return a.Scale(f) })
	case 6:
		return dispatchUnary[Chingon](x, func(a Chingon) Chingon { return a.Scale(f) })
	case 7:
		return dispatchUnary[Routon](x, func(a Routon) Routon { return a.Scale(f) })
	case 8:
		return dispatchUnary[Voudon](x, func(a Voudon) Voudon { return a.Scale(f) })
	default:
		return Element{}, ErrNotSupported
	}
}

// indexElement returns the basis vector e_k at the given level: 1 at
// position k, 0 elsewhere.
func indexElement(level, k int) (Element, error) {
	dim := 1 << uint(level)
	if level < 0 || level > 8 || k < 0 || k >= dim {
		return Element{}, ErrNotSupported
	}
	c := make([]float64, dim)
	c[k] = 1
	return Element{level: level, coeffs: c}, nil
}

// valuesElement returns a copy of x with every coefficient other than
// position k zeroed.
func valuesElement(x Element, k int) Element {
	c := make([]float64, len(x.coeffs))
	if k >= 0 && k < len(c) {
		c[k] = x.coeffs[k]
	}
	return Element{level: x.level, coeffs: c}
}

// dispatchUnary instantiates a generic unary operation for concrete
// type A, applies it to x, and flattens the result back to an Element.
func dispatchUnary[A Value[A, F], F Field](x Element, op func(A) A) (Element, error) {
	a, err := Unflatten[A, F](x)
	if err != nil {
		return Element{}, err
	}
	return Flatten[A, F](op(a)), nil
}

// dispatchBinary is dispatchUnary's two-operand counterpart.
func dispatchBinary[A Value[A, F], F Field](x, y Element, op func(A, A) A) (Element, error) {
	a, err := Unflatten[A, F](x)
	if err != nil {
		return Element{}, err
	}
	b, err := Unflatten[A, F](y)
	if err != nil {
		return Element{}, err
	}
	return Flatten[A, F](op(a, b)), nil
}
