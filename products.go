// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

// InnerProduct returns the inner product of x and y: real(conj(x)*y).
func InnerProduct[A Value[A, F], F Field](x, y A) F {
	return x.Conj().Mul(y).Real()
}

// OuterProduct returns the d x d table of tensor terms formed from x
// and y: entry (i, j) is named(x_i * conj(y)_j), labeled on the
// basis position j (the index contributed by y's conjugated
// coefficient).
func OuterProduct[A Value[A, F], F Field](x, y A, opts Options) [][]string {
	xs := x.Elems()
	ys := y.Conj().Elems()
	dim := len(xs)
	m := make([][]string, dim)
	for i := range m {
		row := make([]string, dim)
		for j := range row {
			row[j] = namedTerm(j, float64(xs[i])*float64(ys[j]), dim, opts)
		}
		m[i] = row
	}
	return m
}

// HadamardProduct returns the component-wise product of x and y over
// their flattened coefficient vectors: entry i is named(x_i * y_i),
// each a scalar product in the base field labeled on its own
// position.
func HadamardProduct[A Value[A, F], F Field](x, y A, opts Options) []string {
	xs := x.Elems()
	ys := y.Elems()
	dim := len(xs)
	out := make([]string, dim)
	for i := range out {
		out[i] = namedTerm(i, float64(xs[i])*float64(ys[i]), dim, opts)
	}
	return out
}

// SelfMultiplicationMatrix returns a d x 1 table of named(e_i * x)
// terms for the basis vectors of algebra A against a fixed element x,
// sharing the C4/C5 formatter pipeline: row i holds the single entry
// Named(e_i * x), which shows only the first non-zero term of the
// product when it has more than one.
func SelfMultiplicationMatrix[A Value[A, F], F Field](x A, opts Options) [][]string {
	var zero A
	dim := zero.Dimensions()
	m := make([][]string, dim)
	for i := range m {
		ei := Indexes[A, F](i)
		p := Flatten[A, F](ei.Mul(x))
		m[i] = []string{Named(p, opts)}
	}
	return m
}
