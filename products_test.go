// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "testing"

func TestInnerProduct(t *testing.T) {
	x := Must(NewComplex(1, 2))
	y := Must(NewComplex(3, 4))
	// real(conj(x)*y) = real((1-2i)*(3+4i)) = 3+8 = 11
	if got, want := InnerProduct[Complex, float64](x, y), 11.0; got != want {
		t.Errorf("InnerProduct(1+2i, 3+4i) = %v, want %v", got, want)
	}
}

func TestHadamardProduct(t *testing.T) {
	x := Must(NewComplex(2, 3))
	y := Must(NewComplex(5, -1))
	got := HadamardProduct[Complex, float64](x, y, DefaultOptions())
	want := []string{"10", "-3i"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HadamardProduct[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOuterProductShape(t *testing.T) {
	x := Must(NewComplex(1, 1))
	y := Must(NewComplex(1, 1))
	m := OuterProduct[Complex, float64](x, y, DefaultOptions())
	if len(m) != 2 || len(m[0]) != 2 {
		t.Fatalf("OuterProduct shape = %dx%d, want 2x2", len(m), len(m[0]))
	}
}

func TestSelfMultiplicationMatrix(t *testing.T) {
	i := Must(NewQuaternion(0, 1, 0, 0))
	m := SelfMultiplicationMatrix[Quaternion, float64](i, DefaultOptions())
	if len(m) != 4 {
		t.Fatalf("len(m) = %d, want 4", len(m))
	}
	// e_0 * i = i
	if got, want := m[0][0], "i"; got != want {
		t.Errorf("m[0][0] = %q, want %q", got, want)
	}
	// e_1 * i = i*i = -1
	if got, want := m[1][0], "-1"; got != want {
		t.Errorf("m[1][0] = %q, want %q", got, want)
	}
}
