// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import (
	"errors"
	"testing"
)

func TestEqual(t *testing.T) {
	a := Must(NewQuaternion(1, 2, 3, 4))
	b := Must(NewQuaternion(1, 2, 3, 4))
	c := Must(NewQuaternion(1, 2, 3, 5))
	if !Equal[Quaternion, float64](a, b) {
		t.Error("identical quaternions compare unequal")
	}
	if Equal[Quaternion, float64](a, c) {
		t.Error("differing quaternions compare equal")
	}
}

func TestOrderingIsPreOrder(t *testing.T) {
	x := Must(NewComplex(3, 4))
	y := Must(NewComplex(4, 3))
	if Less[Complex, float64](x, y) || Greater[Complex, float64](x, y) {
		t.Error("equal-norm elements should compare neither less nor greater")
	}
	if Equal[Complex, float64](x, y) {
		t.Error("3+4i and 4+3i should not be == despite equal norm")
	}

	z := Must(NewComplex(1, 0))
	if !Less[Complex, float64](z, x) {
		t.Error("1 should order before 3+4i by norm")
	}
}

func TestBool(t *testing.T) {
	var zero Quaternion
	if Bool[Quaternion, float64](zero) {
		t.Error("zero element reported as non-zero")
	}
	nz := Must(NewQuaternion(0, 0, 0, 1))
	if !Bool[Quaternion, float64](nz) {
		t.Error("non-zero element reported as zero")
	}
}

func TestToFloat(t *testing.T) {
	x := Must(NewComplex(5, 0))
	f, err := ToFloat[Complex, float64](x)
	if err != nil {
		t.Fatalf("ToFloat(5+0i): %v", err)
	}
	if f != 5 {
		t.Errorf("ToFloat(5+0i) = %v, want 5", f)
	}

	y := Must(NewComplex(5, 1))
	if _, err := ToFloat[Complex, float64](y); !errors.Is(err, ErrNarrowing) {
		t.Errorf("ToFloat(5+i) error = %v, want ErrNarrowing", err)
	}
}

func TestToComplex(t *testing.T) {
	q := Must(NewQuaternion(1, 2, 0, 0))
	c, err := ToComplex[Quaternion, float64](q)
	if err != nil {
		t.Fatalf("ToComplex(1+2i+0j+0k): %v", err)
	}
	if real(c) != 1 || imag(c) != 2 {
		t.Errorf("ToComplex = %v, want 1+2i", c)
	}

	qj := Must(NewQuaternion(1, 2, 3, 0))
	if _, err := ToComplex[Quaternion, float64](qj); !errors.Is(err, ErrNarrowing) {
		t.Errorf("ToComplex with non-zero j component error = %v, want ErrNarrowing", err)
	}
}
