// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "testing"

func TestByLevelAndByName(t *testing.T) {
	d, err := ByLevel(2)
	if err != nil {
		t.Fatalf("ByLevel(2): %v", err)
	}
	if d.Name != "Quaternion" || d.Dimensions != 4 {
		t.Errorf("ByLevel(2) = %+v, want Quaternion/4", d)
	}

	d2, err := ByName("Octonion")
	if err != nil {
		t.Fatalf("ByName(Octonion): %v", err)
	}
	if d2.Level != 3 || d2.Dimensions != 8 {
		t.Errorf("ByName(Octonion) = %+v, want level 3 / dim 8", d2)
	}
}

func TestByLevelOutOfRange(t *testing.T) {
	if _, err := ByLevel(9); err == nil {
		t.Fatal("ByLevel(9) succeeded, want error")
	}
	if _, err := ByLevel(-1); err == nil {
		t.Fatal("ByLevel(-1) succeeded, want error")
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("Nonion"); err == nil {
		t.Fatal("ByName(Nonion) succeeded, want error")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 9 {
		t.Fatalf("len(Names()) = %d, want 9", len(names))
	}
	if names[0] != "Real" || names[8] != "Voudon" {
		t.Errorf("Names() = %v, want Real..Voudon", names)
	}
}

func TestDescriptorZero(t *testing.T) {
	d, _ := ByLevel(1)
	z := d.Zero()
	if z.Level() != 1 || z.Dimensions() != 2 {
		t.Errorf("Zero() = level %d dim %d, want 1/2", z.Level(), z.Dimensions())
	}
	for _, v := range z.Coefficients() {
		if v != 0 {
			t.Errorf("Zero() has non-zero coefficient %v", v)
		}
	}
}
