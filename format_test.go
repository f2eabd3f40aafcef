// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "testing"

func TestElementStringRoundTrip(t *testing.T) {
	cases := []struct {
		level  int
		coeffs []float64
	}{
		{0, []float64{3}},
		{1, []float64{1, 2}},
		{2, []float64{1, -2, 3, -4}},
		{3, []float64{0, 1, 0, 0, 0, 0, 0, -1}},
	}
	for _, c := range cases {
		e := NewElement(c.level, c.coeffs)
		s := e.String()
		got, err := Parse(c.level, s)
		if err != nil {
			t.Fatalf("Parse(%d, %q): %v", c.level, s, err)
		}
		for i := range c.coeffs {
			if got.At(i) != e.At(i) {
				t.Errorf("round-trip %q: coefficient %d = %v, want %v", s, i, got.At(i), e.At(i))
			}
		}
	}
}

func TestParseZero(t *testing.T) {
	e, err := Parse(1, "0")
	if err != nil {
		t.Fatalf("Parse(1, \"0\"): %v", err)
	}
	for i, v := range e.Coefficients() {
		if v != 0 {
			t.Errorf("coefficient %d = %v, want 0", i, v)
		}
	}
}

func TestParseRejectsDuplicateTerm(t *testing.T) {
	if _, err := Parse(1, "1+2i+3i"); err == nil {
		t.Fatal("Parse accepted a string with a duplicate basis term")
	}
}

func TestFormatQuaternion(t *testing.T) {
	q := Must(NewQuaternion(1, 2, 3, 4))
	s := Format[Quaternion, float64](q)
	got, err := Parse(2, s)
	if err != nil {
		t.Fatalf("Parse(2, %q): %v", s, err)
	}
	want := Flatten[Quaternion, float64](q)
	for i := 0; i < 4; i++ {
		if got.At(i) != want.At(i) {
			t.Errorf("coefficient %d = %v, want %v", i, got.At(i), want.At(i))
		}
	}
}
