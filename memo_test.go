// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "testing"

func TestMemoMulMatchesDirect(t *testing.T) {
	x := Must(NewQuaternion(1, 2, 3, 4))
	y := Must(NewQuaternion(4, 3, 2, 1))

	EnableMemo(false)
	direct := x.Mul(y)
	if got := MemoMul[Quaternion, float64](x, y); got != direct {
		t.Errorf("MemoMul (disabled) = %v, want %v", got, direct)
	}

	EnableMemo(true)
	defer EnableMemo(false)
	memoed := MemoMul[Quaternion, float64](x, y)
	if memoed != direct {
		t.Errorf("MemoMul (enabled) = %v, want %v", memoed, direct)
	}
	// second call should hit the cache and still agree
	if got := MemoMul[Quaternion, float64](x, y); got != direct {
		t.Errorf("MemoMul (cached) = %v, want %v", got, direct)
	}
}

func TestMemoDiv(t *testing.T) {
	x := Must(NewComplex(6, 8))
	y := Must(NewComplex(2, 0))

	EnableMemo(true)
	defer EnableMemo(false)
	got := MemoDiv[Complex, float64](x, y)
	want := Div(x, y)
	if got != want {
		t.Errorf("MemoDiv(6+8i, 2) = %v, want %v", got, want)
	}
}

func TestLRUCacheEviction(t *testing.T) {
	c := newLRUCache[int]()
	for i := 0; i < memoCacheLimit+10; i++ {
		c.put(i, i+1, i*2)
	}
	if _, ok := c.get(0, 1); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.get(memoCacheLimit+9, memoCacheLimit+10); !ok || v != (memoCacheLimit+9)*2 {
		t.Errorf("most recent entry missing or wrong: got %v, %v", v, ok)
	}
}
