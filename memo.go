// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import (
	"container/list"
	"reflect"
	"sync"
	"sync/atomic"
)

// memoEnabled is the process-wide toggle for [MemoMul] and [MemoDiv].
// It defaults to off: callers opt in with [EnableMemo].
var memoEnabled atomic.Bool

// EnableMemo turns the memoization layer on or off process-wide.
// Disabling it makes MemoMul and MemoDiv behave identically to a
// direct Mul/Div call; the cache itself is advisory and holds no
// state that correctness depends on.
func EnableMemo(enabled bool) {
	memoEnabled.Store(enabled)
}

// memoCacheLimit bounds each type's cache to this many entries.
const memoCacheLimit = 128

// lruCache is a bounded least-recently-used cache keyed by an operand
// pair. Every get and put holds the cache's own mutex, so concurrent
// users may share it; see §5.
type lruCache[A comparable] struct {
	mu    sync.Mutex
	order *list.List
	index map[[2]A]*list.Element
}

type lruEntry[A comparable] struct {
	key   [2]A
	value A
}

func newLRUCache[A comparable]() *lruCache[A] {
	return &lruCache[A]{
		order: list.New(),
		index: make(map[[2]A]*list.Element),
	}
}

func (c *lruCache[A]) get(x, y A) (A, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := [2]A{x, y}
	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*lruEntry[A]).value, true
	}
	var zero A
	return zero, false
}

func (c *lruCache[A]) put(x, y, v A) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := [2]A{x, y}
	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*lruEntry[A]).value = v
		return
	}
	el := c.order.PushFront(&lruEntry[A]{key: key, value: v})
	c.index[key] = el
	if c.order.Len() > memoCacheLimit {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*lruEntry[A]).key)
		}
	}
}

// memoCaches holds one lruCache per concrete algebra type. Go does
// not allow a generic package-level variable, so each type's cache is
// looked up by its reflect.Type the first time it is needed.
var memoCaches sync.Map // map[reflect.Type]*lruCache[A] (as any)

func memoCacheFor[A Value[A, F], F Field]() *lruCache[A] {
	var zero A
	t := reflect.TypeOf(zero)
	if v, ok := memoCaches.Load(t); ok {
		return v.(*lruCache[A])
	}
	c := newLRUCache[A]()
	v, _ := memoCaches.LoadOrStore(t, c)
	return v.(*lruCache[A])
}

// MemoMul returns x.Mul(y), transparently cached by operand pair when
// memoization is enabled via [EnableMemo].
func MemoMul[A Value[A, F], F Field](x, y A) A {
	if !memoEnabled.Load() {
		return x.Mul(y)
	}
	c := memoCacheFor[A, F]()
	if v, ok := c.get(x, y); ok {
		return v
	}
	v := x.Mul(y)
	c.put(x, y, v)
	return v
}

// MemoDiv returns Div(x, y), transparently cached by operand pair when
// memoization is enabled via [EnableMemo]. It shares MemoMul's cache
// namespace by keying on (x, Inverse(y)).
func MemoDiv[A Value[A, F], F Field](x, y A) A {
	return MemoMul[A, F](x, Inverse(y))
}
