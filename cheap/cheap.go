// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cheap implements the centered heap: a partially-ordered tree
// embedded in a contiguous, caller-owned array, whose root sits at an
// arbitrary interior index and whose children grow outward on both sides.
// It is the building block for an in-place merge, a heap sort, and a
// windowed running sort, all of which move elements within the array
// without any auxiliary buffer.
package cheap

import (
	"cmp"
	"fmt"
)

// Cheap is a transient view over a caller-owned array a, occupying the
// half-open range [lo, hi) with its root at index c. A Cheap owns no
// memory of its own; it borrows a exclusively for its lifetime and must
// not be used concurrently with any other access to a[lo:hi] (or to the
// boundary slot being absorbed or vacated by a push/pop/slide).
type Cheap[E cmp.Ordered] struct {
	a   []E
	lo  int
	c   int
	hi  int
	cnt Counter
}

// NewEmptyLeft constructs an empty c-heap anchored at the left end of a,
// ready to absorb elements via PushRight as a running sort grows it.
func NewEmptyLeft[E cmp.Ordered](a []E, cnt Counter) *Cheap[E] {
	return &Cheap[E]{a: a, lo: 0, c: 0, hi: 0, cnt: cnt}
}

// NewEmptyRight constructs an empty c-heap anchored at the right end of a.
func NewEmptyRight[E cmp.Ordered](a []E, cnt Counter) *Cheap[E] {
	n := len(a)
	return &Cheap[E]{a: a, lo: n, c: n, hi: n, cnt: cnt}
}

// NewSpanLeft constructs a c-heap spanning the whole array, rooted at the
// left end.
func NewSpanLeft[E cmp.Ordered](a []E, cnt Counter) *Cheap[E] {
	return &Cheap[E]{a: a, lo: 0, c: 0, hi: len(a), cnt: cnt}
}

// NewSpanRight constructs a c-heap spanning the whole array, rooted at the
// right end.
func NewSpanRight[E cmp.Ordered](a []E, cnt Counter) *Cheap[E] {
	n := len(a)
	c := 0
	if n > 0 {
		c = n - 1
	}
	return &Cheap[E]{a: a, lo: 0, c: c, hi: n, cnt: cnt}
}

// IsEmpty reports whether the c-heap's range is empty.
func (h *Cheap[E]) IsEmpty() bool {
	if h.lo > h.hi {
		panic("cheap: invalid state, lo > hi")
	}
	return h.lo == h.hi
}

// Len returns the number of elements currently in the c-heap.
func (h *Cheap[E]) Len() int { return h.hi - h.lo }

func (h *Cheap[E]) swap(i, j int) {
	h.cnt.CountSwap()
	h.a[i], h.a[j] = h.a[j], h.a[i]
}

// betterThan reports whether a[i] <= a[j], counting the comparison.
func (h *Cheap[E]) betterThan(i, j int) bool {
	h.cnt.CountCompare()
	return h.a[i] <= h.a[j]
}

func (h *Cheap[E]) betterThanNoCount(i, j int) bool {
	return h.a[i] <= h.a[j]
}

func (h *Cheap[E]) checkRange() {
	if h.hi > len(h.a) {
		panic("cheap: state: markers outside array")
	}
	if !(h.lo == h.c && h.c == h.hi || h.lo <= h.c && h.c <= h.hi) {
		panic("cheap: state: markers invalid")
	}
}

// isValid checks the heap invariant: every non-root node is no better than
// its parent.
func (h *Cheap[E]) isValid() bool {
	for i := h.lo; i < h.hi; i++ {
		if i == h.c {
			continue
		}
		p := parent(i, h.c)
		if !h.betterThanNoCount(p, i) {
			return false
		}
	}
	return true
}

// check runs the full invariant check (range + heap order), used only when
// debugChecks is enabled.
func (h *Cheap[E]) check() {
	if !debugChecks {
		return
	}
	h.checkRange()
	if !h.isValid() {
		panic(fmt.Sprintf("cheap: state: heap invariant failed: %v", h))
	}
}

// String renders the c-heap with lo/c/hi markers, for debugging.
func (h *Cheap[E]) String() string {
	n := len(h.a)
	if n == 0 {
		return "[]"
	}
	var s string
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v", h.a[i])
		switch {
		case i == h.lo && i == h.c && i == h.hi:
			s += ":lo.c:hi"
		case i == h.lo && i == h.c:
			s += ":lo.c"
		case i == h.c && i == h.hi:
			s += ".c:hi"
		case i == h.lo:
			s += ":lo"
		case i == h.c:
			s += ".c"
		case i == h.hi:
			s += ":hi"
		}
	}
	return "[" + s + "]"
}

// recenter restores the heap invariant over the whole [lo, hi) range after
// lo, c, or hi has been bulk-reassigned. It sifts every interior node,
// walking from the limits inward toward c so each sifted node's subtree is
// already heap-ordered by the time it is visited.
func (h *Cheap[E]) recenter() {
	h.checkRange()
	lo, c, hi := h.lo, h.c, h.hi
	for i := recenterLimit(lo, c); i < c; i++ {
		h.siftOut(i)
	}
	for i := recenterLimit(hi, c) - 1; i >= c; i-- {
		h.siftOut(i)
	}
	h.check()
}

// siftOut pushes a potentially-violating node n toward the leaves: while an
// in-range child is better than n, swap with the better of the two
// in-range children and continue from the new position.
func (h *Cheap[E]) siftOut(n int) {
	for {
		lo, c, hi := h.lo, h.c, h.hi
		best := -1

		ch1 := leftChild(n, c)
		if lo <= ch1 && ch1 < hi && h.betterThan(ch1, n) {
			best = ch1
		}

		ch2 := rightChild(n, c)
		if lo <= ch2 && ch2 < hi && h.betterThan(ch2, n) {
			if best < 0 || h.betterThan(ch2, best) {
				best = ch2
			}
		}

		if best < 0 {
			return
		}
		h.swap(n, best)
		n = best
	}
}

// siftIn pulls a potentially-violating leaf-side node i toward the root:
// while i != c and a[i] is better than its parent, swap and continue from
// the parent.
func (h *Cheap[E]) siftIn(i int) {
	n := i
	for n != h.c {
		p := parent(n, h.c)
		if !h.betterThan(n, p) {
			return
		}
		h.swap(n, p)
		n = p
	}
}

// PopLeft removes the root (the minimum) from the c-heap, leaves it in slot
// lo as that slot drops out of the range, and returns it; the caller must
// treat that slot as consumed output. Precondition: non-empty.
func (h *Cheap[E]) PopLeft() E {
	h.check()
	if h.IsEmpty() {
		panic("cheap: pop when empty")
	}

	lop := h.lo + 1
	var out E
	if h.lo == h.c {
		out = h.a[h.c]
		if lop < h.hi {
			h.c = h.hi - 1
			h.lo = lop
			h.recenter()
		} else {
			h.lo = lop
			h.c = lop
		}
	} else {
		out = h.a[h.c]
		h.swap(h.c, h.lo)
		h.lo = lop
		h.siftOut(h.c)
	}
	h.check()
	return out
}

// PopRight removes the root (the minimum) from the c-heap, leaves it in
// slot hi-1 as that slot drops out of the range, and returns it.
// Precondition: non-empty.
func (h *Cheap[E]) PopRight() E {
	h.check()
	if h.IsEmpty() {
		panic("cheap: pop when empty")
	}

	hip := h.hi - 1
	out := h.a[h.c]
	if hip == h.c {
		h.c = h.lo
		h.hi = hip
		if h.lo < hip {
			h.recenter()
		}
	} else {
		h.swap(hip, h.c)
		h.hi = hip
		h.siftOut(h.c)
	}
	h.check()
	return out
}

// PushLeft extends the range to absorb a[lo-1]. Precondition: lo > 0.
func (h *Cheap[E]) PushLeft() {
	h.check()
	if h.lo <= 0 {
		panic("cheap: push past array boundary")
	}

	lop := h.lo - 1
	if h.c == h.hi {
		h.c = lop
	}
	h.lo = lop
	h.siftIn(lop)
	h.check()
}

// PushRight extends the range to absorb a[hi]. Precondition: hi < len(a).
func (h *Cheap[E]) PushRight() {
	h.check()
	if h.hi >= len(h.a) {
		panic("cheap: push when c-heap full")
	}

	hip := h.hi + 1
	h.siftIn(h.hi)
	h.hi = hip
	h.check()
}

// PushLeftSwap swaps the value at the out-of-range index i with the slot
// about to be absorbed on the left, then pushes. Precondition: i < lo or
// i >= hi.
func (h *Cheap[E]) PushLeftSwap(i int) {
	if !(i < h.lo || i >= h.hi) {
		panic("cheap: swap target already inside c-heap")
	}
	h.swap(i, h.lo-1)
	h.PushLeft()
}

// PushRightSwap swaps the value at the out-of-range index i with the slot
// about to be absorbed on the right, then pushes. Precondition: i < lo or
// i >= hi.
func (h *Cheap[E]) PushRightSwap(i int) {
	if !(i < h.lo || i >= h.hi) {
		panic("cheap: swap target already inside c-heap")
	}
	h.swap(i, h.hi)
	h.PushRight()
}

// PopPush replaces the root with the value at external index i, writing the
// previous root into slot i. Precondition: non-empty, i < lo or i >= hi.
func (h *Cheap[E]) PopPush(i int) {
	h.check()
	if h.IsEmpty() {
		panic("cheap: poppush on empty range")
	}
	if !(i < h.lo || i >= h.hi) {
		panic("cheap: poppush index already inside c-heap")
	}
	h.swap(i, h.c)
	h.siftOut(h.c)
	h.check()
}

// PushPop is a no-op if the c-heap is empty or a[i] is better than or equal
// to the current root; otherwise it behaves as PopPush(i), replacing the
// root with a[i] and writing the previous root into slot i.
// Precondition: i < lo or i >= hi.
func (h *Cheap[E]) PushPop(i int) {
	h.check()
	if !(i < h.lo || i >= h.hi) {
		panic("cheap: pushpop index already inside c-heap")
	}
	if h.IsEmpty() || h.betterThan(i, h.c) {
		return
	}
	h.swap(i, h.c)
	h.siftOut(h.c)
	h.check()
}

// SlideRight advances the whole range one step right, transferring the old
// a[lo] out to a[hi]. Precondition: hi < len(a).
func (h *Cheap[E]) SlideRight() {
	h.check()
	if h.hi >= len(h.a) {
		panic("cheap: slide right past array bounds")
	}

	if h.IsEmpty() {
		h.lo++
		h.c++
		h.hi++
	} else {
		lop := h.lo + 1
		hip := h.hi + 1
		h.swap(h.lo, h.hi)
		if h.c == h.lo {
			h.c = h.hi
			h.lo = lop
			h.hi = hip
			h.recenter()
		} else {
			h.siftIn(h.hi)
			h.lo = lop
			h.hi = hip
		}
	}
	h.check()
}

// SlideLeft is the mirror image of SlideRight: it advances the whole range
// one step left, transferring the old a[hi-1] out to a[lo-1]. Precondition:
// lo > 0.
func (h *Cheap[E]) SlideLeft() {
	h.check()
	if h.lo <= 0 {
		panic("cheap: slide left past array bounds")
	}

	if h.IsEmpty() {
		h.lo--
		h.c--
		h.hi--
	} else {
		lop := h.lo - 1
		hip := h.hi - 1
		h.swap(lop, hip)
		if h.c == hip {
			h.c = h.lo
			h.lo = lop
			h.hi = hip
			h.recenter()
		} else {
			h.siftIn(lop)
			h.lo = lop
			h.hi = hip
		}
	}
	h.check()
}
