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

package cheap

import "cmp"

// insertionSortThreshold is the size at or below which MergeSort falls
// back to a straight insertion sort instead of recursing further. Any
// value >= 2 is correct; this is a tuning choice, not a correctness
// requirement.
const insertionSortThreshold = 4

// insertionSort sorts a[lo:hi] in place via straight insertion, counting
// every comparison and swap.
func insertionSort[E cmp.Ordered](a []E, lo, hi int, cnt Counter) {
	for i := lo + 1; i < hi; i++ {
		j := i
		for j > lo {
			cnt.CountCompare()
			if !(a[j] < a[j-1]) {
				break
			}
			a[j-1], a[j] = a[j], a[j-1]
			cnt.CountSwap()
			j--
		}
	}
}

// IsSorted reports whether a[lo:hi] is non-decreasing.
func IsSorted[E cmp.Ordered](a []E, lo, hi int) bool {
	for i := lo + 1; i < hi; i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

// MergeSort sorts a[lo:hi] in place, recursively splitting at the midpoint
// and merging with Merge. Runs of size <= insertionSortThreshold are sorted
// directly by insertionSort.
func MergeSort[E cmp.Ordered](a []E, lo, hi int, cnt Counter) {
	if hi-lo <= insertionSortThreshold {
		insertionSort(a, lo, hi, cnt)
		return
	}
	md := (lo + hi) / 2
	MergeSort(a, lo, md, cnt)
	MergeSort(a, md, hi, cnt)
	Merge(a, lo, md, hi, cnt)
}

// HeapSortLeft sorts a in place, ascending, by building a c-heap rooted at
// the right end and repeatedly popping the minimum off the left.
func HeapSortLeft[E cmp.Ordered](a []E, cnt Counter) {
	h := NewSpanRight(a, cnt)
	h.recenter()
	for !h.IsEmpty() {
		h.PopLeft()
	}
}

// HeapSortRight sorts a in place, ascending, by building a c-heap rooted at
// the left end, repeatedly popping the minimum off the right (which yields
// a descending array), then reversing.
func HeapSortRight[E cmp.Ordered](a []E, cnt Counter) {
	h := NewSpanLeft(a, cnt)
	h.recenter()
	for !h.IsEmpty() {
		h.PopRight()
	}
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// RunningSortLeft maintains a sliding c-heap window of up to run elements,
// growing it from the right and draining it from the left once the window
// reaches run elements (or the array is exhausted). Each emitted element is
// the minimum of a window of up to run unconsumed elements.
func RunningSortLeft[E cmp.Ordered](a []E, run int, cnt Counter) {
	n := len(a)
	if n == 0 {
		return
	}
	h := NewEmptyLeft(a, cnt)
	for h.lo < n {
		if h.hi < n {
			h.PushRight()
		}
		if h.hi-h.lo >= run || h.hi == n {
			h.PopLeft()
		}
	}
}

// RunningSortRight is the mirror image of RunningSortLeft: it grows the
// window from the left and drains it from the right.
func RunningSortRight[E cmp.Ordered](a []E, run int, cnt Counter) {
	n := len(a)
	if n == 0 {
		return
	}
	h := NewEmptyRight(a, cnt)
	for h.hi > 0 {
		if h.lo > 0 {
			h.PushLeft()
		}
		if h.hi-h.lo >= run || h.lo == 0 {
			h.PopRight()
		}
	}
}
