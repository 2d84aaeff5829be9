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

// mergeSource tags which of the three candidate streams a mergeCandidate
// came from: the untouched left run, the c-heap root, or the untouched
// right run.
type mergeSource int

const (
	sourceNone mergeSource = iota
	sourceLo
	sourceMd
	sourceHi
)

// mergeCandidate is one of the (up to three) values merge compares at each
// output step. better prefers the first candidate on ties (Lo < Md < Hi),
// which is why Merge is not stable.
type mergeCandidate[E cmp.Ordered] struct {
	src mergeSource
	val E
}

func (m mergeCandidate[E]) better(other mergeCandidate[E], cnt Counter) mergeCandidate[E] {
	switch {
	case m.src == sourceNone && other.src == sourceNone:
		return m
	case m.src != sourceNone && other.src == sourceNone:
		return m
	case m.src == sourceNone && other.src != sourceNone:
		return other
	}
	cnt.CountCompare()
	if m.val <= other.val {
		return m
	}
	return other
}

// Merge merges two adjacent sorted runs a[lo:md] and a[md:hi] in place,
// using a small c-heap straddling the boundary at md. It is not stable:
// equal elements may be reordered between the two runs.
func Merge[E cmp.Ordered](a []E, lo, md, hi int, cnt Counter) {
	ch := &Cheap[E]{a: a, lo: md, c: md, hi: md, cnt: cnt}

	for ix := lo; ix < hi; ix++ {
		if ix >= ch.hi {
			break
		}

		best := mergeCandidate[E]{src: sourceNone}
		if ix < ch.lo {
			best = mergeCandidate[E]{src: sourceLo, val: a[ix]}
		}
		if ch.lo < ch.hi {
			best = best.better(mergeCandidate[E]{src: sourceMd, val: a[ch.c]}, cnt)
		}
		if ch.hi < hi {
			best = best.better(mergeCandidate[E]{src: sourceHi, val: a[ch.hi]}, cnt)
		}

		switch {
		case best.src == sourceNone:
			panic("cheap: merge: no candidate available")
		case best.src == sourceLo:
			// Output already in place.
		case ix < ch.lo:
			if best.src == sourceMd {
				ch.PopPush(ix)
			} else {
				ch.PushRightSwap(ix)
			}
		case ix == ch.lo:
			if best.src == sourceMd {
				ch.PopLeft()
			} else {
				ch.SlideRight()
			}
		default:
			panic("cheap: merge: ix out of expected range")
		}
	}
}
