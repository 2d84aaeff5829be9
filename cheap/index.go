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

import "math"

// noIndex is the out-of-range sentinel. leftChild and rightChild return it
// instead of an optional value; callers range-check against lo/hi, and any
// comparison against a valid index treats noIndex as "always out of range"
// because it exceeds any real hi.
const noIndex = math.MaxInt

// leftChild returns the left child of node x in a c-heap centered at c, or
// noIndex if x has no left child (c == 0 at the root, or the offset would
// underflow on the near side of c).
func leftChild(x, c int) int {
	switch {
	case x == c:
		if c == 0 {
			return noIndex
		}
		return c - 1
	case x > c:
		return c + 2*(x-c)
	default:
		o := 2 * (c - x)
		if o > c {
			return noIndex
		}
		return c - o
	}
}

// rightChild returns the right child of node x in a c-heap centered at c, or
// noIndex if the offset would underflow on the near side of c.
func rightChild(x, c int) int {
	switch {
	case x == c:
		return c + 1
	case x > c:
		return c + 2*(x-c) + 1
	default:
		o := 2*(c-x) + 1
		if o > c {
			return noIndex
		}
		return c - o
	}
}

// parent returns the parent of node x in a c-heap centered at c. Undefined
// (and never called) at x == c.
func parent(x, c int) int {
	if x > c {
		return c + (x-c)/2
	}
	return c - (c-x)/2
}

// recenterLimit returns the index nearest c whose subtree may still violate
// the heap invariant after a bulk rebuild anchored between x and c.
func recenterLimit(x, c int) int {
	if x > c {
		return c + (x-c+1)/2
	}
	return c - (c-x+1)/2
}
