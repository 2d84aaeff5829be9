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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeBasic(t *testing.T) {
	tests := []struct {
		name   string
		a      []int
		lo, md int
		want   []int
	}{
		{"interleaved", []int{1, 3, 5, 2, 4, 6}, 0, 3, []int{1, 2, 3, 4, 5, 6}},
		{"left-exhausted-first", []int{1, 2, 10, 11, 12}, 0, 2, []int{1, 2, 10, 11, 12}},
		{"right-exhausted-first", []int{10, 11, 12, 1, 2}, 0, 3, []int{1, 2, 10, 11, 12}},
		{"empty-left", []int{1, 2, 3}, 0, 0, []int{1, 2, 3}},
		{"empty-right", []int{1, 2, 3}, 0, 3, []int{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := append([]int(nil), test.a...)
			orig := multiset(a)
			cnt := &RealCounter{}
			Merge(a, test.lo, test.md, len(a), cnt)
			if diff := cmp.Diff(test.want, a); diff != "" {
				t.Errorf("Merge result mismatch (-want +got):\n%s", diff)
			}
			if got := multiset(a); !cmp.Equal(got, orig) {
				t.Errorf("Merge changed multiset: %v vs %v", got, orig)
			}
		})
	}
}

func TestMergeRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(60)
		a := make([]int, n)
		for i := range a {
			a[i] = r.Intn(100)
		}
		md := 0
		if n > 0 {
			md = r.Intn(n + 1)
		}
		left := append([]int(nil), a[:md]...)
		right := append([]int(nil), a[md:]...)
		sort.Ints(left)
		sort.Ints(right)
		copy(a[:md], left)
		copy(a[md:], right)

		orig := multiset(a)
		want := append([]int(nil), a...)
		sort.Ints(want)

		cnt := &RealCounter{}
		Merge(a, 0, md, n, cnt)
		if !IsSorted(a, 0, n) {
			t.Fatalf("trial %d: Merge(%v, md=%d) not sorted, got %v", trial, want, md, a)
		}
		if got := multiset(a); !cmp.Equal(got, orig) {
			t.Fatalf("trial %d: Merge changed multiset: %v vs %v", trial, got, orig)
		}
	}
}

func TestMergeEmptyArray(t *testing.T) {
	var a []int
	cnt := &RealCounter{}
	Merge(a, 0, 0, 0, cnt)
	if !IsSorted(a, 0, 0) {
		t.Error("empty merge should trivially be sorted")
	}
	if cnt.Compares != 0 || cnt.Swaps != 0 {
		t.Errorf("empty merge should not compare or swap, got compares=%d swaps=%d", cnt.Compares, cnt.Swaps)
	}
}
