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

package main

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iangudger/cheap/cheap"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags(nil) error: %v", err)
	}
	want := &config{op: opMerge, array: arrayShuffle, size: 40, runSize: 16}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("parseFlags(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsUnknownOp(t *testing.T) {
	if _, err := parseFlags([]string{"-op=bogus"}); err == nil {
		t.Error("expected an error for an unknown op")
	}
}

func TestParseFlagsUnknownArray(t *testing.T) {
	if _, err := parseFlags([]string{"-array=bogus"}); err == nil {
		t.Error("expected an error for an unknown array populator")
	}
}

func TestParseFlagsNegativeSize(t *testing.T) {
	if _, err := parseFlags([]string{"-size=-1"}); err == nil {
		t.Error("expected an error for a negative size")
	}
}

func TestParseFlagsZeroRunSize(t *testing.T) {
	if _, err := parseFlags([]string{"-run-size=0"}); err == nil {
		t.Error("expected an error for a zero run-size")
	}
}

func TestMakeArrayCount(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := arrayCon("count").makeArray(5, r)
	want := []int{0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("count array mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeArrayReverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := arrayCon("reverse").makeArray(5, r)
	want := []int{4, 3, 2, 1, 0}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("reverse array mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeArrayShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := arrayCon("shuffle").makeArray(20, r)
	got := append([]int(nil), a...)
	sort.Ints(got)
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shuffle array is not a permutation of 0..n (-want +got):\n%s", diff)
	}
}

func TestMakeArrayRandomInRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := arrayCon("random").makeArray(10, r)
	for _, v := range a {
		if v < 0 || v >= 10 {
			t.Errorf("random array value %d out of range [0, 10)", v)
		}
	}
}

func TestOpDoesSort(t *testing.T) {
	tests := []struct {
		op   op
		want bool
	}{
		{opMerge, true},
		{opHeapLeft, true},
		{opHeapRight, true},
		{opSort, true},
		{opRunLeft, false},
		{opRunRight, false},
	}
	for _, test := range tests {
		if got := test.op.doesSort(); got != test.want {
			t.Errorf("%s.doesSort() = %v, want %v", test.op, got, test.want)
		}
	}
}

func TestOpRunHeapLeftOnReverseInput(t *testing.T) {
	a := []int{7, 6, 5, 4, 3, 2, 1, 0}
	opHeapLeft.run(a, 16, cheap.DummyCounter{})
	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("opHeapLeft.run mismatch (-want +got):\n%s", diff)
	}
}

func TestOpRunMergeOnShuffledInput(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	a := arrayCon("shuffle").makeArray(16, r)
	cnt := &cheap.RealCounter{}
	opMerge.run(a, 16, cnt)
	if !cheap.IsSorted(a, 0, len(a)) {
		t.Errorf("opMerge.run did not sort the array: %v", a)
	}
	if cnt.Compares == 0 || cnt.Swaps == 0 {
		t.Errorf("expected positive compares/swaps, got compares=%d swaps=%d", cnt.Compares, cnt.Swaps)
	}
}

func TestOpRunMergeEmptyArray(t *testing.T) {
	var a []int
	cnt := &cheap.RealCounter{}
	opMerge.run(a, 16, cnt)
	if !cheap.IsSorted(a, 0, len(a)) {
		t.Error("empty array should trivially be sorted")
	}
	if cnt.Compares != 0 || cnt.Swaps != 0 {
		t.Errorf("expected zero compares/swaps for an empty array, got compares=%d swaps=%d", cnt.Compares, cnt.Swaps)
	}
}
