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

// Command cheap benchmarks the centered-heap algorithms: an in-place
// merge, two heap sorts, and two windowed running sorts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/iangudger/cheap/cheap"
)

// op identifies which centered-heap algorithm to exercise.
type op string

const (
	opMerge     op = "merge"
	opHeapLeft  op = "heap_left"
	opHeapRight op = "heap_right"
	opRunLeft   op = "run_left"
	opRunRight  op = "run_right"
	opSort      op = "sort"
)

var allOps = []op{opMerge, opHeapLeft, opHeapRight, opRunLeft, opRunRight, opSort}

func (o op) doesSort() bool {
	switch o {
	case opSort, opMerge, opHeapLeft, opHeapRight:
		return true
	default:
		return false
	}
}

func (o op) run(a []int, runSize int, cnt cheap.Counter) {
	switch o {
	case opMerge:
		cheap.MergeSort(a, 0, len(a), cnt)
	case opHeapLeft:
		cheap.HeapSortLeft(a, cnt)
	case opHeapRight:
		cheap.HeapSortRight(a, cnt)
	case opRunLeft:
		cheap.RunningSortLeft(a, runSize, cnt)
	case opRunRight:
		cheap.RunningSortRight(a, runSize, cnt)
	case opSort:
		sortInts(a)
	}
}

// arrayCon identifies how to populate the test array.
type arrayCon string

const (
	arrayShuffle arrayCon = "shuffle"
	arrayRandom  arrayCon = "random"
	arrayCount   arrayCon = "count"
	arrayReverse arrayCon = "reverse"
)

var allArrayCons = []arrayCon{arrayShuffle, arrayRandom, arrayCount, arrayReverse}

// makeArray constructs a test array of n elements per the populator.
func (ac arrayCon) makeArray(n int, r *rand.Rand) []int {
	a := make([]int, n)
	switch ac {
	case arrayShuffle, arrayCount, arrayReverse:
		for i := range a {
			a[i] = i
		}
	case arrayRandom:
		for i := range a {
			a[i] = r.Intn(n)
		}
	}
	switch ac {
	case arrayShuffle:
		r.Shuffle(n, func(i, j int) { a[i], a[j] = a[j], a[i] })
	case arrayReverse:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			a[i], a[j] = a[j], a[i]
		}
	}
	return a
}

func parseOp(s string) (op, bool) {
	for _, o := range allOps {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

func parseArrayCon(s string) (arrayCon, bool) {
	for _, ac := range allArrayCons {
		if string(ac) == s {
			return ac, true
		}
	}
	return "", false
}

type config struct {
	op        op
	array     arrayCon
	size      int
	runSize   int
	countStat bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("cheap", flag.ContinueOnError)
	opFlag := fs.String("op", string(opMerge), "which driver to exercise: merge, heap_left, heap_right, run_left, run_right, sort")
	arrayFlag := fs.String("array", string(arrayShuffle), "how to populate the test array: shuffle, random, count, reverse")
	sizeFlag := fs.Int("size", 40, "array length")
	runSizeFlag := fs.Int("run-size", 16, "window size for running sorts")
	countFlag := fs.Bool("count-stats", false, "enable the compare/swap counter")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o, ok := parseOp(*opFlag)
	if !ok {
		return nil, fmt.Errorf("unknown op %q", *opFlag)
	}
	ac, ok := parseArrayCon(*arrayFlag)
	if !ok {
		return nil, fmt.Errorf("unknown array %q", *arrayFlag)
	}
	if *sizeFlag < 0 {
		return nil, fmt.Errorf("size must be >= 0, got %d", *sizeFlag)
	}
	if *runSizeFlag < 1 {
		return nil, fmt.Errorf("run-size must be >= 1, got %d", *runSizeFlag)
	}

	return &config{
		op:        o,
		array:     ac,
		size:      *sizeFlag,
		runSize:   *runSizeFlag,
		countStat: *countFlag,
	}, nil
}

// sortInts is the "sort" op's baseline, for comparing the c-heap-based
// drivers against the standard library's sort.
func sortInts(a []int) {
	sort.Ints(a)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cheap: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Error("usage error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Invalid usage:", err)
		fmt.Fprintln(os.Stderr, "Try cheap --help.")
		os.Exit(1)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	a := cfg.array.makeArray(cfg.size, r)

	report := map[string]any{
		"op":        string(cfg.op),
		"array":     string(cfg.array),
		"num_elems": cfg.size,
	}

	start := time.Now()
	if cfg.countStat {
		cnt := &cheap.RealCounter{}
		cfg.op.run(a, cfg.runSize, cnt)
		for k, v := range cnt.Stats() {
			report[k] = v
		}
	} else {
		cfg.op.run(a, cfg.runSize, cheap.DummyCounter{})
	}
	report["elapsed"] = time.Since(start).Seconds()

	if cfg.op.doesSort() {
		report["is_sorted"] = cheap.IsSorted(a, 0, len(a))
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(report); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Something went wrong unexpectedly:", err)
		os.Exit(1)
	}
}
