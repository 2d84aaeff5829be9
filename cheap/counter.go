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

// Counter is the interface c-heap operations use to record compares and
// swaps. Implementations must be cheap to call: every betterThan and every
// swap on the hot path goes through one.
type Counter interface {
	CountCompare()
	CountSwap()

	// Stats returns the accumulated counts as a key-value map, using the
	// keys "compares" and "swaps". Dummy implementations return nil.
	Stats() map[string]uint64
}

// DummyCounter is a Counter whose operations are all no-ops. Use it when
// instrumentation overhead isn't wanted.
type DummyCounter struct{}

func (DummyCounter) CountCompare()            {}
func (DummyCounter) CountSwap()               {}
func (DummyCounter) Stats() map[string]uint64 { return nil }

// RealCounter is a Counter that accumulates compares and swaps.
type RealCounter struct {
	Compares uint64
	Swaps    uint64
}

func (c *RealCounter) CountCompare() { c.Compares++ }
func (c *RealCounter) CountSwap()    { c.Swaps++ }

func (c *RealCounter) Stats() map[string]uint64 {
	return map[string]uint64{
		"compares": c.Compares,
		"swaps":    c.Swaps,
	}
}
