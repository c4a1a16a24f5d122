// Copyright 2025 go-highway Authors
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

// Package bench measures frame renders by raw cycle counts.
//
// A Harness runs a render function through a warmup phase whose timings are
// discarded, then a measured phase that records the cost of every single
// call. Samples are written verbatim to a plain-text artifact: a title line
// followed by one decimal count per line, in measurement order. No
// aggregation is ever applied.
package bench

import "time"

// Counter measures the cost of one call.
type Counter interface {
	// Name describes the unit, e.g. "tsc" or "monotonic-ns".
	Name() string

	// Elapsed runs fn once and returns its cost in counter units.
	Elapsed(fn func()) uint64
}

// DefaultCounter returns the timestamp counter where one is available and
// the monotonic clock elsewhere.
func DefaultCounter() Counter {
	if hasTSC {
		return TSC{}
	}
	return Monotonic{}
}

// CounterName reports the kind of DefaultCounter on this machine.
func CounterName() string {
	return DefaultCounter().Name()
}

// TSC reads the processor timestamp counter behind a serializing fence
// before and after the call. Only usable where hasTSC is true.
type TSC struct{}

// Name implements Counter.
func (TSC) Name() string { return "tsc" }

// Elapsed implements Counter.
func (TSC) Elapsed(fn func()) uint64 {
	start := readTSC()
	fn()
	return readTSC() - start
}

// Monotonic measures nanoseconds on the runtime's monotonic clock.
type Monotonic struct{}

// Name implements Counter.
func (Monotonic) Name() string { return "monotonic-ns" }

// Elapsed implements Counter.
func (Monotonic) Elapsed(fn func()) uint64 {
	start := time.Now()
	fn()
	return uint64(time.Since(start))
}
