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

package bench

import (
	"fmt"

	"github.com/ajroetker/go-mandelbrot/frame"
)

// Func renders one frame into dst. It is called warmup+measure times with
// the same scratch buffer.
type Func func(dst *frame.Buffer) error

// Harness drives a Func through warmup and measurement.
type Harness struct {
	// Width and Height size the scratch buffer.
	Width, Height int

	// Counter measures each call. Nil selects DefaultCounter.
	Counter Counter
}

// Run calls fn warmup times discarding the cost, then measure times
// recording the cost of each call, and returns exactly measure samples in
// call order.
//
// The scratch buffer is allocated once before the first call. If that fails
// Run returns an error wrapping lanes.ErrAllocation without calling fn. An
// error from fn aborts the run and no samples are returned. A run cannot be
// cancelled once started.
//
// Panics if fn is nil or either count is negative.
func (h *Harness) Run(fn Func, warmup, measure int) ([]uint64, error) {
	if fn == nil {
		panic("bench: nil func")
	}
	if warmup < 0 || measure < 0 {
		panic("bench: negative run count")
	}
	counter := h.Counter
	if counter == nil {
		counter = DefaultCounter()
	}

	dst, err := frame.NewBuffer(h.Width, h.Height)
	if err != nil {
		return nil, fmt.Errorf("bench: scratch buffer: %w", err)
	}
	samples := make([]uint64, 0, measure)

	var callErr error
	call := func() { callErr = fn(dst) }

	for i := range warmup {
		call()
		if callErr != nil {
			return nil, fmt.Errorf("bench: warmup run %d: %w", i, callErr)
		}
	}
	for i := range measure {
		d := counter.Elapsed(call)
		if callErr != nil {
			return nil, fmt.Errorf("bench: measured run %d: %w", i, callErr)
		}
		samples = append(samples, d)
	}
	return samples, nil
}
