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

package escape

import "github.com/ajroetker/go-mandelbrot/lanes"

// BatchLanes is the number of points the batched kernel advances together.
const BatchLanes = 16

// batch is the structure-of-arrays state of BatchLanes orbits.
type batch struct {
	x0, y0     [BatchLanes]float64
	x2, y2, w  [BatchLanes]float64
	iterations [BatchLanes]int32
	active     [BatchLanes]bool
}

// run iterates the first count lanes. Lanes past count start inactive and
// keep a zero counter.
func (b *batch) run(count, maxIter int) {
	for l := range BatchLanes {
		b.x2[l], b.y2[l], b.w[l] = 0, 0, 0
		b.iterations[l] = 0
		b.active[l] = l < count
	}

	for range maxIter {
		// Lane activity is sticky: once a lane fails the bound it stays off.
		live := false
		for l := range BatchLanes {
			b.active[l] = b.active[l] && b.x2[l]+b.y2[l] <= 4
			live = live || b.active[l]
		}
		if !live {
			return
		}

		for l := range BatchLanes {
			x := b.x2[l] - b.y2[l] + b.x0[l]
			y := b.w[l] - b.x2[l] - b.y2[l] + b.y0[l]
			b.x2[l] = float64(x * x)
			b.y2[l] = float64(y * y)
			s := x + y
			b.w[l] = float64(s * s)
		}

		for l := range BatchLanes {
			if b.active[l] {
				b.iterations[l]++
			}
		}
	}
}

type batchedKernel struct{}

func (batchedKernel) Variant() Variant { return Batched }
func (batchedKernel) Name() string     { return "batched" }
func (batchedKernel) Lanes() int       { return BatchLanes }

func (batchedKernel) Points(x0, y0 []float64, maxIter int, counts []int32) {
	checkLengths(x0, y0, counts)
	var b batch
	lanes.ProcessWithTail(len(x0), BatchLanes,
		func(off int) {
			copy(b.x0[:], x0[off:off+BatchLanes])
			copy(b.y0[:], y0[off:off+BatchLanes])
			b.run(BatchLanes, maxIter)
			copy(counts[off:off+BatchLanes], b.iterations[:])
		},
		func(off, n int) {
			padTail(b.x0[:], b.y0[:], x0[off:off+n], y0[off:off+n])
			b.run(n, maxIter)
			copy(counts[off:off+n], b.iterations[:n])
		},
	)
}

// Padding coordinates for partial batches. The point lies outside the
// radius-2 disc, so even an active padding lane escapes after one step.
const (
	escapedX0 = 4.0
	escapedY0 = 4.0
)
