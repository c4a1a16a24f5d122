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

// Package escape computes Mandelbrot escape-time iteration counts.
//
// Three strategies implement the same contract and return identical counts
// for identical input:
//
//   - Scalar: one point at a time.
//   - Batched: 16 points per step in structure-of-arrays buffers with a
//     per-lane active mask, in portable Go.
//   - Vector: the batched algorithm on vector lanes. Builds with
//     GOEXPERIMENT=simd on amd64 use AVX2 (4 lanes) or AVX-512 (8 lanes)
//     when the CPU supports them; every other build runs the portable
//     4-lane vectors from package lanes.
//
// All strategies iterate
//
//	x  = X2 - Y2 + x0
//	y  = W - X2 - Y2 + y0
//	X2 = x*x, Y2 = y*y, W = (x+y)*(x+y)
//
// from x = y = 0 while X2+Y2 <= 4 and fewer than maxIter steps have run.
// Every product is rounded before it is added, so no architecture may fuse
// it into a multiply-add and the strategies stay bit-identical. A lane that
// has escaped never becomes active again, even if a later value of its
// orbit falls back inside the bound.
//
// Example:
//
//	k := escape.Default()
//	k.Points(xs, ys, 500, counts)
package escape
