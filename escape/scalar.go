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

// EscapeTime returns the number of iterations before the orbit of (x0, y0)
// leaves the radius-2 disc, or maxIter if it never does.
func EscapeTime(x0, y0 float64, maxIter int) int {
	var x, y, x2, y2, w float64
	n := 0
	for n < maxIter && x2+y2 <= 4 {
		x = x2 - y2 + x0
		y = w - x2 - y2 + y0
		x2 = float64(x * x)
		y2 = float64(y * y)
		s := x + y
		w = float64(s * s)
		n++
	}
	return n
}

type scalarKernel struct{}

func (scalarKernel) Variant() Variant { return Scalar }
func (scalarKernel) Name() string     { return "scalar" }
func (scalarKernel) Lanes() int       { return 1 }

func (scalarKernel) Points(x0, y0 []float64, maxIter int, counts []int32) {
	checkLengths(x0, y0, counts)
	for i := range x0 {
		counts[i] = int32(EscapeTime(x0[i], y0[i], maxIter))
	}
}
