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

// The vector code path. z_vector_amd64.go replaces these in init when
// hardware lanes are compiled in and supported by the CPU.
var (
	vectorPoints = pointsFloat64x4
	vectorPath   = "simd/portable"
	vectorWidth  = lanes.Float64x4Lanes
)

type vectorKernel struct{}

func (vectorKernel) Variant() Variant { return Vector }
func (vectorKernel) Name() string     { return vectorPath }
func (vectorKernel) Lanes() int       { return vectorWidth }

func (vectorKernel) Points(x0, y0 []float64, maxIter int, counts []int32) {
	checkLengths(x0, y0, counts)
	vectorPoints(x0, y0, maxIter, counts)
}

// VectorPath names the code path the Vector kernel runs on this machine.
func VectorPath() string {
	return vectorPath
}

func pointsFloat64x4(x0s, y0s []float64, maxIter int, counts []int32) {
	var xb, yb [lanes.Float64x4Lanes]float64
	var cb [lanes.Float64x4Lanes]int64
	lanes.ProcessWithTail(len(x0s), lanes.Float64x4Lanes,
		func(off int) {
			x0 := lanes.LoadFloat64x4(x0s[off:])
			y0 := lanes.LoadFloat64x4(y0s[off:])
			escapeFloat64x4(x0, y0, lanes.FirstN(4), maxIter).Store(cb[:])
			for l, c := range cb {
				counts[off+l] = int32(c)
			}
		},
		func(off, n int) {
			padTail(xb[:], yb[:], x0s[off:off+n], y0s[off:off+n])
			x0 := lanes.LoadFloat64x4(xb[:])
			y0 := lanes.LoadFloat64x4(yb[:])
			escapeFloat64x4(x0, y0, lanes.FirstN(n), maxIter).Store(cb[:])
			for l := range n {
				counts[off+l] = int32(cb[l])
			}
		},
	)
}

func escapeFloat64x4(x0, y0 lanes.Float64x4, active lanes.Mask4, maxIter int) lanes.Int64x4 {
	four := lanes.BroadcastFloat64x4(4)
	var x2, y2, w lanes.Float64x4
	var n lanes.Int64x4
	for range maxIter {
		active = active.And(x2.Add(y2).LessEqual(four))
		if active.None() {
			break
		}
		x := x2.Sub(y2).Add(x0)
		y := w.Sub(x2).Sub(y2).Add(y0)
		x2 = x.Mul(x)
		y2 = y.Mul(y)
		s := x.Add(y)
		w = s.Mul(s)
		n = n.Sub(active.ToInt64x4())
	}
	return n
}

// padTail copies a partial run of coordinates into full-width lane buffers
// and fills the rest with a point that escapes at once.
func padTail(xb, yb, x0, y0 []float64) {
	n := copy(xb, x0)
	copy(yb, y0)
	for l := n; l < len(xb); l++ {
		xb[l], yb[l] = escapedX0, escapedY0
	}
}
