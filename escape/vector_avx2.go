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

//go:build amd64 && goexperiment.simd

package escape

import (
	"simd/archsimd"

	"github.com/ajroetker/go-mandelbrot/lanes"
)

// negMaskAVX2[bits] holds -1 in every lane whose bit is set, the integer
// form of a compare result. Indexed by Mask64x4.ToBits().
var negMaskAVX2 [16]archsimd.Int64x4

func init() {
	var row [4]int64
	for bits := range negMaskAVX2 {
		for l := range row {
			row[l] = -int64(bits >> l & 1)
		}
		negMaskAVX2[bits] = archsimd.LoadInt64x4Slice(row[:])
	}
}

func pointsAVX2(x0s, y0s []float64, maxIter int, counts []int32) {
	var xb, yb [4]float64
	var cb [4]int64
	lanes.ProcessWithTail(len(x0s), 4,
		func(off int) {
			x0 := archsimd.LoadFloat64x4Slice(x0s[off:])
			y0 := archsimd.LoadFloat64x4Slice(y0s[off:])
			escapeAVX2(x0, y0, 0xF, maxIter).StoreSlice(cb[:])
			for l, c := range cb {
				counts[off+l] = int32(c)
			}
		},
		func(off, n int) {
			padTail(xb[:], yb[:], x0s[off:off+n], y0s[off:off+n])
			x0 := archsimd.LoadFloat64x4Slice(xb[:])
			y0 := archsimd.LoadFloat64x4Slice(yb[:])
			escapeAVX2(x0, y0, uint8(1)<<n-1, maxIter).StoreSlice(cb[:])
			for l := range n {
				counts[off+l] = int32(cb[l])
			}
		},
	)
}

func escapeAVX2(x0, y0 archsimd.Float64x4, active uint8, maxIter int) archsimd.Int64x4 {
	four := archsimd.BroadcastFloat64x4(4)
	x2 := archsimd.BroadcastFloat64x4(0)
	y2, w := x2, x2
	n := archsimd.BroadcastInt64x4(0)
	for range maxIter {
		active &= uint8(x2.Add(y2).LessEqual(four).ToBits())
		if active == 0 {
			break
		}
		x := x2.Sub(y2).Add(x0)
		y := w.Sub(x2).Sub(y2).Add(y0)
		x2 = x.Mul(x)
		y2 = y.Mul(y)
		s := x.Add(y)
		w = s.Mul(s)
		n = n.Sub(negMaskAVX2[active])
	}
	return n
}
