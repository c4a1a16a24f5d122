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

package lanes

// Float64x4 is a portable vector of four float64 lanes.
//
// Each operation rounds exactly like the scalar Go expression it replaces.
// Mul returns a rounded product, so a following Add is never fused into an
// FMA instruction.
type Float64x4 [4]float64

// Int64x4 is a portable vector of four int64 lanes.
type Int64x4 [4]int64

// Mask4 holds one bit per lane of a four-lane vector. Bit i is lane i.
type Mask4 uint8

// Float64x4Lanes is the lane count of Float64x4.
const Float64x4Lanes = 4

// BroadcastFloat64x4 returns a vector with every lane set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return Float64x4{v, v, v, v}
}

// LoadFloat64x4 loads the first four elements of src.
// Panics if len(src) < 4.
func LoadFloat64x4(src []float64) Float64x4 {
	_ = src[3]
	return Float64x4{src[0], src[1], src[2], src[3]}
}

// Store writes all four lanes to dst.
// Panics if len(dst) < 4.
func (v Float64x4) Store(dst []float64) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Add returns v + o lane-wise.
func (v Float64x4) Add(o Float64x4) Float64x4 {
	return Float64x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o lane-wise.
func (v Float64x4) Sub(o Float64x4) Float64x4 {
	return Float64x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Mul returns v * o lane-wise, rounded to float64.
func (v Float64x4) Mul(o Float64x4) Float64x4 {
	return Float64x4{
		float64(v[0] * o[0]),
		float64(v[1] * o[1]),
		float64(v[2] * o[2]),
		float64(v[3] * o[3]),
	}
}

// LessEqual returns the mask of lanes where v <= o.
// NaN lanes compare false.
func (v Float64x4) LessEqual(o Float64x4) Mask4 {
	var m Mask4
	for i := range 4 {
		if v[i] <= o[i] {
			m |= 1 << i
		}
	}
	return m
}

// Sub returns v - o lane-wise.
func (v Int64x4) Sub(o Int64x4) Int64x4 {
	return Int64x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Store writes all four lanes to dst.
// Panics if len(dst) < 4.
func (v Int64x4) Store(dst []int64) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// And returns the lanes active in both m and o.
func (m Mask4) And(o Mask4) Mask4 {
	return m & o & 0xF
}

// None reports whether no lane is active.
func (m Mask4) None() bool {
	return m&0xF == 0
}

// ToInt64x4 returns -1 in every active lane and 0 elsewhere, the integer
// form of a vector compare result. Subtracting it from a counter vector
// increments exactly the active lanes.
func (m Mask4) ToInt64x4() Int64x4 {
	return negMask4[m&0xF]
}

var negMask4 = func() (t [16]Int64x4) {
	for bits := range t {
		for l := range 4 {
			t[bits][l] = -int64(bits >> l & 1)
		}
	}
	return t
}()

// FirstN returns a mask with the first n lanes active.
// n is clamped to [0, 4].
func FirstN(n int) Mask4 {
	n = max(0, min(n, 4))
	return Mask4(1<<n - 1)
}
