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

import (
	"math"
	"testing"
)

func TestFloat64x4Arithmetic(t *testing.T) {
	a := LoadFloat64x4([]float64{1, 2, 3, 4})
	b := BroadcastFloat64x4(0.5)

	tests := []struct {
		name string
		got  Float64x4
		want Float64x4
	}{
		{"add", a.Add(b), Float64x4{1.5, 2.5, 3.5, 4.5}},
		{"sub", a.Sub(b), Float64x4{0.5, 1.5, 2.5, 3.5}},
		{"mul", a.Mul(b), Float64x4{0.5, 1, 1.5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFloat64x4MatchesScalar(t *testing.T) {
	xs := []float64{0.1, -1.7, 1e-300, 3.3333333333}
	ys := []float64{0.7, 2.9, 1e-10, -0.0000001}
	x := LoadFloat64x4(xs)
	y := LoadFloat64x4(ys)
	s := x.Add(y)
	got := s.Mul(s).Sub(x.Mul(x)).Sub(y.Mul(y))

	for i := range 4 {
		sum := xs[i] + ys[i]
		want := float64(sum*sum) - float64(xs[i]*xs[i]) - float64(ys[i]*ys[i])
		if got[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestLessEqual(t *testing.T) {
	v := Float64x4{3.9, 4, 4.1, math.NaN()}
	m := v.LessEqual(BroadcastFloat64x4(4))

	if want := Mask4(0b0011); m != want {
		t.Errorf("LessEqual = %04b, want %04b", m, want)
	}
}

func TestMask4(t *testing.T) {
	tests := []struct {
		name string
		mask Mask4
		none bool
		neg  Int64x4
	}{
		{"none", 0, true, Int64x4{0, 0, 0, 0}},
		{"all", 0xF, false, Int64x4{-1, -1, -1, -1}},
		{"alternate", 0b0101, false, Int64x4{-1, 0, -1, 0}},
		{"high", 0b1000, false, Int64x4{0, 0, 0, -1}},
		{"ignores upper bits", 0xF0, true, Int64x4{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.None(); got != tt.none {
				t.Errorf("None() = %v, want %v", got, tt.none)
			}
			if got := tt.mask.ToInt64x4(); got != tt.neg {
				t.Errorf("ToInt64x4() = %v, want %v", got, tt.neg)
			}
			if got := tt.mask.And(0b0011); got != tt.mask&0b0011 {
				t.Errorf("And(0011) = %04b, want %04b", got, tt.mask&0b0011)
			}
		})
	}
}

func TestMaskIsSticky(t *testing.T) {
	active := FirstN(4)
	steps := []Float64x4{
		{1, 5, 1, 1},
		{1, 1, 5, 1}, // lane 1 is back under the bound but stays inactive
		{1, 1, 1, 1},
	}
	var counters Int64x4
	for _, r := range steps {
		active = active.And(r.LessEqual(BroadcastFloat64x4(4)))
		counters = counters.Sub(active.ToInt64x4())
	}
	want := Int64x4{3, 0, 1, 3}
	if counters != want {
		t.Errorf("counters = %v, want %v", counters, want)
	}
}

func TestToInt64x4(t *testing.T) {
	for bits := range 16 {
		got := Int64x4{5, 5, 5, 5}.Sub(Mask4(bits).ToInt64x4())
		for l := range 4 {
			want := int64(5)
			if bits&(1<<l) != 0 {
				want = 6
			}
			if got[l] != want {
				t.Errorf("mask %04b lane %d: 5 - ToInt64x4() = %d, want %d", bits, l, got[l], want)
			}
		}
	}
}

func TestFirstN(t *testing.T) {
	for n, want := range map[int]Mask4{-1: 0, 0: 0, 1: 1, 2: 3, 3: 7, 4: 0xF, 9: 0xF} {
		if got := FirstN(n); got != want {
			t.Errorf("FirstN(%d) = %04b, want %04b", n, got, want)
		}
	}
}

func TestInt64x4(t *testing.T) {
	c := Int64x4{10, 10, 10, 10}.Sub(Int64x4{-1, 0, -1, 0})
	dst := make([]int64, 4)
	c.Store(dst)
	want := []int64{11, 10, 11, 10}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestLoadPanicsOnShortSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for 3-element load")
		}
	}()
	LoadFloat64x4([]float64{1, 2, 3})
}
