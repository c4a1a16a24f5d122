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
	"errors"
	"math"
	"testing"
)

func TestAligned(t *testing.T) {
	for _, n := range []int{1, 3, 16, 1000, 4097} {
		f, err := AlignedFloat64(n)
		if err != nil {
			t.Fatalf("AlignedFloat64(%d): %v", n, err)
		}
		if len(f) != n || !IsAligned(f, VectorAlign) {
			t.Errorf("AlignedFloat64(%d): len=%d aligned=%v", n, len(f), IsAligned(f, VectorAlign))
		}

		i, err := AlignedInt32(n)
		if err != nil {
			t.Fatalf("AlignedInt32(%d): %v", n, err)
		}
		if len(i) != n || !IsAligned(i, VectorAlign) {
			t.Errorf("AlignedInt32(%d): len=%d aligned=%v", n, len(i), IsAligned(i, VectorAlign))
		}

		u, err := AlignedUint32(n)
		if err != nil {
			t.Fatalf("AlignedUint32(%d): %v", n, err)
		}
		if len(u) != n || !IsAligned(u, CacheLineAlign) {
			t.Errorf("AlignedUint32(%d): len=%d aligned=%v", n, len(u), IsAligned(u, CacheLineAlign))
		}
		for j, v := range u {
			if v != 0 {
				t.Fatalf("AlignedUint32(%d)[%d] = %d, want zero", n, j, v)
			}
		}
	}
}

func TestAlignedErrors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		align int
	}{
		{"zero length", 0, 32},
		{"negative length", -4, 32},
		{"alignment not power of two", 8, 24},
		{"zero alignment", 8, 0},
		{"overflow", math.MaxInt / 2, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Aligned[uint32](tt.n, tt.align)
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("err = %v, want ErrAllocation", err)
			}
			if s != nil {
				t.Errorf("got non-nil slice of len %d", len(s))
			}
		})
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct{ n, m, want int }{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{1000, 64, 1024},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.n, tt.m); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}
