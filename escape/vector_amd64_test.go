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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The dispatcher only exercises the widest path; run each one that the CPU
// supports directly.
func TestHardwarePathsAgree(t *testing.T) {
	paths := []struct {
		name      string
		supported bool
		fn        func(x0, y0 []float64, maxIter int, counts []int32)
	}{
		{"avx2", archsimd.X86.AVX2(), pointsAVX2},
		{"avx512", archsimd.X86.AVX512(), pointsAVX512},
	}
	xs, ys := gridPoints(t, 101, 37)
	want := run(New(Scalar), xs, ys, 400)
	for _, p := range paths {
		t.Run(p.name, func(t *testing.T) {
			if !p.supported {
				t.Skipf("CPU does not support %s", p.name)
			}
			got := make([]int32, len(xs))
			p.fn(xs, ys, 400, got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-scalar +%s):\n%s", p.name, diff)
			}
		})
	}
}
