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

// Package lanes provides the data-parallel building blocks shared by the
// escape-time kernels: runtime SIMD level detection, SIMD-aligned buffers,
// a portable fixed-width float64 vector with lane masks, and a wrapped-index
// gather used for palette lookups.
//
// The portable vector types mirror the method style of simd/archsimd so the
// portable and hardware kernels read the same way:
//
//	x := lanes.LoadFloat64x4(xs)
//	r := x.Mul(x).Add(y.Mul(y))
//	m := r.LessEqual(lanes.BroadcastFloat64x4(4))
//	if m.None() {
//	    return
//	}
//
// Hardware paths are only compiled with GOEXPERIMENT=simd on amd64; every
// other build runs the portable code. Setting MANDELBROT_NO_SIMD forces the
// portable code even when hardware support is detected.
package lanes

// Lanes is a constraint for the element types the package allocates and
// gathers.
type Lanes interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint32 | ~uint64
}
