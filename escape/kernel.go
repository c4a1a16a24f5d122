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

import (
	"fmt"
	"strings"
)

// Variant selects a kernel strategy.
type Variant int

const (
	// Scalar iterates one point at a time.
	Scalar Variant = iota

	// Batched iterates 16 points per step in portable arrays.
	Batched

	// Vector iterates on hardware or portable vector lanes.
	Vector
)

// DefaultVariant is the fastest strategy on every target.
const DefaultVariant = Vector

// String returns the command-line name of the variant.
func (v Variant) String() string {
	switch v {
	case Scalar:
		return "scalar"
	case Batched:
		return "batched"
	case Vector:
		return "simd"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Variants returns every strategy in increasing order of parallelism.
func Variants() []Variant {
	return []Variant{Scalar, Batched, Vector}
}

// ParseVariant maps a command-line name to a variant. "vector" is accepted
// as an alias of "simd".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, nil
	case "batched", "array":
		return Batched, nil
	case "simd", "vector", "intrinsics":
		return Vector, nil
	default:
		return 0, fmt.Errorf("escape: unknown variant %q (want scalar, batched or simd)", s)
	}
}

// Kernel computes escape-time counts for a run of plane coordinates.
type Kernel interface {
	// Variant returns the strategy the kernel implements.
	Variant() Variant

	// Name describes the code path, e.g. "simd/avx2".
	Name() string

	// Lanes returns how many points one inner step advances together.
	Lanes() int

	// Points writes the escape-time count of (x0[i], y0[i]) to counts[i].
	// Each count is in [0, maxIter]. Panics if the slices differ in length.
	Points(x0, y0 []float64, maxIter int, counts []int32)
}

// New returns the kernel for v. Panics on an unknown variant.
func New(v Variant) Kernel {
	switch v {
	case Scalar:
		return scalarKernel{}
	case Batched:
		return batchedKernel{}
	case Vector:
		return vectorKernel{}
	default:
		panic(fmt.Sprintf("escape: unknown variant %d", int(v)))
	}
}

// Default returns the kernel for DefaultVariant.
func Default() Kernel {
	return New(DefaultVariant)
}

func checkLengths(x0, y0 []float64, counts []int32) {
	if len(x0) != len(y0) || len(x0) != len(counts) {
		panic(fmt.Sprintf("escape: mismatched lengths x0=%d y0=%d counts=%d", len(x0), len(y0), len(counts)))
	}
}
