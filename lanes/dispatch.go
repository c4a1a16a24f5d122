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
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates no hardware vectors, portable Go only.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit, 4 float64 lanes).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit, 8 float64 lanes).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar names the environment variable that disables hardware paths.
const NoSimdEnvVar = "MANDELBROT_NO_SIMD"

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// features lists the CPU features reported by golang.org/x/sys/cpu,
// independent of whether this binary can use them.
var features []string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// Float64Lanes returns how many float64 values fit in one register at the
// current level. Scalar mode reports the portable vector width.
func Float64Lanes() int {
	return currentWidth / 8
}

// CPUFeatures returns the vector-related CPU features detected at startup.
// The list is informational: a feature may be present while the binary was
// built without the code that uses it.
func CPUFeatures() []string {
	return append([]string(nil), features...)
}

// NoSimdEnv checks if the MANDELBROT_NO_SIMD environment variable is set.
// When set, the portable path is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 32 // the portable vector is 4 x float64
}
