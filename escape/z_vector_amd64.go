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

// NOTE: This file is named "z_vector_amd64.go" (starting with 'z')
// so its init() runs after the mask tables in vector_avx*.go are built.

package escape

import "github.com/ajroetker/go-mandelbrot/lanes"

func init() {
	switch lanes.CurrentLevel() {
	case lanes.DispatchAVX512:
		vectorPoints = pointsAVX512
		vectorPath = "simd/avx512"
		vectorWidth = 8
	case lanes.DispatchAVX2:
		vectorPoints = pointsAVX2
		vectorPath = "simd/avx2"
		vectorWidth = 4
	}
}
