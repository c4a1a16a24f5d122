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
	"fmt"
	"math"
	"unsafe"
)

const (
	// VectorAlign is the natural alignment of a 256-bit vector register.
	VectorAlign = 32

	// CacheLineAlign is the alignment of one cache line and of a 512-bit
	// vector register.
	CacheLineAlign = 64
)

// ErrAllocation is returned when an aligned buffer cannot be obtained.
var ErrAllocation = errors.New("lanes: aligned allocation failed")

// Aligned returns a slice of n zeroed elements whose first element lies on
// an align-byte boundary. align must be a power of two.
//
// The slice is carved out of a larger backing array, so its capacity may
// exceed n. The backing array stays reachable as long as the slice is.
func Aligned[T Lanes](n, align int) (s []T, err error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: non-positive length %d", ErrAllocation, n)
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", ErrAllocation, align)
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if align < elemSize {
		align = elemSize
	}
	pad := align/elemSize - 1
	if n > (math.MaxInt/elemSize)-pad-1 {
		return nil, fmt.Errorf("%w: %d elements overflow", ErrAllocation, n)
	}

	defer func() {
		// makeslice panics on requests the runtime refuses outright.
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	buf := make([]T, n+pad)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	mis := int(addr & uintptr(align-1))
	offset := 0
	if mis != 0 {
		offset = (align - mis) / elemSize
	}
	return buf[offset : offset+n : len(buf)], nil
}

// AlignedFloat64 returns n zeroed float64 values on a 32-byte boundary.
func AlignedFloat64(n int) ([]float64, error) {
	return Aligned[float64](n, VectorAlign)
}

// AlignedInt32 returns n zeroed int32 values on a 32-byte boundary.
func AlignedInt32(n int) ([]int32, error) {
	return Aligned[int32](n, VectorAlign)
}

// AlignedUint32 returns n zeroed uint32 values on a 64-byte boundary.
// Pixel rows use cache-line alignment so every row of a padded frame starts
// on a fresh line.
func AlignedUint32(n int) ([]uint32, error) {
	return Aligned[uint32](n, CacheLineAlign)
}

// IsAligned reports whether the first element of s lies on an align-byte
// boundary. An empty slice is never aligned.
func IsAligned[T Lanes](s []T, align int) bool {
	if len(s) == 0 || align <= 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&s[0]))&uintptr(align-1) == 0
}

// AlignUp rounds n up to the next multiple of m. m must be positive.
func AlignUp(n, m int) int {
	return (n + m - 1) / m * m
}
