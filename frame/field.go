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

package frame

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-mandelbrot/lanes"
)

// Field is a row-major grid of escape-time counts, one per pixel, with a
// 32-byte aligned backing array.
type Field struct {
	counts []int32
	width  int
	height int
}

// NewField allocates a zeroed width x height field.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 || height > math.MaxInt/4/width {
		return nil, fmt.Errorf("frame: field size %dx%d: %w", width, height, lanes.ErrAllocation)
	}
	counts, err := lanes.AlignedInt32(width * height)
	if err != nil {
		return nil, fmt.Errorf("frame: field size %dx%d: %w", width, height, err)
	}
	return &Field{counts: counts, width: width, height: height}, nil
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Counts returns the whole grid.
func (f *Field) Counts() []int32 { return f.counts }

// Row returns the counts of row y.
func (f *Field) Row(y int) []int32 {
	start := y * f.width
	return f.counts[start : start+f.width : start+f.width]
}

// At returns the count at (x, y).
func (f *Field) At(x, y int) int32 {
	return f.counts[y*f.width+x]
}
