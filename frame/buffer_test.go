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
	"errors"
	"image"
	"testing"

	"github.com/ajroetker/go-mandelbrot/lanes"
	"github.com/ajroetker/go-mandelbrot/palette"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		w, h       int
		wantStride int
	}{
		{1, 1, 64},
		{16, 2, 64},
		{17, 3, 128},
		{1000, 10, 4032},
	}
	for _, tt := range tests {
		b, err := NewBuffer(tt.w, tt.h)
		if err != nil {
			t.Fatalf("NewBuffer(%d, %d): %v", tt.w, tt.h, err)
		}
		if b.Stride() != tt.wantStride {
			t.Errorf("NewBuffer(%d, %d).Stride() = %d, want %d", tt.w, tt.h, b.Stride(), tt.wantStride)
		}
		for y := range tt.h {
			row := b.Row(y)
			if len(row) != tt.w {
				t.Fatalf("len(Row(%d)) = %d, want %d", y, len(row), tt.w)
			}
			if !lanes.IsAligned(row, lanes.CacheLineAlign) {
				t.Errorf("%dx%d row %d is not 64-byte aligned", tt.w, tt.h, y)
			}
		}
	}
}

func TestNewBufferErrors(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewBuffer(sz[0], sz[1]); !errors.Is(err, lanes.ErrAllocation) {
			t.Errorf("NewBuffer(%d, %d) err = %v, want ErrAllocation", sz[0], sz[1], err)
		}
	}
}

func TestWrapBufferPanics(t *testing.T) {
	tests := []struct {
		name          string
		n, w, h, strd int
	}{
		{"zero width", 16, 0, 1, 16},
		{"stride too small", 16, 8, 1, 16},
		{"stride not multiple of 4", 16, 2, 1, 10},
		{"slice too short", 15, 4, 4, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			WrapBuffer(make([]uint32, tt.n), tt.w, tt.h, tt.strd)
		})
	}
	// The last row needs no padding.
	b := WrapBuffer(make([]uint32, 19), 4, 4, 20)
	if b.Stride() != 20 || len(b.Row(3)) != 4 {
		t.Errorf("stride %d, last row %d pixels", b.Stride(), len(b.Row(3)))
	}
}

func TestRGBA(t *testing.T) {
	b, _ := NewBuffer(3, 2)
	b.Fill(palette.PackRGBA32(1, 2, 3, 255))
	b.Row(1)[2] = palette.PackRGBA32(10, 20, 30, 40)

	img := b.RGBA()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got.R != 1 || got.G != 2 || got.B != 3 || got.A != 255 {
		t.Errorf("RGBAAt(0, 0) = %v", got)
	}
	if got := img.RGBAAt(2, 1); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 40 {
		t.Errorf("RGBAAt(2, 1) = %v", got)
	}
}

func TestAtOutside(t *testing.T) {
	b, _ := NewBuffer(2, 2)
	b.Fill(7)
	if b.At(2, 0) != 0 || b.At(0, -1) != 0 || b.Row(2) != nil {
		t.Error("out-of-range access should return zero values")
	}
	if b.At(1, 1) != 7 {
		t.Errorf("At(1, 1) = %d, want 7", b.At(1, 1))
	}
}

func TestCaption(t *testing.T) {
	b, _ := NewBuffer(120, 40)
	b.Fill(palette.PackRGBA32(0, 0, 255, 255))
	img := b.RGBA()
	before := append([]uint8(nil), img.Pix...)

	Caption(img, "")
	if string(before) != string(img.Pix) {
		t.Fatal("empty caption modified the image")
	}

	Caption(img, "simd\nzoom 1")
	changed := 0
	for i := range img.Pix {
		if img.Pix[i] != before[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("caption did not draw anything")
	}
	// The bottom-right corner is outside the caption strip.
	if got := img.RGBAAt(119, 39); got.B != 255 || got.R != 0 {
		t.Errorf("pixel outside caption changed to %v", got)
	}
}
