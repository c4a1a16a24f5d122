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

// Package frame composes escape-time counts into packed pixel buffers.
//
// A Compositor walks the pixel grid of a Buffer, maps every pixel to the
// complex plane through a viewport, runs an escape.Kernel over each row, and
// writes palette colours into the buffer. It only ever writes to the target.
//
// Example usage:
//
//	buf, _ := frame.NewBuffer(640, 480)
//	c := frame.NewCompositor(escape.Default(), pal, frame.Fused)
//	if err := c.Render(vp, buf); err != nil {
//	    return err
//	}
//	png.Encode(w, buf.RGBA())
package frame

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/ajroetker/go-mandelbrot/lanes"
)

// Buffer is a 32-bit packed pixel target addressed by a byte stride.
// Rows may be padded; padding is never written by the compositor.
type Buffer struct {
	pix    []uint32
	width  int
	height int
	stride int // bytes per row (includes padding)
}

// NewBuffer allocates a width x height buffer. Rows are padded to a whole
// number of cache lines and the first row starts on a cache line, so every
// row is 64-byte aligned.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: buffer size %dx%d: %w", width, height, lanes.ErrAllocation)
	}
	rowElems := lanes.AlignUp(width*4, lanes.CacheLineAlign) / 4
	if height > math.MaxInt/4/rowElems {
		return nil, fmt.Errorf("frame: buffer size %dx%d: %w", width, height, lanes.ErrAllocation)
	}
	pix, err := lanes.AlignedUint32(rowElems * height)
	if err != nil {
		return nil, fmt.Errorf("frame: buffer size %dx%d: %w", width, height, err)
	}
	return &Buffer{
		pix:    pix,
		width:  width,
		height: height,
		stride: rowElems * 4,
	}, nil
}

// WrapBuffer adopts a caller-owned pixel slice with the given byte stride.
//
// Panics if the dimensions are not positive, the stride is not a multiple of
// 4 or is shorter than a row, or pix cannot hold height rows.
func WrapBuffer(pix []uint32, width, height, strideBytes int) *Buffer {
	if width <= 0 || height <= 0 {
		panic("frame: non-positive buffer size")
	}
	if strideBytes%4 != 0 || strideBytes < width*4 {
		panic("frame: invalid stride")
	}
	if need := (height-1)*(strideBytes/4) + width; len(pix) < need {
		panic("frame: pixel slice too short")
	}
	return &Buffer{pix: pix, width: width, height: height, stride: strideBytes}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Pix returns the backing pixel slice, padding included.
func (b *Buffer) Pix() []uint32 {
	return b.pix
}

// Row returns the pixels of row y, limited to the buffer width.
func (b *Buffer) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * (b.stride / 4)
	return b.pix[start : start+b.width : start+b.width]
}

// At returns the packed pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*(b.stride/4)+x]
}

// Fill sets every pixel, padding included, to c.
func (b *Buffer) Fill(c uint32) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// RGBA copies the buffer into a new image.RGBA, assuming pixels were packed
// with palette.PackRGBA32.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for x, c := range b.Row(y) {
			binary.LittleEndian.PutUint32(dst[x*4:], c)
		}
	}
	return img
}
