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
	"strings"

	"github.com/ajroetker/go-mandelbrot/escape"
	"github.com/ajroetker/go-mandelbrot/lanes"
	"github.com/ajroetker/go-mandelbrot/palette"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

// Mode selects how iteration and colouring are interleaved.
type Mode int

const (
	// Fused colours each chunk of a row as soon as its counts are known.
	// No full-frame field is kept.
	Fused Mode = iota

	// Separated fills the whole iteration field first, then colours it in a
	// second pass with a multi-lane palette gather.
	Separated
)

// String returns the command-line name of the mode.
func (m Mode) String() string {
	switch m {
	case Fused:
		return "fused"
	case Separated:
		return "separated"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a command-line name to a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fused":
		return Fused, nil
	case "separated", "split":
		return Separated, nil
	default:
		return 0, fmt.Errorf("frame: unknown compose mode %q (want fused or separated)", s)
	}
}

// FusedChunk is the number of pixels the fused mode iterates before
// colouring them. It is a multiple of every kernel's lane count.
const FusedChunk = 64

// Compositor renders viewports into buffers with one kernel and palette.
// A Compositor is not safe for concurrent use.
type Compositor struct {
	kernel  escape.Kernel
	palette *palette.Palette
	mode    Mode

	width, height int
	xs            []float64 // plane x per column
	ys            []float64 // plane y of the current row, repeated
	counts        []int32   // fused chunk counts
	field         *Field    // separated mode only
}

// NewCompositor returns a compositor. Panics if kernel or pal is nil.
func NewCompositor(kernel escape.Kernel, pal *palette.Palette, mode Mode) *Compositor {
	if kernel == nil {
		panic("frame: nil kernel")
	}
	if pal == nil {
		panic("frame: nil palette")
	}
	return &Compositor{kernel: kernel, palette: pal, mode: mode}
}

// Kernel returns the kernel the compositor runs.
func (c *Compositor) Kernel() escape.Kernel { return c.kernel }

// Mode returns the composition mode.
func (c *Compositor) Mode() Mode { return c.mode }

// Field returns the iteration field of the last separated render, or nil.
func (c *Compositor) Field() *Field { return c.field }

// Prepare allocates the scratch rows, and in separated mode the iteration
// field, for width x height frames. Render calls it on a size change;
// calling it up front keeps allocation out of the first Render.
func (c *Compositor) Prepare(width, height int) error {
	if width == c.width && height == c.height && c.xs != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame: compositor size %dx%d: %w", width, height, lanes.ErrAllocation)
	}
	xs, err := lanes.AlignedFloat64(width)
	if err != nil {
		return fmt.Errorf("frame: compositor scratch: %w", err)
	}
	ys, err := lanes.AlignedFloat64(width)
	if err != nil {
		return fmt.Errorf("frame: compositor scratch: %w", err)
	}
	counts, err := lanes.AlignedInt32(FusedChunk)
	if err != nil {
		return fmt.Errorf("frame: compositor scratch: %w", err)
	}
	var field *Field
	if c.mode == Separated {
		if field, err = NewField(width, height); err != nil {
			return err
		}
	}
	c.width, c.height = width, height
	c.xs, c.ys, c.counts, c.field = xs, ys, counts, field
	return nil
}

// Render draws v into dst.
//
// Panics if dst is nil or its size differs from the viewport's screen size.
// Returns an error only if scratch space cannot be allocated.
func (c *Compositor) Render(v *viewport.Viewport, dst *Buffer) error {
	if dst == nil || v == nil {
		panic("frame: nil viewport or buffer")
	}
	w, h := v.ScreenSize()
	if dst.Width() != w || dst.Height() != h {
		panic(fmt.Sprintf("frame: buffer %dx%d does not match viewport %dx%d", dst.Width(), dst.Height(), w, h))
	}
	if err := c.Prepare(w, h); err != nil {
		return err
	}

	for px := range c.xs {
		c.xs[px] = v.PlaneX(px)
	}
	maxIter := v.MaxIterations()

	switch c.mode {
	case Separated:
		c.renderSeparated(v, dst, maxIter)
	default:
		c.renderFused(v, dst, maxIter)
	}
	return nil
}

func (c *Compositor) fillRowY(v *viewport.Viewport, py int) {
	y0 := v.PlaneY(py)
	for i := range c.ys {
		c.ys[i] = y0
	}
}

func (c *Compositor) renderFused(v *viewport.Viewport, dst *Buffer, maxIter int) {
	for py := range c.height {
		c.fillRowY(v, py)
		row := dst.Row(py)
		for off := 0; off < c.width; off += FusedChunk {
			n := min(FusedChunk, c.width-off)
			counts := c.counts[:n]
			c.kernel.Points(c.xs[off:off+n], c.ys[off:off+n], maxIter, counts)
			out := row[off : off+n]
			for i, it := range counts {
				out[i] = c.palette.Lookup(int(it))
			}
		}
	}
}

func (c *Compositor) renderSeparated(v *viewport.Viewport, dst *Buffer, maxIter int) {
	for py := range c.height {
		c.fillRowY(v, py)
		c.kernel.Points(c.xs, c.ys, maxIter, c.field.Row(py))
	}
	for py := range c.height {
		c.palette.Colorize(dst.Row(py), c.field.Row(py))
	}
}
