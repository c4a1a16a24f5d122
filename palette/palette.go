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

// Package palette maps escape-time iteration counts to packed colours
// through a table generated once per session.
package palette

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-mandelbrot/lanes"
)

// PackFunc packs one colour into the pixel format of the target buffer.
// It is called once per palette entry, never per pixel.
type PackFunc func(r, g, b, a uint8) uint32

// PackRGBA32 packs a colour so that its little-endian bytes are R, G, B, A,
// the layout of image.RGBA pixels.
func PackRGBA32(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// UnpackRGBA32 is the inverse of PackRGBA32.
func UnpackRGBA32(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Ramp returns the colour of entry i in a table of size entries.
type Ramp func(i, size int) (r, g, b uint8)

// Trig is the default ramp: three sinusoids of the normalised index with
// periods chosen to produce distinct hue bands.
//
//	r = 255*|sin(5(1-t)π)|, g = 255*|cos(3(1-t)π)|, b = 255*|sin(7(1-t)π)|
//
// with t = i/(size-1).
func Trig(i, size int) (r, g, b uint8) {
	t := 0.0
	if size > 1 {
		t = float64(i) / float64(size-1)
	}
	u := (1 - t) * math.Pi
	return channel(math.Sin(5 * u)), channel(math.Cos(3 * u)), channel(math.Sin(7 * u))
}

// Gradient is a four-stop blue, cyan, yellow, orange ramp over sqrt(i/size).
func Gradient(i, size int) (r, g, b uint8) {
	t := math.Sqrt(float64(i) / float64(size))
	switch {
	case t < 0.25:
		return 50, channel(4 * t), 255
	case t < 0.5:
		return 50, 255, channel(1 - 4*(t-0.25))
	case t < 0.75:
		return channel(4 * (t - 0.5)), 255, 50
	default:
		return 255, channel(1 - 4*(t-0.75)), 50
	}
}

// channel scales |v| in [0, 1] to a byte.
func channel(v float64) uint8 {
	v = math.Abs(v)
	if v >= 1 {
		return 255
	}
	return uint8(255 * v)
}

// Ramps lists the named ramps accepted by RampByName.
var Ramps = map[string]Ramp{
	"trig":     Trig,
	"gradient": Gradient,
}

// RampByName returns the ramp registered under name.
func RampByName(name string) (Ramp, error) {
	r, ok := Ramps[name]
	if !ok {
		return nil, fmt.Errorf("palette: unknown ramp %q", name)
	}
	return r, nil
}

// Palette is a read-only table of packed colours indexed by iteration count.
// It is safe for concurrent readers.
type Palette struct {
	colors []uint32
	mask   uint32 // size-1 when size is a power of two, else 0
	pow2   bool
}

// New builds a palette of size entries from ramp, packing each entry with
// pack. A nil ramp selects Trig and a nil pack selects PackRGBA32.
// Every entry is opaque.
//
// The table is cache-line aligned; if it cannot be allocated the error wraps
// lanes.ErrAllocation. Panics if size is not positive.
func New(size int, ramp Ramp, pack PackFunc) (*Palette, error) {
	if size <= 0 {
		panic("palette: non-positive size")
	}
	if ramp == nil {
		ramp = Trig
	}
	if pack == nil {
		pack = PackRGBA32
	}
	colors, err := lanes.AlignedUint32(size)
	if err != nil {
		return nil, fmt.Errorf("palette: %d entries: %w", size, err)
	}
	for i := range colors {
		r, g, b := ramp(i, size)
		colors[i] = pack(r, g, b, 255)
	}
	p := &Palette{colors: colors}
	if size&(size-1) == 0 {
		p.pow2 = true
		p.mask = uint32(size - 1)
	}
	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Index returns the table position for iteration count n: n mod Len(), or
// n & (Len()-1) when Len() is a power of two. Negative counts wrap as their
// unsigned 32-bit value.
func (p *Palette) Index(n int) int {
	u := uint32(n)
	if p.pow2 {
		return int(u & p.mask)
	}
	return int(u % uint32(len(p.colors)))
}

// Lookup returns the colour for iteration count n.
func (p *Palette) Lookup(n int) uint32 {
	return p.colors[p.Index(n)]
}

// At returns entry i. Panics if i is out of range.
func (p *Palette) At(i int) uint32 {
	return p.colors[i]
}

// Colorize writes Lookup(counts[i]) to dst[i] for every count, gathering
// several entries per step.
//
// Panics if len(dst) < len(counts).
func (p *Palette) Colorize(dst []uint32, counts []int32) {
	lanes.GatherWrapped(dst, p.colors, counts)
}
