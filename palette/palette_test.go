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

package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/ajroetker/go-mandelbrot/lanes"
)

func mustNew(t *testing.T, size int, ramp Ramp, pack PackFunc) *Palette {
	t.Helper()
	p, err := New(size, ramp, pack)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return p
}

func TestPackRGBA32(t *testing.T) {
	c := PackRGBA32(0x11, 0x22, 0x33, 0x44)
	if c != 0x44332211 {
		t.Fatalf("PackRGBA32 = %#x, want 0x44332211", c)
	}
	r, g, b, a := UnpackRGBA32(c)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("UnpackRGBA32 = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestNewUsesPackFunc(t *testing.T) {
	calls := 0
	pack := func(r, g, b, a uint8) uint32 {
		calls++
		if a != 255 {
			t.Errorf("alpha = %d, want 255", a)
		}
		return uint32(calls)
	}
	p := mustNew(t, 37, Trig, pack)
	if calls != 37 {
		t.Errorf("pack called %d times, want 37", calls)
	}
	for i := range p.Len() {
		if p.At(i) != uint32(i+1) {
			t.Errorf("At(%d) = %d, want %d", i, p.At(i), i+1)
		}
	}
}

func TestTrigEndpoints(t *testing.T) {
	// t = 1 at the last entry: sin(0) = 0, cos(0) = 1.
	r, g, b := Trig(499, 500)
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("Trig(last) = (%d, %d, %d), want (0, 255, 0)", r, g, b)
	}
	// t = 0 at the first entry: |sin(5π)|, |cos(3π)|, |sin(7π)|.
	r, g, b = Trig(0, 500)
	if r > 1 || g != 255 || b > 1 {
		t.Errorf("Trig(0) = (%d, %d, %d), want (~0, 255, ~0)", r, g, b)
	}
	// A single-entry table must not divide by zero.
	Trig(0, 1)
}

func TestIndexInBounds(t *testing.T) {
	for _, size := range []int{1, 3, 500, 512, 1000, 1024} {
		p := mustNew(t, size, nil, nil)
		for n := 0; n <= size; n++ {
			idx := p.Index(n)
			if idx < 0 || idx >= size {
				t.Fatalf("size %d: Index(%d) = %d out of range", size, n, idx)
			}
			if idx != n%size {
				t.Fatalf("size %d: Index(%d) = %d, want %d", size, n, idx, n%size)
			}
		}
		if p.Lookup(size) != p.Lookup(0) {
			t.Errorf("size %d: Lookup(max) != Lookup(0)", size)
		}
	}
}

func TestPowerOfTwoMaskMatchesModulo(t *testing.T) {
	p := mustNew(t, 256, nil, nil)
	for _, n := range []int{0, 1, 255, 256, 257, 1 << 20, 123456789} {
		if got, want := p.Index(n), n%256; got != want {
			t.Errorf("Index(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestColorize(t *testing.T) {
	for _, size := range []int{500, 512} {
		p := mustNew(t, size, Gradient, nil)
		counts := make([]int32, 1003)
		for i := range counts {
			counts[i] = int32(i * 7 % (size + 1))
		}
		dst := make([]uint32, len(counts))
		p.Colorize(dst, counts)
		for i, n := range counts {
			if want := p.Lookup(int(n)); dst[i] != want {
				t.Fatalf("size %d: dst[%d] = %#x, want %#x", size, i, dst[i], want)
			}
		}
	}
}

func TestEntriesAreOpaque(t *testing.T) {
	for name, ramp := range Ramps {
		p := mustNew(t, 100, ramp, nil)
		for i := range p.Len() {
			if _, _, _, a := UnpackRGBA32(p.At(i)); a != 255 {
				t.Fatalf("%s: entry %d alpha = %d", name, i, a)
			}
		}
	}
}

func TestRampByName(t *testing.T) {
	if _, err := RampByName("trig"); err != nil {
		t.Errorf("RampByName(trig): %v", err)
	}
	if _, err := RampByName("plasma"); err == nil {
		t.Error("RampByName(plasma) succeeded, want error")
	}
}

func TestNewPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(0, nil, nil)
}

func TestNewAllocationFailure(t *testing.T) {
	calls := 0
	pack := func(r, g, b, a uint8) uint32 {
		calls++
		return 0
	}
	p, err := New(math.MaxInt/2, nil, pack)
	if !errors.Is(err, lanes.ErrAllocation) {
		t.Fatalf("New(MaxInt/2) error = %v, want ErrAllocation", err)
	}
	if p != nil || calls != 0 {
		t.Errorf("failed New returned %v after %d pack calls", p, calls)
	}
}
