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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-mandelbrot/viewport"
)

// gridPoints samples a w x h screen over the default view.
func gridPoints(t testing.TB, w, h int) (xs, ys []float64) {
	t.Helper()
	cfg := viewport.DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = w, h
	v, err := viewport.New(cfg)
	if err != nil {
		t.Fatalf("viewport.New: %v", err)
	}
	for py := range h {
		for px := range w {
			x, y := v.PlaneCoordinates(px, py)
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

func run(k Kernel, xs, ys []float64, maxIter int) []int32 {
	counts := make([]int32, len(xs))
	k.Points(xs, ys, maxIter, counts)
	return counts
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name    string
		x0, y0  float64
		maxIter int
		want    int
	}{
		{"origin never escapes", 0, 0, 500, 500},
		{"inside cardioid", -0.5, 0.25, 1000, 1000},
		{"period-2 bulb", -1, 0.1, 500, 500},
		{"far outside", 10, 10, 500, 1},
		{"radius 2 stays in", -2, 0, 100, 100},
		{"radius 2 escapes second step", 2, 0, 100, 2},
		{"zero cap", 0, 0, 0, 0},
		{"nan", math.NaN(), 0, 100, 1},
		{"infinity", math.Inf(1), 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.x0, tt.y0, tt.maxIter); got != tt.want {
				t.Errorf("EscapeTime(%v, %v, %d) = %d, want %d", tt.x0, tt.y0, tt.maxIter, got, tt.want)
			}
			for _, v := range Variants() {
				got := run(New(v), []float64{tt.x0}, []float64{tt.y0}, tt.maxIter)
				if int(got[0]) != tt.want {
					t.Errorf("%s: got %d, want %d", v, got[0], tt.want)
				}
			}
		})
	}
}

func TestVariantsAgree(t *testing.T) {
	sizes := []struct{ w, h int }{
		{64, 48},
		{97, 61}, // not divisible by 16, 8 or 4
		{1, 1},
		{3, 5},
		{17, 2},
	}
	for _, sz := range sizes {
		xs, ys := gridPoints(t, sz.w, sz.h)
		want := run(New(Scalar), xs, ys, 200)
		for _, v := range []Variant{Batched, Vector} {
			got := run(New(v), xs, ys, 200)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%dx%d %s mismatch (-scalar +%s):\n%s", sz.w, sz.h, v, v, diff)
			}
		}
	}
}

func TestPortableVectorAgrees(t *testing.T) {
	xs, ys := gridPoints(t, 45, 33)
	want := run(New(Scalar), xs, ys, 300)
	got := make([]int32, len(xs))
	pointsFloat64x4(xs, ys, 300, got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("portable vector mismatch (-scalar +vector):\n%s", diff)
	}
}

func TestTailWidths(t *testing.T) {
	// Coordinates chosen so neighbours escape at very different counts.
	base := []float64{-0.75, 0.3, -2, 0.26, -1.25, 10, -0.1, 0.38, -1.76, 0.001, 0.43, -0.5}
	for n := 0; n <= 40; n++ {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range n {
			xs[i] = base[i%len(base)]
			ys[i] = base[(i*5+3)%len(base)] / 4
		}
		want := run(New(Scalar), xs, ys, 150)
		for _, v := range []Variant{Batched, Vector} {
			if diff := cmp.Diff(want, run(New(v), xs, ys, 150)); diff != "" {
				t.Errorf("n=%d %s mismatch:\n%s", n, v, diff)
			}
		}
	}
}

func TestCountsInRange(t *testing.T) {
	xs, ys := gridPoints(t, 40, 40)
	for _, v := range Variants() {
		for _, c := range run(New(v), xs, ys, 64) {
			if c < 0 || c > 64 {
				t.Fatalf("%s: count %d outside [0, 64]", v, c)
			}
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"scalar", Scalar, true},
		{"batched", Batched, true},
		{"simd", Vector, true},
		{"SIMD", Vector, true},
		{" vector ", Vector, true},
		{"avx", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseVariant(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, v := range Variants() {
		if got, err := ParseVariant(v.String()); err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
}

func TestKernelMetadata(t *testing.T) {
	for _, v := range Variants() {
		k := New(v)
		if k.Variant() != v {
			t.Errorf("New(%s).Variant() = %s", v, k.Variant())
		}
		if k.Lanes() < 1 || k.Name() == "" {
			t.Errorf("%s: Lanes()=%d Name()=%q", v, k.Lanes(), k.Name())
		}
	}
	if Default().Variant() != Vector {
		t.Errorf("Default().Variant() = %s, want simd", Default().Variant())
	}
	t.Logf("vector path: %s (%d lanes)", VectorPath(), New(Vector).Lanes())
}

func TestPointsPanicsOnMismatch(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			New(v).Points(make([]float64, 4), make([]float64, 3), 10, make([]int32, 4))
		})
	}
}
