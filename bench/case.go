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

package bench

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-mandelbrot/escape"
	"github.com/ajroetker/go-mandelbrot/frame"
	"github.com/ajroetker/go-mandelbrot/palette"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

// Default run counts for benchmark cases.
const (
	DefaultWarmup  = 50
	DefaultMeasure = 500
)

// Case is one benchmark configuration and the artifact it produces.
type Case struct {
	// Name identifies the case on the command line.
	Name string

	// Title is written as the first line of the artifact.
	Title string

	// Path is the artifact location.
	Path string

	Variant escape.Variant
	Mode    frame.Mode

	Warmup  int
	Measure int
}

// DefaultCases returns one fused case per kernel variant, writing
// <dir>/<name>_version.txt.
func DefaultCases(dir string) []Case {
	titles := map[escape.Variant]string{
		escape.Scalar:  "Version without optimizations",
		escape.Batched: "Version working on arrays",
		escape.Vector:  "Version with SIMD instructions",
	}
	return lo.Map(escape.Variants(), func(v escape.Variant, _ int) Case {
		return Case{
			Name:    v.String(),
			Title:   titles[v],
			Path:    filepath.Join(dir, v.String()+"_version.txt"),
			Variant: v,
			Mode:    frame.Fused,
			Warmup:  DefaultWarmup,
			Measure: DefaultMeasure,
		}
	})
}

// SelectCases returns the cases named in names, in the order given, with
// duplicates removed. An empty list selects every case.
func SelectCases(cases []Case, names []string) ([]Case, error) {
	names = lo.Uniq(lo.Compact(lo.Map(names, func(n string, _ int) string {
		return strings.ToLower(strings.TrimSpace(n))
	})))
	if len(names) == 0 {
		return cases, nil
	}
	byName := lo.KeyBy(cases, func(c Case) string { return c.Name })
	unknown := lo.Filter(names, func(n string, _ int) bool {
		_, ok := byName[n]
		return !ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("bench: unknown cases %s (have %s)",
			strings.Join(unknown, ", "),
			strings.Join(lo.Map(cases, func(c Case, _ int) string { return c.Name }), ", "))
	}
	return lo.Map(names, func(n string, _ int) Case { return byName[n] }), nil
}

// Report describes one completed case.
type Report struct {
	Case    Case
	Samples []uint64
	Counter string
	Wall    time.Duration
}

// RunCase renders the viewport cfg describes with the case's kernel and
// mode, measures it, and writes the artifact. On any error no artifact is
// written and the samples are discarded.
func RunCase(c Case, cfg viewport.Config, counter Counter) (Report, error) {
	if counter == nil {
		counter = DefaultCounter()
	}
	vp, err := viewport.New(cfg)
	if err != nil {
		return Report{}, fmt.Errorf("bench: case %s: %w", c.Name, err)
	}
	pal, err := palette.New(cfg.MaxIterations, nil, nil)
	if err != nil {
		return Report{}, fmt.Errorf("bench: case %s: %w", c.Name, err)
	}
	comp := frame.NewCompositor(escape.New(c.Variant), pal, c.Mode)
	if err := comp.Prepare(cfg.ScreenWidth, cfg.ScreenHeight); err != nil {
		return Report{}, fmt.Errorf("bench: case %s: %w", c.Name, err)
	}

	h := Harness{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight, Counter: counter}
	start := time.Now()
	samples, err := h.Run(func(dst *frame.Buffer) error {
		return comp.Render(vp, dst)
	}, c.Warmup, c.Measure)
	wall := time.Since(start)
	if err != nil {
		return Report{}, fmt.Errorf("bench: case %s: %w", c.Name, err)
	}

	if err := WriteResult(c.Path, c.Title, samples); err != nil {
		return Report{}, fmt.Errorf("bench: case %s: %w", c.Name, err)
	}
	return Report{Case: c, Samples: samples, Counter: counter.Name(), Wall: wall}, nil
}
