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

// Command mandelbrot renders the Mandelbrot set and benchmarks the
// escape-time kernels.
//
// Usage:
//
//	mandelbrot render --mode simd --out set.png
//	mandelbrot bench --cases scalar,simd --warmup 50 --measure 500
//	mandelbrot plot --out plot.png results/*.txt
//	mandelbrot view
//	mandelbrot info
//
// Set MANDELBROT_NO_SIMD=1 to force the portable vector code.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-mandelbrot/escape"
	"github.com/ajroetker/go-mandelbrot/frame"
	"github.com/ajroetker/go-mandelbrot/palette"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mandelbrot: ")
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mandelbrot",
		Short:         "Render and benchmark the Mandelbrot set",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newRenderCmd(),
		newBenchCmd(),
		newPlotCmd(),
		newViewCmd(),
		newInfoCmd(),
	)
	return root
}

// viewFlags are the viewport and kernel flags shared by render, bench and
// view.
type viewFlags struct {
	cfg     viewport.Config
	mode    string
	compose string
	ramp    string
}

func addViewFlags(fs *pflag.FlagSet, f *viewFlags, withSize bool) {
	f.cfg = viewport.DefaultConfig()
	if withSize {
		fs.IntVar(&f.cfg.ScreenWidth, "width", f.cfg.ScreenWidth, "Frame width in pixels")
		fs.IntVar(&f.cfg.ScreenHeight, "height", f.cfg.ScreenHeight, "Frame height in pixels")
	}
	fs.IntVar(&f.cfg.MaxIterations, "iterations", f.cfg.MaxIterations, "Maximum escape-time iterations")
	fs.Float64Var(&f.cfg.CenterX, "center-x", f.cfg.CenterX, "Plane x at the centre of the frame")
	fs.Float64Var(&f.cfg.CenterY, "center-y", f.cfg.CenterY, "Plane y at the centre of the frame")
	fs.Float64Var(&f.cfg.Zoom, "zoom", f.cfg.Zoom, "Initial zoom")
	fs.Float64Var(&f.cfg.ZoomFactor, "zoom-factor", f.cfg.ZoomFactor, "Zoom multiplier per zoom step")
	fs.Float64Var(&f.cfg.MoveStep, "move-step", f.cfg.MoveStep, "Fraction of the plane one pan moves")
	fs.StringVar(&f.mode, "mode", escape.DefaultVariant.String(), "Kernel variant (scalar, batched, simd)")
	fs.StringVar(&f.compose, "compose", frame.Fused.String(), "Composition mode (fused, separated)")
	fs.StringVar(&f.ramp, "palette", "trig", "Palette ramp (trig, gradient)")
}

// parse resolves the kernel variant, composition mode and ramp names.
func (f *viewFlags) parse() (escape.Variant, frame.Mode, palette.Ramp, error) {
	variant, err := escape.ParseVariant(f.mode)
	if err != nil {
		return 0, 0, nil, err
	}
	mode, err := frame.ParseMode(f.compose)
	if err != nil {
		return 0, 0, nil, err
	}
	ramp, err := palette.RampByName(f.ramp)
	if err != nil {
		return 0, 0, nil, err
	}
	if err := f.cfg.Validate(); err != nil {
		return 0, 0, nil, err
	}
	return variant, mode, ramp, nil
}

// compositor builds the kernel, palette and compositor the flags select.
func (f *viewFlags) compositor() (*frame.Compositor, error) {
	variant, mode, ramp, err := f.parse()
	if err != nil {
		return nil, err
	}
	pal, err := palette.New(f.cfg.MaxIterations, ramp, palette.PackRGBA32)
	if err != nil {
		return nil, err
	}
	return frame.NewCompositor(escape.New(variant), pal, mode), nil
}
