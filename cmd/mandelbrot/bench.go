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

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-mandelbrot/bench"
	"github.com/ajroetker/go-mandelbrot/frame"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

func newBenchCmd() *cobra.Command {
	var (
		cfg     = viewport.DefaultConfig()
		names   []string
		warmup  int
		measure int
		dir     string
		compose string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure each kernel and write raw cycle counts to result files",
		Long: "Runs every selected case through a warmup phase and a measured phase,\n" +
			"then writes the title and one count per line to <dir>/<case>_version.txt.\n" +
			"A case that fails is reported and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := frame.ParseMode(compose)
			if err != nil {
				return err
			}
			if warmup < 0 || measure <= 0 {
				return fmt.Errorf("need --warmup >= 0 and --measure > 0, got %d and %d", warmup, measure)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cases, err := bench.SelectCases(bench.DefaultCases(dir), names)
			if err != nil {
				return err
			}

			p := message.NewPrinter(language.English)
			counter := bench.DefaultCounter()
			var failed []error
			for _, c := range cases {
				c.Warmup, c.Measure, c.Mode = warmup, measure, mode
				log.Printf("running %s (%d warmup, %d measured, %s)...", c.Name, c.Warmup, c.Measure, counter.Name())
				rep, err := bench.RunCase(c, cfg, counter)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					failed = append(failed, err)
					continue
				}
				p.Printf("%-8s %d samples, first %d, last %d %s -> %s\n",
					c.Name, len(rep.Samples), rep.Samples[0], rep.Samples[len(rep.Samples)-1], rep.Counter, c.Path)
				p.Printf("%-8s took %v\n", "", rep.Wall.Round(time.Millisecond))
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d cases failed: %w", len(failed), len(cases), errors.Join(failed...))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Frame width in pixels")
	fs.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Frame height in pixels")
	fs.IntVar(&cfg.MaxIterations, "iterations", cfg.MaxIterations, "Maximum escape-time iterations")
	fs.StringSliceVar(&names, "cases", nil, "Cases to run (scalar, batched, simd); default all")
	fs.IntVar(&warmup, "warmup", bench.DefaultWarmup, "Discarded runs before measuring")
	fs.IntVar(&measure, "measure", bench.DefaultMeasure, "Measured runs per case")
	fs.StringVar(&dir, "dir", "results", "Directory for result files")
	fs.StringVar(&compose, "compose", frame.Fused.String(), "Composition mode (fused, separated)")
	return cmd
}
