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
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mandelbrot/bench"
)

func newPlotCmd() *cobra.Command {
	var (
		out           string
		unit          string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "plot [flags] result.txt...",
		Short: "Plot raw samples from result files as a PNG scatter chart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]bench.Result, 0, len(args))
			for _, path := range args {
				r, err := bench.ReadResult(path)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := bench.Plot(f, results, unit, width, height); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Printf("plotted %d result files -> %s", len(results), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "plot.png", "Output PNG file")
	cmd.Flags().StringVar(&unit, "unit", "cycles", "Y axis label")
	cmd.Flags().IntVar(&width, "width", bench.DefaultPlotWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&height, "height", bench.DefaultPlotHeight, "Chart height in pixels")
	return cmd
}
