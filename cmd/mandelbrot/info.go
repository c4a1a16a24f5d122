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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mandelbrot/bench"
	"github.com/ajroetker/go-mandelbrot/escape"
	"github.com/ajroetker/go-mandelbrot/lanes"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the SIMD level, kernel paths and counter in use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch level: %s (%d-byte registers)\n", lanes.CurrentName(), lanes.CurrentWidth())
			fmt.Fprintf(w, "cpu features:   %s\n", strings.Join(lanes.CPUFeatures(), " "))
			fmt.Fprintf(w, "%s:   %t\n", lanes.NoSimdEnvVar, lanes.NoSimdEnv())
			for _, v := range escape.Variants() {
				k := escape.New(v)
				fmt.Fprintf(w, "kernel %-8s %s, %d lanes\n", v.String()+":", k.Name(), k.Lanes())
			}
			fmt.Fprintf(w, "counter:        %s\n", bench.CounterName())
		},
	}
}
