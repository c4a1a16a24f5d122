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
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mandelbrot/frame"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

func newRenderCmd() *cobra.Command {
	var (
		flags   viewFlags
		out     string
		caption bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := flags.compositor()
			if err != nil {
				return err
			}
			vp, err := viewport.New(flags.cfg)
			if err != nil {
				return err
			}
			buf, err := frame.NewBuffer(flags.cfg.ScreenWidth, flags.cfg.ScreenHeight)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := comp.Render(vp, buf); err != nil {
				return err
			}
			elapsed := time.Since(start)

			img := buf.RGBA()
			if caption {
				frame.Caption(img, fmt.Sprintf("%s %s\n%s\n%v", comp.Kernel().Name(), comp.Mode(), vp, elapsed.Round(time.Microsecond)))
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Printf("rendered %dx%d with %s in %v -> %s", buf.Width(), buf.Height(), comp.Kernel().Name(), elapsed, out)
			return nil
		},
	}
	addViewFlags(cmd.Flags(), &flags, true)
	cmd.Flags().StringVarP(&out, "out", "o", "mandelbrot.png", "Output PNG file")
	cmd.Flags().BoolVar(&caption, "caption", false, "Overlay kernel, view and frame time")
	return cmd
}
