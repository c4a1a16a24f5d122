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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/ajroetker/go-mandelbrot/escape"
	"github.com/ajroetker/go-mandelbrot/frame"
	"github.com/ajroetker/go-mandelbrot/palette"
	"github.com/ajroetker/go-mandelbrot/viewport"
)

const (
	enterViewer = "\x1b[?1049h\x1b[?25l\x1b[?1000h\x1b[?1006h"
	leaveViewer = "\x1b[?1006l\x1b[?1000l\x1b[0m\x1b[?25h\x1b[?1049l"
)

func newViewCmd() *cobra.Command {
	var flags viewFlags
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the set interactively in a truecolour terminal",
		Long: "Keys: +/- zoom, arrows or hjkl pan, left click recenters, mouse wheel zooms,\n" +
			"1/2/3 select the scalar, batched or simd kernel, c toggles fused/separated\n" +
			"composition, r resets the view, q quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
			if !terminal.IsTerminal(in) || !terminal.IsTerminal(out) {
				return errors.New("view needs an interactive terminal")
			}
			cols, rows, err := terminal.GetSize(out)
			if err != nil {
				return fmt.Errorf("terminal size: %w", err)
			}
			if cols < 2 || rows < 2 {
				return fmt.Errorf("terminal too small (%dx%d)", cols, rows)
			}
			// Each cell shows two pixels stacked; the last row is the status line.
			flags.cfg.ScreenWidth, flags.cfg.ScreenHeight = cols, 2*(rows-1)
			if _, _, _, err := flags.parse(); err != nil {
				return err
			}

			state, err := terminal.MakeRaw(in)
			if err != nil {
				return fmt.Errorf("raw mode: %w", err)
			}
			defer terminal.Restore(in, state)

			v, err := newViewer(flags, os.Stdout)
			if err != nil {
				return err
			}
			return v.loop(os.Stdin)
		},
	}
	addViewFlags(cmd.Flags(), &flags, false)
	return cmd
}

// viewer owns the interactive session: one viewport, one buffer, and a
// compositor per kernel choice.
type viewer struct {
	vp      *viewport.Viewport
	buf     *frame.Buffer
	pal     *palette.Palette
	variant escape.Variant
	mode    frame.Mode
	comp    *frame.Compositor
	out     *bufio.Writer
	elapsed time.Duration
}

func newViewer(flags viewFlags, w io.Writer) (*viewer, error) {
	vp, err := viewport.New(flags.cfg)
	if err != nil {
		return nil, err
	}
	buf, err := frame.NewBuffer(flags.cfg.ScreenWidth, flags.cfg.ScreenHeight)
	if err != nil {
		return nil, err
	}
	variant, mode, ramp, err := flags.parse()
	if err != nil {
		return nil, err
	}
	pal, err := palette.New(flags.cfg.MaxIterations, ramp, palette.PackRGBA32)
	if err != nil {
		return nil, err
	}
	return &viewer{
		vp:      vp,
		buf:     buf,
		pal:     pal,
		variant: variant,
		mode:    mode,
		comp:    frame.NewCompositor(escape.New(variant), pal, mode),
		out:     bufio.NewWriterSize(w, 1<<16),
	}, nil
}

// loop renders, waits for input, applies it, and repeats until quit. A quit
// takes effect after the frame in progress.
func (v *viewer) loop(r io.Reader) error {
	v.out.WriteString(enterViewer)
	defer func() {
		v.out.WriteString(leaveViewer)
		v.out.Flush()
	}()

	in := make([]byte, 256)
	for {
		if err := v.frame(); err != nil {
			return err
		}
		n, err := r.Read(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		for _, ev := range parseInput(in[:n]) {
			if !v.apply(ev) {
				return nil
			}
		}
	}
}

// apply performs one event and reports whether the session continues.
func (v *viewer) apply(ev event) bool {
	switch ev.act {
	case actQuit:
		return false
	case actZoomIn:
		v.vp.ZoomIn()
	case actZoomOut:
		v.vp.ZoomOut()
	case actLeft:
		v.vp.Pan(viewport.Left)
	case actRight:
		v.vp.Pan(viewport.Right)
	case actUp:
		v.vp.Pan(viewport.Up)
	case actDown:
		v.vp.Pan(viewport.Down)
	case actReset:
		v.vp.Reset()
	case actScalar:
		v.setKernel(escape.Scalar, v.mode)
	case actBatched:
		v.setKernel(escape.Batched, v.mode)
	case actVector:
		v.setKernel(escape.Vector, v.mode)
	case actToggleCompose:
		if v.mode == frame.Fused {
			v.setKernel(v.variant, frame.Separated)
		} else {
			v.setKernel(v.variant, frame.Fused)
		}
	case actClick:
		// Cell rows hold two pixel rows; aim at the upper one.
		w, h := v.vp.ScreenSize()
		if ev.x >= 0 && ev.x < w && 2*ev.y < h {
			v.vp.Recenter(ev.x, 2*ev.y)
		}
	}
	return true
}

func (v *viewer) setKernel(variant escape.Variant, mode frame.Mode) {
	if variant == v.variant && mode == v.mode {
		return
	}
	v.variant, v.mode = variant, mode
	v.comp = frame.NewCompositor(escape.New(variant), v.pal, mode)
}

// frame renders the view and writes it as half-block cells: the upper pixel
// is the foreground of U+2580, the lower one the background.
func (v *viewer) frame() error {
	start := time.Now()
	if err := v.comp.Render(v.vp, v.buf); err != nil {
		return err
	}
	v.elapsed = time.Since(start)

	out := v.out
	out.WriteString("\x1b[H")
	var num []byte
	color := func(prefix string, c uint32) {
		r, g, b, _ := palette.UnpackRGBA32(c)
		out.WriteString(prefix)
		num = strconv.AppendUint(num[:0], uint64(r), 10)
		out.Write(num)
		out.WriteByte(';')
		num = strconv.AppendUint(num[:0], uint64(g), 10)
		out.Write(num)
		out.WriteByte(';')
		num = strconv.AppendUint(num[:0], uint64(b), 10)
		out.Write(num)
		out.WriteByte('m')
	}
	w, h := v.buf.Width(), v.buf.Height()
	for y := 0; y+1 < h; y += 2 {
		top, bottom := v.buf.Row(y), v.buf.Row(y+1)
		for x := range w {
			color("\x1b[38;2;", top[x])
			color("\x1b[48;2;", bottom[x])
			out.WriteString("▀")
		}
		out.WriteString("\x1b[0m\r\n")
	}

	fps := 0.0
	if v.elapsed > 0 {
		fps = float64(time.Second) / float64(v.elapsed)
	}
	status := fmt.Sprintf(" %s %s | %s | %.2f ms (%.0f fps) | q quits",
		v.comp.Kernel().Name(), v.mode, v.vp, float64(v.elapsed)/float64(time.Millisecond), fps)
	if len(status) > w {
		status = status[:w]
	}
	out.WriteString("\x1b[7m")
	out.WriteString(status)
	out.WriteString("\x1b[K\x1b[0m")
	return out.Flush()
}
