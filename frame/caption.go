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

package frame

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text in the top-left corner of img on a translucent dark
// strip, one line per newline-separated entry. Empty text is a no-op.
func Caption(img draw.Image, text string) {
	if img == nil || strings.TrimSpace(text) == "" {
		return
	}
	const pad = 4
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := 0
	for _, l := range lines {
		tw = max(tw, dr.MeasureString(l).Ceil())
	}

	b := img.Bounds()
	bg := image.NewUniform(color.RGBA{A: 180})
	rect := image.Rect(b.Min.X, b.Min.Y, b.Min.X+tw+2*pad, b.Min.Y+len(lines)*lineHeight+2*pad)
	draw.Draw(img, rect.Intersect(b), bg, image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		dr.Dot = fixed.Point26_6{
			X: fixed.I(b.Min.X + pad),
			Y: fixed.I(b.Min.Y + pad + ascent + i*lineHeight),
		}
		dr.DrawString(l)
	}
}
