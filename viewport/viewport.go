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

package viewport

import "fmt"

// Direction selects a pan transition.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Viewport is the visible rectangle of the complex plane.
//
// The plane dimensions are derived from the zoom and are only ever updated
// together with it. A Viewport is owned by a single goroutine.
type Viewport struct {
	cfg Config

	centerX float64
	centerY float64
	zoom    float64
	width   float64
	height  float64
}

// New returns the initial viewport for cfg.
// Returns an error if cfg does not validate.
func New(cfg Config) (*Viewport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &Viewport{cfg: cfg}
	v.Reset()
	return v, nil
}

// Config returns the configuration the viewport was built from.
func (v *Viewport) Config() Config { return v.cfg }

// Center returns the plane coordinate at the middle of the screen.
func (v *Viewport) Center() (x, y float64) { return v.centerX, v.centerY }

// Zoom returns the current zoom.
func (v *Viewport) Zoom() float64 { return v.zoom }

// PlaneWidth returns the visible plane width.
func (v *Viewport) PlaneWidth() float64 { return v.width }

// PlaneHeight returns the visible plane height.
func (v *Viewport) PlaneHeight() float64 { return v.height }

// MaxIterations returns the session iteration cap.
func (v *Viewport) MaxIterations() int { return v.cfg.MaxIterations }

// ScreenSize returns the configured pixel dimensions.
func (v *Viewport) ScreenSize() (w, h int) { return v.cfg.ScreenWidth, v.cfg.ScreenHeight }

// Reset restores the configured centre and zoom.
func (v *Viewport) Reset() {
	v.centerX = v.cfg.CenterX
	v.centerY = v.cfg.CenterY
	v.setZoom(v.cfg.Zoom)
}

// ZoomIn multiplies the zoom by the configured factor.
func (v *Viewport) ZoomIn() {
	v.setZoom(v.zoom * v.cfg.ZoomFactor)
}

// ZoomOut divides the zoom by the configured factor.
func (v *Viewport) ZoomOut() {
	v.setZoom(v.zoom / v.cfg.ZoomFactor)
}

// SetZoom replaces the zoom. Panics if z is not positive.
func (v *Viewport) SetZoom(z float64) {
	if !(z > 0) {
		panic("viewport: non-positive zoom")
	}
	v.setZoom(z)
}

func (v *Viewport) setZoom(z float64) {
	v.zoom = z
	v.width = v.cfg.BaseWidth / z
	v.height = v.width / v.cfg.AspectRatio()
}

// Pan moves the centre by MoveStep of the plane width (Left, Right) or
// height (Up, Down). Plane y grows upward, so Up increases the centre y.
func (v *Viewport) Pan(d Direction) {
	switch d {
	case Left:
		v.centerX -= v.width * v.cfg.MoveStep
	case Right:
		v.centerX += v.width * v.cfg.MoveStep
	case Up:
		v.centerY += v.height * v.cfg.MoveStep
	case Down:
		v.centerY -= v.height * v.cfg.MoveStep
	default:
		panic(fmt.Sprintf("viewport: unknown direction %d", int(d)))
	}
}

// Recenter makes the plane point under screen pixel (px, py) the new centre.
// The zoom is unchanged.
func (v *Viewport) Recenter(px, py int) {
	v.centerX, v.centerY = v.PlaneCoordinates(px, py)
}

// PlaneCoordinates maps screen pixel (px, py) to the complex plane. Screen
// row 0 is the top of the image.
func (v *Viewport) PlaneCoordinates(px, py int) (x0, y0 float64) {
	return v.PlaneX(px), v.PlaneY(py)
}

// PlaneX maps screen column px to a plane x coordinate.
func (v *Viewport) PlaneX(px int) float64 {
	return (float64(px)/float64(v.cfg.ScreenWidth))*v.width - v.width/2 + v.centerX
}

// PlaneY maps screen row py to a plane y coordinate.
func (v *Viewport) PlaneY(py int) float64 {
	h := float64(v.cfg.ScreenHeight)
	return ((h-float64(py))/h)*v.height - v.height/2 + v.centerY
}

// String formats the view for status lines.
func (v *Viewport) String() string {
	return fmt.Sprintf("center=(%.6g, %.6g) zoom=%.4g plane=%.4gx%.4g",
		v.centerX, v.centerY, v.zoom, v.width, v.height)
}
