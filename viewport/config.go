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

// Package viewport describes the visible rectangle of the complex plane and
// the transitions the interactive loop applies to it.
package viewport

import (
	"errors"
	"fmt"
)

// Config is the immutable session configuration a Viewport is built from.
type Config struct {
	// ScreenWidth and ScreenHeight are the pixel dimensions of the target.
	ScreenWidth  int
	ScreenHeight int

	// MaxIterations caps the escape-time recurrence and sizes the palette.
	MaxIterations int

	// BaseWidth is the plane width visible at zoom 1.
	BaseWidth float64

	// Zoom, CenterX and CenterY are the initial view.
	Zoom    float64
	CenterX float64
	CenterY float64

	// ZoomFactor multiplies or divides the zoom on each zoom step.
	ZoomFactor float64

	// MoveStep is the fraction of the plane width or height one pan moves.
	MoveStep float64
}

// Defaults for DefaultConfig.
const (
	DefaultScreenWidth   = 1000
	DefaultScreenHeight  = 1000
	DefaultMaxIterations = 500
	DefaultBaseWidth     = 3.0
	DefaultZoom          = 1.0
	DefaultCenterX       = -0.75
	DefaultCenterY       = 0.0
	DefaultZoomFactor    = 1.1
	DefaultMoveStep      = 0.1
)

// DefaultConfig returns the configuration used when no flags override it:
// a 1000x1000 screen showing the whole set at 500 iterations.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   DefaultScreenWidth,
		ScreenHeight:  DefaultScreenHeight,
		MaxIterations: DefaultMaxIterations,
		BaseWidth:     DefaultBaseWidth,
		Zoom:          DefaultZoom,
		CenterX:       DefaultCenterX,
		CenterY:       DefaultCenterY,
		ZoomFactor:    DefaultZoomFactor,
		MoveStep:      DefaultMoveStep,
	}
}

// Validate reports every field that cannot produce a usable viewport.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("max iterations %d must be positive", c.MaxIterations))
	}
	if !(c.BaseWidth > 0) {
		errs = append(errs, fmt.Errorf("base width %v must be positive", c.BaseWidth))
	}
	if !(c.Zoom > 0) {
		errs = append(errs, fmt.Errorf("zoom %v must be positive", c.Zoom))
	}
	if !(c.ZoomFactor > 1) {
		errs = append(errs, fmt.Errorf("zoom factor %v must be greater than 1", c.ZoomFactor))
	}
	if !(c.MoveStep > 0) {
		errs = append(errs, fmt.Errorf("move step %v must be positive", c.MoveStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("viewport: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// AspectRatio returns ScreenWidth / ScreenHeight.
func (c Config) AspectRatio() float64 {
	return float64(c.ScreenWidth) / float64(c.ScreenHeight)
}
