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
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default plot size in pixels.
const (
	DefaultPlotWidth  = 1200
	DefaultPlotHeight = 600
)

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorAlternateGray,
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    2,
		DotColor:    col,
	}
}

// Plot draws every sample of every result as a PNG scatter chart: x is the
// run index, y is the raw count. Samples are not aggregated.
// Non-positive width or height selects the default size.
func Plot(w io.Writer, results []Result, unit string, width, height int) error {
	if len(results) == 0 {
		return errors.New("bench: nothing to plot")
	}
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}

	series := make([]chart.Series, 0, len(results))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, r := range results {
		if len(r.Samples) == 0 {
			return fmt.Errorf("bench: %q has no samples", r.Title)
		}
		xs := make([]float64, len(r.Samples))
		ys := make([]float64, len(r.Samples))
		for j, s := range r.Samples {
			xs[j] = float64(j)
			ys[j] = float64(s)
			minY, maxY = math.Min(minY, ys[j]), math.Max(maxY, ys[j])
		}
		// go-chart needs at least two X values to build a range.
		if len(xs) == 1 {
			xs = append(xs, 1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    r.Title,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(seriesColors[i%len(seriesColors)]),
		})
	}

	ch := chart.Chart{
		Title:      "Cycles per frame",
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "run"},
		YAxis:      chart.YAxis{Name: unit},
		Series:     series,
	}
	// A flat series has a zero-height range, which go-chart rejects.
	if minY == maxY {
		ch.YAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("bench: render plot: %w", err)
	}
	return nil
}
